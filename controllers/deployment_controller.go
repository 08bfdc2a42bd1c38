// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/middleware/logger"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/services"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

// DeploymentController defines interface for deployment HTTP handlers
type DeploymentController interface {
	DeployAgent(w http.ResponseWriter, r *http.Request)
	UndeployAgent(w http.ResponseWriter, r *http.Request)
	GetDeployment(w http.ResponseWriter, r *http.Request)
	ListAgentDeployments(w http.ResponseWriter, r *http.Request)
	ReconcileAgent(w http.ResponseWriter, r *http.Request)
}

type deploymentController struct {
	deploymentService services.DeploymentService
	reconcileService  services.ReconcileService
}

// NewDeploymentController creates a new deployment controller
func NewDeploymentController(
	deploymentService services.DeploymentService,
	reconcileService services.ReconcileService,
) DeploymentController {
	return &deploymentController{
		deploymentService: deploymentService,
		reconcileService:  reconcileService,
	}
}

func (c *deploymentController) DeployAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req models.DeployAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("DeployAgent: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	agentID, err := uuid.Parse(req.AgentID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent id")
		return
	}
	platformID, err := uuid.Parse(req.PlatformID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid platform id")
		return
	}

	deployment, err := c.deploymentService.Deploy(ctx, agentID, platformID, req.TargetURL)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrAgentNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "Agent not found")
			return
		case errors.Is(err, utils.ErrPlatformNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "Platform not found")
			return
		case errors.Is(err, utils.ErrUnsupportedPlatform):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Platform has no registered handler")
			return
		case errors.Is(err, utils.ErrPlatformNotConfigured):
			utils.WriteErrorResponse(w, http.StatusConflict, "Platform has no endpoint configured")
			return
		case errors.Is(err, utils.ErrPlatformCapacityExceeded):
			utils.WriteErrorResponse(w, http.StatusConflict, err.Error())
			return
		default:
			log.Error("DeployAgent: deployment failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusBadGateway, "Deployment failed: "+err.Error())
			return
		}
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, deployment)
}

func (c *deploymentController) UndeployAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	deploymentID, err := uuid.Parse(r.PathValue(utils.PathParamDeploymentID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid deployment id")
		return
	}

	if err := c.deploymentService.Undeploy(ctx, deploymentID); err != nil {
		switch {
		case errors.Is(err, utils.ErrDeploymentNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "Deployment not found")
			return
		case errors.Is(err, utils.ErrInvalidInput):
			utils.WriteErrorResponse(w, http.StatusConflict, "Deployment is not active")
			return
		default:
			log.Error("UndeployAgent: undeploy failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusBadGateway, "Undeploy failed: "+err.Error())
			return
		}
	}

	utils.WriteSuccessResponse(w, http.StatusOK, models.UndeployResponse{
		Success: true,
		Message: "Agent undeployed",
	})
}

func (c *deploymentController) GetDeployment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	deploymentID, err := uuid.Parse(r.PathValue(utils.PathParamDeploymentID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid deployment id")
		return
	}

	deployment, err := c.deploymentService.GetDeployment(ctx, deploymentID)
	if err != nil {
		if errors.Is(err, utils.ErrDeploymentNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Deployment not found")
			return
		}
		log.Error("GetDeployment: failed to get deployment", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get deployment")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, deployment)
}

func (c *deploymentController) ListAgentDeployments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	agentID, err := uuid.Parse(r.PathValue(utils.PathParamAgentID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent id")
		return
	}

	deployments, err := c.deploymentService.ListAgentDeployments(ctx, agentID)
	if err != nil {
		if errors.Is(err, utils.ErrAgentNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Agent not found")
			return
		}
		log.Error("ListAgentDeployments: failed to list deployments", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list deployments")
		return
	}

	resp := map[string]interface{}{
		"deployments": deployments,
		"count":       len(deployments),
	}
	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *deploymentController) ReconcileAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	agentID, err := uuid.Parse(r.PathValue(utils.PathParamAgentID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent id")
		return
	}

	result, err := c.reconcileService.Reconcile(ctx, agentID)
	if err != nil {
		if errors.Is(err, utils.ErrAgentNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Agent not found")
			return
		}
		log.Error("ReconcileAgent: reconciliation failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to reconcile agent")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, result)
}
