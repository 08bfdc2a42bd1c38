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
	"strconv"

	"github.com/google/uuid"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/middleware/logger"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/services"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

// AgentController defines interface for agent HTTP handlers
type AgentController interface {
	ListAgents(w http.ResponseWriter, r *http.Request)
	GetAgent(w http.ResponseWriter, r *http.Request)
	CreateAgent(w http.ResponseWriter, r *http.Request)
	UpdateAgent(w http.ResponseWriter, r *http.Request)
	DeleteAgent(w http.ResponseWriter, r *http.Request)
}

type agentController struct {
	agentService services.AgentService
}

// NewAgentController creates a new agent controller
func NewAgentController(agentService services.AgentService) AgentController {
	return &agentController{agentService: agentService}
}

func (c *agentController) ListAgents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	filter := models.AgentFilter{
		AgentType: r.URL.Query().Get("type"),
		Search:    r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid active filter")
			return
		}
		filter.IsActive = &active
	}

	agents, err := c.agentService.ListAgents(ctx, filter)
	if err != nil {
		log.Error("ListAgents: failed to list agents", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list agents")
		return
	}

	resp := map[string]interface{}{
		"agents": agents,
		"count":  len(agents),
	}
	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *agentController) GetAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	agentID, err := uuid.Parse(r.PathValue(utils.PathParamAgentID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent id")
		return
	}

	agent, err := c.agentService.GetAgent(ctx, agentID)
	if err != nil {
		if errors.Is(err, utils.ErrAgentNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Agent not found")
			return
		}
		log.Error("GetAgent: failed to get agent", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get agent")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, agent)
}

func (c *agentController) CreateAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req models.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("CreateAgent: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := c.agentService.CreateAgent(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrAgentAlreadyExists):
			utils.WriteErrorResponse(w, http.StatusConflict, "Agent already exists")
			return
		case errors.Is(err, utils.ErrInvalidInput):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid input")
			return
		default:
			log.Error("CreateAgent: failed to create agent", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create agent")
			return
		}
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, created)
}

func (c *agentController) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	agentID, err := uuid.Parse(r.PathValue(utils.PathParamAgentID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent id")
		return
	}

	var req models.UpdateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("UpdateAgent: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := c.agentService.UpdateAgent(ctx, agentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrAgentNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "Agent not found")
			return
		case errors.Is(err, utils.ErrSyncedFieldImmutable):
			utils.WriteErrorResponse(w, http.StatusConflict, "Agent is managed by an external registry and cannot be modified")
			return
		case errors.Is(err, utils.ErrInvalidInput):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid input")
			return
		default:
			log.Error("UpdateAgent: failed to update agent", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update agent")
			return
		}
	}

	utils.WriteSuccessResponse(w, http.StatusOK, updated)
}

func (c *agentController) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	agentID, err := uuid.Parse(r.PathValue(utils.PathParamAgentID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent id")
		return
	}

	if err := c.agentService.DeleteAgent(ctx, agentID); err != nil {
		switch {
		case errors.Is(err, utils.ErrAgentNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "Agent not found")
			return
		case errors.Is(err, utils.ErrSyncedFieldImmutable):
			utils.WriteErrorResponse(w, http.StatusConflict, "Agent is managed by an external registry and cannot be deleted")
			return
		default:
			log.Error("DeleteAgent: failed to delete agent", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete agent")
			return
		}
	}

	utils.WriteSuccessResponse(w, http.StatusNoContent, struct{}{})
}
