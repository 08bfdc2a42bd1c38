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

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/repositories"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

// DeploymentService orchestrates agent deployment to target platforms
// and keeps the append-only deployment history.
type DeploymentService interface {
	// Deploy pushes an agent to a platform and records a new active
	// deployment. Handler errors (network, quota rejection,
	// platform-side validation) propagate unmodified; the caller
	// decides whether to retry.
	Deploy(ctx context.Context, agentID, platformID uuid.UUID, targetURL string) (*models.AgentDeployment, error)

	// Undeploy removes the agent from the platform and transitions the
	// record to inactive. The record is never deleted.
	Undeploy(ctx context.Context, deploymentID uuid.UUID) error

	GetDeployment(ctx context.Context, deploymentID uuid.UUID) (*models.AgentDeployment, error)
	ListAgentDeployments(ctx context.Context, agentID uuid.UUID) ([]*models.AgentDeployment, error)
}

type deploymentService struct {
	agentRepo      repositories.AgentRepository
	platformRepo   repositories.PlatformRepository
	deploymentRepo repositories.DeploymentRepository
	handlers       *platform.Registry
	logger         *slog.Logger
}

// NewDeploymentService creates a new deployment service
func NewDeploymentService(
	agentRepo repositories.AgentRepository,
	platformRepo repositories.PlatformRepository,
	deploymentRepo repositories.DeploymentRepository,
	handlers *platform.Registry,
	logger *slog.Logger,
) DeploymentService {
	return &deploymentService{
		agentRepo:      agentRepo,
		platformRepo:   platformRepo,
		deploymentRepo: deploymentRepo,
		handlers:       handlers,
		logger:         logger,
	}
}

func (s *deploymentService) Deploy(ctx context.Context, agentID, platformID uuid.UUID, targetURL string) (*models.AgentDeployment, error) {
	agent, err := s.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	plat, err := s.platformRepo.GetByID(ctx, platformID)
	if err != nil {
		return nil, err
	}
	handler, err := s.handlers.Get(plat.Name)
	if err != nil {
		return nil, err
	}

	target := platform.Target{URL: targetURL, MaxAgents: plat.MaxAgents}
	if target.URL == "" {
		target.URL = plat.BaseURL
	}
	if target.URL == "" {
		return nil, fmt.Errorf("%w: %s has no target URL", utils.ErrPlatformNotConfigured, plat.Name)
	}

	ack, err := handler.Deploy(ctx, agent, target)
	if err != nil {
		return nil, err
	}

	// A fresh deploy always inserts a new record. Nothing here guards
	// against an existing active record for the same slot; callers
	// wanting single-active-per-slot must undeploy first.
	record := &models.AgentDeployment{
		AgentID:       agent.ID,
		PlatformID:    plat.ID,
		DeploymentURL: target.URL,
		Status:        models.DeploymentStatusActive,
		DeployedAt:    time.Now().UTC(),
		DeploymentConfig: map[string]interface{}{
			"request":  platform.NewDeployPayload(agent),
			"response": ack,
		},
	}
	if err := s.deploymentRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("agent deployed but record creation failed: %w", err)
	}

	s.logger.Info("deployment recorded",
		"deploymentId", record.ID,
		"agentId", agent.ID,
		"platform", plat.Name,
		"targetUrl", target.URL)
	return record, nil
}

func (s *deploymentService) Undeploy(ctx context.Context, deploymentID uuid.UUID) error {
	record, err := s.deploymentRepo.GetWithAssociations(ctx, deploymentID)
	if err != nil {
		return err
	}
	if record.Status != models.DeploymentStatusActive {
		return fmt.Errorf("%w: deployment %s is not active", utils.ErrInvalidInput, deploymentID)
	}
	if record.Agent == nil || record.Platform == nil {
		return fmt.Errorf("%w: deployment %s is missing associations", utils.ErrDeploymentNotFound, deploymentID)
	}

	handler, err := s.handlers.Get(record.Platform.Name)
	if err != nil {
		return err
	}

	target := platform.Target{URL: record.DeploymentURL}
	if target.URL == "" {
		target.URL = record.Platform.BaseURL
	}

	ack, err := handler.Undeploy(ctx, platform.PlatformAgentID(record.Agent), target)
	if err != nil {
		return err
	}

	if err := s.deploymentRepo.MarkInactive(ctx, record.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("agent undeployed but record transition failed: %w", err)
	}

	s.logger.Info("deployment transitioned to inactive",
		"deploymentId", record.ID,
		"platform", record.Platform.Name,
		"ack", ack)
	return nil
}

func (s *deploymentService) GetDeployment(ctx context.Context, deploymentID uuid.UUID) (*models.AgentDeployment, error) {
	return s.deploymentRepo.GetByID(ctx, deploymentID)
}

func (s *deploymentService) ListAgentDeployments(ctx context.Context, agentID uuid.UUID) ([]*models.AgentDeployment, error) {
	if _, err := s.agentRepo.GetByID(ctx, agentID); err != nil {
		return nil, err
	}
	return s.deploymentRepo.ListByAgent(ctx, agentID)
}
