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

	"github.com/google/uuid"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/mapper"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/repositories"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

// AgentService is the administrative CRUD surface for agents that are
// not backed by an external registry. Synced agents are owned by the
// sync engine: mutating or deleting them here is rejected so local
// edits cannot fight the next sync run.
type AgentService interface {
	ListAgents(ctx context.Context, filter models.AgentFilter) ([]*models.CanonicalAgent, error)
	GetAgent(ctx context.Context, id uuid.UUID) (*models.CanonicalAgent, error)
	CreateAgent(ctx context.Context, req *models.CreateAgentRequest) (*models.CanonicalAgent, error)
	UpdateAgent(ctx context.Context, id uuid.UUID, req *models.UpdateAgentRequest) (*models.CanonicalAgent, error)
	DeleteAgent(ctx context.Context, id uuid.UUID) error
}

type agentService struct {
	agentRepo repositories.AgentRepository
	logger    *slog.Logger
}

// NewAgentService creates a new agent service
func NewAgentService(agentRepo repositories.AgentRepository, logger *slog.Logger) AgentService {
	return &agentService{agentRepo: agentRepo, logger: logger}
}

func (s *agentService) ListAgents(ctx context.Context, filter models.AgentFilter) ([]*models.CanonicalAgent, error) {
	return s.agentRepo.List(ctx, filter)
}

func (s *agentService) GetAgent(ctx context.Context, id uuid.UUID) (*models.CanonicalAgent, error) {
	return s.agentRepo.GetByID(ctx, id)
}

func (s *agentService) CreateAgent(ctx context.Context, req *models.CreateAgentRequest) (*models.CanonicalAgent, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", utils.ErrInvalidInput)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	agent := &models.CanonicalAgent{
		Name:              req.Name,
		Description:       req.Description,
		AgentType:         mapper.NormalizeAgentType(req.AgentType),
		Config:            emptyIfNilMap(req.Config),
		Capabilities:      req.Capabilities,
		PersonalityTraits: req.PersonalityTraits,
		VoiceConfig:       emptyIfNilMap(req.VoiceConfig),
		KnowledgeBase:     emptyIfNilMap(req.KnowledgeBase),
		ProceduresAccess:  req.ProceduresAccess,
		DeploymentInfo: models.DeploymentInfo{
			DeployedTo:       []string{},
			DeploymentStatus: models.AgentDeploymentStatusUnknown,
		},
		IsActive: isActive,
	}

	if err := s.agentRepo.Create(ctx, agent); err != nil {
		return nil, err
	}
	s.logger.Info("agent created", "agentId", agent.ID, "name", agent.Name)
	return agent, nil
}

func (s *agentService) UpdateAgent(ctx context.Context, id uuid.UUID, req *models.UpdateAgentRequest) (*models.CanonicalAgent, error) {
	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent.HasExternalSource() {
		return nil, fmt.Errorf("%w: agent %s is owned by source %s", utils.ErrSyncedFieldImmutable, id, agent.ExternalSource)
	}

	if req.Name != nil {
		agent.Name = *req.Name
	}
	if req.Description != nil {
		agent.Description = *req.Description
	}
	if req.AgentType != nil {
		agent.AgentType = mapper.NormalizeAgentType(*req.AgentType)
	}
	if req.Config != nil {
		agent.Config = req.Config
	}
	if req.Capabilities != nil {
		agent.Capabilities = req.Capabilities
	}
	if req.PersonalityTraits != nil {
		agent.PersonalityTraits = req.PersonalityTraits
	}
	if req.VoiceConfig != nil {
		agent.VoiceConfig = req.VoiceConfig
	}
	if req.KnowledgeBase != nil {
		agent.KnowledgeBase = req.KnowledgeBase
	}
	if req.ProceduresAccess != nil {
		agent.ProceduresAccess = req.ProceduresAccess
	}
	if req.IsActive != nil {
		agent.IsActive = *req.IsActive
	}

	if err := s.agentRepo.Update(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *agentService) DeleteAgent(ctx context.Context, id uuid.UUID) error {
	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if agent.HasExternalSource() {
		return fmt.Errorf("%w: agent %s is owned by source %s", utils.ErrSyncedFieldImmutable, id, agent.ExternalSource)
	}
	return s.agentRepo.Delete(ctx, id)
}

func emptyIfNilMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}
