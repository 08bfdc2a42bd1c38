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
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

// mockRegistryClient is a test mock for the registry client.
type mockRegistryClient struct {
	fetchAgentsFunc func(ctx context.Context) ([]map[string]interface{}, error)
	fetchCalls      int
}

func (m *mockRegistryClient) FetchAgents(ctx context.Context) ([]map[string]interface{}, error) {
	m.fetchCalls++
	if m.fetchAgentsFunc != nil {
		return m.fetchAgentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockRegistryClient) Source() string { return "agentbackend" }

// mockAgentRepo is an in-memory test double for AgentRepository keyed
// by both local id and external identity.
type mockAgentRepo struct {
	mu     sync.Mutex
	agents map[uuid.UUID]*models.CanonicalAgent

	upsertErrFor map[string]error // keyed by external id
	createFunc   func(ctx context.Context, agent *models.CanonicalAgent) error
	updateCalls  int
	deleteCalls  int
}

func newMockAgentRepo() *mockAgentRepo {
	return &mockAgentRepo{
		agents:       make(map[uuid.UUID]*models.CanonicalAgent),
		upsertErrFor: make(map[string]error),
	}
}

func (m *mockAgentRepo) put(agent *models.CanonicalAgent) *models.CanonicalAgent {
	if agent.ID == uuid.Nil {
		agent.ID = uuid.New()
	}
	m.mu.Lock()
	m.agents[agent.ID] = agent
	m.mu.Unlock()
	return agent
}

func (m *mockAgentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CanonicalAgent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if agent, ok := m.agents[id]; ok {
		return agent, nil
	}
	return nil, fmt.Errorf("%w: %s", utils.ErrAgentNotFound, id)
}

func (m *mockAgentRepo) GetByExternalIdentity(ctx context.Context, externalID, externalSource string) (*models.CanonicalAgent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, agent := range m.agents {
		if agent.ExternalID == externalID && agent.ExternalSource == externalSource {
			return agent, nil
		}
	}
	return nil, nil
}

func (m *mockAgentRepo) UpsertByExternalIdentity(ctx context.Context, agent *models.CanonicalAgent) (bool, error) {
	if err, ok := m.upsertErrFor[agent.ExternalID]; ok {
		return false, err
	}
	existing, _ := m.GetByExternalIdentity(ctx, agent.ExternalID, agent.ExternalSource)
	now := time.Now().UTC()
	agent.LastSyncedAt = &now

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing != nil {
		agent.ID = existing.ID
		m.agents[existing.ID] = agent
		return false, nil
	}
	agent.ID = uuid.New()
	m.agents[agent.ID] = agent
	return true, nil
}

func (m *mockAgentRepo) List(ctx context.Context, filter models.AgentFilter) ([]*models.CanonicalAgent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.CanonicalAgent
	for _, agent := range m.agents {
		out = append(out, agent)
	}
	return out, nil
}

func (m *mockAgentRepo) Create(ctx context.Context, agent *models.CanonicalAgent) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, agent)
	}
	// External identity is unique only for synced rows; locally
	// administered agents carry empty strings and are exempt, matching
	// uk_canonical_agents_external_identity.
	if agent.ExternalID != "" && agent.ExternalSource != "" {
		if existing, _ := m.GetByExternalIdentity(ctx, agent.ExternalID, agent.ExternalSource); existing != nil {
			return fmt.Errorf("%w: %s/%s", utils.ErrAgentAlreadyExists, agent.ExternalSource, agent.ExternalID)
		}
	}
	m.put(agent)
	return nil
}

func (m *mockAgentRepo) Update(ctx context.Context, agent *models.CanonicalAgent) error {
	m.updateCalls++
	m.put(agent)
	return nil
}

func (m *mockAgentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.agents[id]; !ok {
		return fmt.Errorf("%w: %s", utils.ErrAgentNotFound, id)
	}
	delete(m.agents, id)
	return nil
}

// mockPlatformRepo is an in-memory test double for PlatformRepository.
type mockPlatformRepo struct {
	platforms []*models.Platform
}

func (m *mockPlatformRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Platform, error) {
	for _, p := range m.platforms {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", utils.ErrPlatformNotFound, id)
}

func (m *mockPlatformRepo) GetByName(ctx context.Context, name string) (*models.Platform, error) {
	for _, p := range m.platforms {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", utils.ErrPlatformNotFound, name)
}

func (m *mockPlatformRepo) ListActive(ctx context.Context) ([]*models.Platform, error) {
	var out []*models.Platform
	for _, p := range m.platforms {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPlatformRepo) Update(ctx context.Context, p *models.Platform) error { return nil }

// mockDeploymentRepo is an in-memory test double for
// DeploymentRepository.
type mockDeploymentRepo struct {
	mu          sync.Mutex
	deployments map[uuid.UUID]*models.AgentDeployment

	createErr error
	// resolve populates Agent/Platform associations for
	// GetWithAssociations.
	agents    map[uuid.UUID]*models.CanonicalAgent
	platforms map[uuid.UUID]*models.Platform
}

func newMockDeploymentRepo() *mockDeploymentRepo {
	return &mockDeploymentRepo{
		deployments: make(map[uuid.UUID]*models.AgentDeployment),
		agents:      make(map[uuid.UUID]*models.CanonicalAgent),
		platforms:   make(map[uuid.UUID]*models.Platform),
	}
}

func (m *mockDeploymentRepo) Create(ctx context.Context, d *models.AgentDeployment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	m.mu.Lock()
	m.deployments[d.ID] = d
	m.mu.Unlock()
	return nil
}

func (m *mockDeploymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AgentDeployment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.deployments[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %s", utils.ErrDeploymentNotFound, id)
}

func (m *mockDeploymentRepo) GetWithAssociations(ctx context.Context, id uuid.UUID) (*models.AgentDeployment, error) {
	d, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Agent = m.agents[d.AgentID]
	d.Platform = m.platforms[d.PlatformID]
	return d, nil
}

func (m *mockDeploymentRepo) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*models.AgentDeployment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.AgentDeployment
	for _, d := range m.deployments {
		if d.AgentID == agentID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDeploymentRepo) MarkInactive(ctx context.Context, id uuid.UUID, undeployedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deployments[id]
	if !ok {
		return fmt.Errorf("%w: %s", utils.ErrDeploymentNotFound, id)
	}
	d.Status = models.DeploymentStatusInactive
	d.UndeployedAt = &undeployedAt
	return nil
}

// mockSyncLogRepo records appended sync log entries.
type mockSyncLogRepo struct {
	mu        sync.Mutex
	entries   []*models.SyncLog
	appendErr error
}

func (m *mockSyncLogRepo) Append(ctx context.Context, entry *models.SyncLog) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()
	return nil
}

func (m *mockSyncLogRepo) ListRecent(ctx context.Context, limit int) ([]*models.SyncLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return m.entries[:limit], nil
}
