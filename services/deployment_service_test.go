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
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform/handler/mock"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

type deployFixture struct {
	svc            DeploymentService
	agentRepo      *mockAgentRepo
	platformRepo   *mockPlatformRepo
	deploymentRepo *mockDeploymentRepo
	handler        *mock.Handler

	agent *models.CanonicalAgent
	plat  *models.Platform
}

func newDeployFixture(t *testing.T) *deployFixture {
	t.Helper()

	agentRepo := newMockAgentRepo()
	agent := agentRepo.put(&models.CanonicalAgent{
		ExternalID:     "ext-1",
		ExternalSource: "agentbackend",
		Name:           "Julie",
		AgentType:      models.AgentTypePatientCare,
	})

	plat := &models.Platform{
		ID:       uuid.New(),
		Name:     "pedro",
		BaseURL:  "https://pedro.example.com",
		IsActive: true,
	}
	platformRepo := &mockPlatformRepo{platforms: []*models.Platform{plat}}

	handler := mock.NewHandler("pedro")
	deploymentRepo := newMockDeploymentRepo()
	deploymentRepo.agents[agent.ID] = agent
	deploymentRepo.platforms[plat.ID] = plat

	svc := NewDeploymentService(agentRepo, platformRepo, deploymentRepo,
		platform.NewRegistry(handler), slog.Default())

	return &deployFixture{
		svc:            svc,
		agentRepo:      agentRepo,
		platformRepo:   platformRepo,
		deploymentRepo: deploymentRepo,
		handler:        handler,
		agent:          agent,
		plat:           plat,
	}
}

func TestDeploy_CreatesActiveRecord(t *testing.T) {
	f := newDeployFixture(t)

	record, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.NoError(t, err)

	assert.Equal(t, models.DeploymentStatusActive, record.Status)
	assert.Equal(t, f.agent.ID, record.AgentID)
	assert.Equal(t, f.plat.ID, record.PlatformID)
	assert.Equal(t, "https://pedro.example.com", record.DeploymentURL)
	assert.False(t, record.DeployedAt.IsZero())
	assert.Nil(t, record.UndeployedAt)

	// The platform acknowledgment is preserved for audit.
	require.NotNil(t, record.DeploymentConfig)
	assert.Contains(t, record.DeploymentConfig, "request")
	assert.Contains(t, record.DeploymentConfig, "response")
}

func TestDeploy_ExplicitTargetURLWins(t *testing.T) {
	f := newDeployFixture(t)

	record, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "https://staging.pedro.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://staging.pedro.example.com", record.DeploymentURL)
}

func TestDeploy_AgentNotFound(t *testing.T) {
	f := newDeployFixture(t)

	_, err := f.svc.Deploy(context.Background(), uuid.New(), f.plat.ID, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrAgentNotFound)
	assert.Empty(t, f.deploymentRepo.deployments)
}

func TestDeploy_PlatformNotFound(t *testing.T) {
	f := newDeployFixture(t)

	_, err := f.svc.Deploy(context.Background(), f.agent.ID, uuid.New(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrPlatformNotFound)
}

func TestDeploy_UnsupportedPlatform(t *testing.T) {
	f := newDeployFixture(t)
	rogue := &models.Platform{ID: uuid.New(), Name: "rogue", BaseURL: "https://rogue.example.com", IsActive: true}
	f.platformRepo.platforms = append(f.platformRepo.platforms, rogue)

	_, err := f.svc.Deploy(context.Background(), f.agent.ID, rogue.ID, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrUnsupportedPlatform)
}

func TestDeploy_NoTargetURLConfigured(t *testing.T) {
	f := newDeployFixture(t)
	f.plat.BaseURL = ""

	_, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrPlatformNotConfigured)
	assert.Empty(t, f.deploymentRepo.deployments)
}

func TestDeploy_HandlerRejectionLeavesNoRecord(t *testing.T) {
	f := newDeployFixture(t)
	f.handler.ShouldFail = true
	f.handler.FailMessage = "pedro allows a maximum of 5 agents"

	_, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum")
	assert.Empty(t, f.deploymentRepo.deployments)
}

func TestUndeploy_TransitionsToInactive(t *testing.T) {
	f := newDeployFixture(t)

	record, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.NoError(t, err)

	require.NoError(t, f.svc.Undeploy(context.Background(), record.ID))

	stored := f.deploymentRepo.deployments[record.ID]
	assert.Equal(t, models.DeploymentStatusInactive, stored.Status)
	require.NotNil(t, stored.UndeployedAt)

	// The record survives undeploy: history is append-only.
	assert.Len(t, f.deploymentRepo.deployments, 1)
}

func TestUndeploy_RejectsInactiveRecord(t *testing.T) {
	f := newDeployFixture(t)

	record, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.NoError(t, err)
	require.NoError(t, f.svc.Undeploy(context.Background(), record.ID))

	err = f.svc.Undeploy(context.Background(), record.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUndeploy_NotFound(t *testing.T) {
	f := newDeployFixture(t)

	err := f.svc.Undeploy(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrDeploymentNotFound)
}

func TestUndeploy_HandlerFailureKeepsRecordActive(t *testing.T) {
	f := newDeployFixture(t)

	record, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.NoError(t, err)

	f.handler.ShouldFail = true
	err = f.svc.Undeploy(context.Background(), record.ID)
	require.Error(t, err)

	assert.Equal(t, models.DeploymentStatusActive, f.deploymentRepo.deployments[record.ID].Status)
}

func TestRedeployAfterUndeploy_InsertsFreshRecord(t *testing.T) {
	f := newDeployFixture(t)

	first, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.NoError(t, err)
	require.NoError(t, f.svc.Undeploy(context.Background(), first.ID))

	second, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.deploymentRepo.deployments, 2)
	assert.Equal(t, models.DeploymentStatusInactive, f.deploymentRepo.deployments[first.ID].Status)
	assert.Equal(t, models.DeploymentStatusActive, f.deploymentRepo.deployments[second.ID].Status)
}

func TestListAgentDeployments_UnknownAgent(t *testing.T) {
	f := newDeployFixture(t)

	_, err := f.svc.ListAgentDeployments(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrAgentNotFound)
}

func TestListAgentDeployments_ReturnsFullHistory(t *testing.T) {
	f := newDeployFixture(t)

	first, err := f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.NoError(t, err)
	require.NoError(t, f.svc.Undeploy(context.Background(), first.ID))
	_, err = f.svc.Deploy(context.Background(), f.agent.ID, f.plat.ID, "")
	require.NoError(t, err)

	history, err := f.svc.ListAgentDeployments(context.Background(), f.agent.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
