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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
)

func registryRecord(id, name string, deployedTo ...interface{}) map[string]interface{} {
	return map[string]interface{}{
		"id":   id,
		"name": name,
		"type": "support",
		"deployment_info": map[string]interface{}{
			"deployedTo":       deployedTo,
			"deploymentStatus": "active",
		},
	}
}

func newTestSyncService(client *mockRegistryClient, agentRepo *mockAgentRepo, logRepo *mockSyncLogRepo) SyncService {
	return NewSyncService(client, agentRepo, logRepo, slog.Default())
}

func TestSyncFromRegistry_InsertsNewAgents(t *testing.T) {
	client := &mockRegistryClient{
		fetchAgentsFunc: func(ctx context.Context) ([]map[string]interface{}, error) {
			return []map[string]interface{}{
				registryRecord("r1", "Julie"),
				registryRecord("r2", "Pedro Rep"),
			}, nil
		},
	}
	agentRepo := newMockAgentRepo()
	logRepo := &mockSyncLogRepo{}
	svc := newTestSyncService(client, agentRepo, logRepo)

	result, err := svc.SyncFromRegistry(context.Background(), SyncOptions{Persist: true})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 2, result.Mapped)
	assert.Equal(t, 2, result.Saved)
	assert.Equal(t, 0, result.Updated)
	assert.Empty(t, result.Errors)
	assert.Len(t, agentRepo.agents, 2)
}

func TestSyncFromRegistry_SecondRunUpdatesNotDuplicates(t *testing.T) {
	client := &mockRegistryClient{
		fetchAgentsFunc: func(ctx context.Context) ([]map[string]interface{}, error) {
			return []map[string]interface{}{registryRecord("r1", "Julie")}, nil
		},
	}
	agentRepo := newMockAgentRepo()
	logRepo := &mockSyncLogRepo{}
	svc := newTestSyncService(client, agentRepo, logRepo)

	first, err := svc.SyncFromRegistry(context.Background(), SyncOptions{Persist: true})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Saved)

	second, err := svc.SyncFromRegistry(context.Background(), SyncOptions{Persist: true})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Saved)
	assert.Equal(t, 1, second.Updated)

	// Still exactly one row for the (external id, source) pair.
	assert.Len(t, agentRepo.agents, 1)
}

func TestSyncFromRegistry_PerAgentFailureDoesNotAbortBatch(t *testing.T) {
	records := make([]map[string]interface{}, 0, 11)
	for i := 0; i < 10; i++ {
		records = append(records, registryRecord(fmt.Sprintf("r%d", i), fmt.Sprintf("Agent %d", i)))
	}
	records = append(records, registryRecord("poison", "Poison"))

	client := &mockRegistryClient{
		fetchAgentsFunc: func(ctx context.Context) ([]map[string]interface{}, error) {
			return records, nil
		},
	}
	agentRepo := newMockAgentRepo()
	agentRepo.upsertErrFor["poison"] = fmt.Errorf("jsonb serialization failed")
	logRepo := &mockSyncLogRepo{}
	svc := newTestSyncService(client, agentRepo, logRepo)

	result, err := svc.SyncFromRegistry(context.Background(), SyncOptions{Persist: true})
	require.NoError(t, err)

	assert.Equal(t, 11, result.Fetched)
	assert.Equal(t, 10, result.Saved)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Poison", result.Errors[0].AgentName)
	assert.Contains(t, result.Errors[0].Message, "jsonb serialization failed")
	assert.Len(t, agentRepo.agents, 10)
}

func TestSyncFromRegistry_RecordWithoutIdentifierIsIsolated(t *testing.T) {
	client := &mockRegistryClient{
		fetchAgentsFunc: func(ctx context.Context) ([]map[string]interface{}, error) {
			return []map[string]interface{}{
				registryRecord("r1", "Julie"),
				{"name": "No Identity"},
			}, nil
		},
	}
	agentRepo := newMockAgentRepo()
	logRepo := &mockSyncLogRepo{}
	svc := newTestSyncService(client, agentRepo, logRepo)

	result, err := svc.SyncFromRegistry(context.Background(), SyncOptions{Persist: true})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Saved)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "No Identity", result.Errors[0].AgentName)
	assert.Contains(t, result.Errors[0].Message, "no usable identifier")
}

func TestSyncFromRegistry_PlatformFilter(t *testing.T) {
	client := &mockRegistryClient{
		fetchAgentsFunc: func(ctx context.Context) ([]map[string]interface{}, error) {
			return []map[string]interface{}{
				registryRecord("r1", "Julie", "pedro"),
				registryRecord("r2", "Pedro Rep", "pedro", "repconnect1"),
				registryRecord("r3", "Loner"),
			}, nil
		},
	}
	agentRepo := newMockAgentRepo()
	logRepo := &mockSyncLogRepo{}
	svc := newTestSyncService(client, agentRepo, logRepo)

	result, err := svc.SyncFromRegistry(context.Background(), SyncOptions{
		PlatformFilter: "repconnect1",
		Persist:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 3, result.Mapped)
	assert.Equal(t, 1, result.Filtered)
	assert.Equal(t, 1, result.Saved)
	require.Len(t, result.Agents, 1)
	assert.Equal(t, "Pedro Rep", result.Agents[0].Name)
}

func TestSyncFromRegistry_DryRunHasNoSideEffects(t *testing.T) {
	client := &mockRegistryClient{
		fetchAgentsFunc: func(ctx context.Context) ([]map[string]interface{}, error) {
			return []map[string]interface{}{registryRecord("r1", "Julie")}, nil
		},
	}
	agentRepo := newMockAgentRepo()
	logRepo := &mockSyncLogRepo{}
	svc := newTestSyncService(client, agentRepo, logRepo)

	result, err := svc.SyncFromRegistry(context.Background(), SyncOptions{Persist: false})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Mapped)
	assert.Equal(t, 0, result.Saved)
	assert.Equal(t, 0, result.Updated)
	assert.Len(t, result.Agents, 1)
	assert.Empty(t, agentRepo.agents)

	// The run itself is still audited.
	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, models.SyncLogStatusSuccess, logRepo.entries[0].Status)
}

func TestSyncFromRegistry_FetchFailureWritesFailedLog(t *testing.T) {
	client := &mockRegistryClient{
		fetchAgentsFunc: func(ctx context.Context) ([]map[string]interface{}, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}
	agentRepo := newMockAgentRepo()
	logRepo := &mockSyncLogRepo{}
	svc := newTestSyncService(client, agentRepo, logRepo)

	result, err := svc.SyncFromRegistry(context.Background(), SyncOptions{Persist: true})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "connection refused")

	// Exactly one fetch attempt: no automatic retry.
	assert.Equal(t, 1, client.fetchCalls)

	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, models.SyncLogStatusFailed, logRepo.entries[0].Status)
	assert.Empty(t, agentRepo.agents)
}

func TestSyncFromRegistry_AuditFailureDoesNotFailSync(t *testing.T) {
	client := &mockRegistryClient{
		fetchAgentsFunc: func(ctx context.Context) ([]map[string]interface{}, error) {
			return []map[string]interface{}{registryRecord("r1", "Julie")}, nil
		},
	}
	agentRepo := newMockAgentRepo()
	logRepo := &mockSyncLogRepo{appendErr: fmt.Errorf("sync_logs table unavailable")}
	svc := newTestSyncService(client, agentRepo, logRepo)

	result, err := svc.SyncFromRegistry(context.Background(), SyncOptions{Persist: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Saved)
}

func TestListSyncLogs(t *testing.T) {
	logRepo := &mockSyncLogRepo{entries: []*models.SyncLog{
		{Operation: "sync_from_registry", Status: models.SyncLogStatusSuccess},
		{Operation: "sync_from_registry", Status: models.SyncLogStatusFailed},
	}}
	svc := newTestSyncService(&mockRegistryClient{}, newMockAgentRepo(), logRepo)

	logs, err := svc.ListSyncLogs(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
