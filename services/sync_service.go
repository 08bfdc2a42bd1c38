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

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/clients/registry"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/mapper"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/repositories"
)

const syncOperation = "sync_from_registry"

// SyncOptions controls one sync run.
type SyncOptions struct {
	// PlatformFilter keeps only agents whose registry bookkeeping lists
	// this platform. Empty means no filtering.
	PlatformFilter string
	// Persist writes the mapped agents to the local store. False is a
	// dry run: mapped agents are returned without side effects so the
	// caller can preview a sync before committing.
	Persist bool
}

// SyncError is one isolated per-agent failure inside a batch.
type SyncError struct {
	AgentName string `json:"agentName"`
	Message   string `json:"message"`
}

// SyncResult is the aggregate outcome of one sync run.
type SyncResult struct {
	Agents   []*models.CanonicalAgent `json:"agents"`
	Fetched  int                      `json:"fetched"`
	Mapped   int                      `json:"mapped"`
	Filtered int                      `json:"filtered"`
	Saved    int                      `json:"saved"`
	Updated  int                      `json:"updated"`
	Errors   []SyncError              `json:"errors"`
	Duration time.Duration            `json:"-"`
	SyncedAt time.Time                `json:"syncTimestamp"`
}

// SyncService pulls agent definitions from the canonical registry,
// normalizes them and upserts them into the local store.
type SyncService interface {
	SyncFromRegistry(ctx context.Context, opts SyncOptions) (*SyncResult, error)
	ListSyncLogs(ctx context.Context, limit int) ([]*models.SyncLog, error)
}

type syncService struct {
	registryClient registry.RegistryClient
	agentRepo      repositories.AgentRepository
	syncLogRepo    repositories.SyncLogRepository
	logger         *slog.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(
	registryClient registry.RegistryClient,
	agentRepo repositories.AgentRepository,
	syncLogRepo repositories.SyncLogRepository,
	logger *slog.Logger,
) SyncService {
	return &syncService{
		registryClient: registryClient,
		agentRepo:      agentRepo,
		syncLogRepo:    syncLogRepo,
		logger:         logger,
	}
}

// SyncFromRegistry runs one sync pass: fetch, map, filter, upsert.
// A fetch failure aborts the run and is surfaced to the caller after
// being recorded as a failed sync log. Per-agent upsert failures are
// isolated into the result's error list and never abort the batch:
// upstream batches commonly carry one malformed record among hundreds
// of valid ones, and a run must be partially successful rather than
// all-or-nothing. No retry happens here; retry policy belongs to the
// caller since a blind replay could duplicate work.
func (s *syncService) SyncFromRegistry(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	start := time.Now()
	s.logger.Info("starting registry sync",
		"source", s.registryClient.Source(),
		"platformFilter", opts.PlatformFilter,
		"persist", opts.Persist)

	records, err := s.registryClient.FetchAgents(ctx)
	if err != nil {
		s.appendLog(ctx, models.SyncLogStatusFailed, map[string]interface{}{
			"error":          err.Error(),
			"durationMs":     time.Since(start).Milliseconds(),
			"platformFilter": opts.PlatformFilter,
		})
		return nil, fmt.Errorf("registry sync failed: %w", err)
	}

	result := &SyncResult{
		Fetched: len(records),
		Errors:  []SyncError{},
	}

	source := s.registryClient.Source()
	mapped := make([]*models.CanonicalAgent, 0, len(records))
	for _, record := range records {
		mapped = append(mapped, mapper.Map(record, source))
	}
	result.Mapped = len(mapped)

	if opts.PlatformFilter != "" {
		kept := make([]*models.CanonicalAgent, 0, len(mapped))
		for _, agent := range mapped {
			if agent.DeploymentInfo.IsDeployedTo(opts.PlatformFilter) {
				kept = append(kept, agent)
			}
		}
		mapped = kept
	}
	result.Filtered = len(mapped)
	result.Agents = mapped

	if opts.Persist {
		for _, agent := range mapped {
			if err := s.upsertAgent(ctx, agent, result); err != nil {
				result.Errors = append(result.Errors, SyncError{
					AgentName: agent.Name,
					Message:   err.Error(),
				})
				s.logger.Warn("agent upsert failed, continuing batch",
					"agentName", agent.Name, "externalId", agent.ExternalID, "error", err)
			}
		}
	}

	result.Duration = time.Since(start)
	result.SyncedAt = time.Now().UTC()

	s.appendLog(ctx, models.SyncLogStatusSuccess, map[string]interface{}{
		"fetched":        result.Fetched,
		"mapped":         result.Mapped,
		"filtered":       result.Filtered,
		"saved":          result.Saved,
		"updated":        result.Updated,
		"errors":         result.Errors,
		"durationMs":     result.Duration.Milliseconds(),
		"platformFilter": opts.PlatformFilter,
		"persist":        opts.Persist,
	})

	s.logger.Info("registry sync completed",
		"fetched", result.Fetched,
		"saved", result.Saved,
		"updated", result.Updated,
		"errors", len(result.Errors),
		"duration", result.Duration)

	return result, nil
}

func (s *syncService) upsertAgent(ctx context.Context, agent *models.CanonicalAgent, result *SyncResult) error {
	if agent.ExternalID == "" {
		return fmt.Errorf("record carries no usable identifier")
	}
	created, err := s.agentRepo.UpsertByExternalIdentity(ctx, agent)
	if err != nil {
		return err
	}
	if created {
		result.Saved++
	} else {
		result.Updated++
	}
	return nil
}

// appendLog records the run outcome. Audit failures are logged but do
// not fail the sync itself.
func (s *syncService) appendLog(ctx context.Context, status models.SyncLogStatus, details map[string]interface{}) {
	entry := &models.SyncLog{
		Operation: syncOperation,
		Status:    status,
		Details:   details,
		SyncedAt:  time.Now().UTC(),
	}
	if err := s.syncLogRepo.Append(ctx, entry); err != nil {
		s.logger.Error("failed to append sync log", "error", err)
	}
}

func (s *syncService) ListSyncLogs(ctx context.Context, limit int) ([]*models.SyncLog, error) {
	return s.syncLogRepo.ListRecent(ctx, limit)
}
