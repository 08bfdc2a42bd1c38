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
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/repositories"
)

// Drift markers surfaced by reconciliation.
const (
	DriftDeployedButUntracked = "deployed_but_untracked"
	DriftTrackedButAbsent     = "tracked_but_absent"
)

// PlatformStatusEntry is the observed state of one agent on one
// platform.
type PlatformStatusEntry struct {
	Status   string     `json:"status"`
	LastSeen *time.Time `json:"lastSeen,omitempty"`
	Version  string     `json:"version,omitempty"`
	// Message retains the raw upstream error for diagnostics.
	Message string `json:"message,omitempty"`
	// Drift flags a mismatch between local bookkeeping and observed
	// platform state.
	Drift string `json:"drift,omitempty"`
}

// ReconcileResult is the full fan-out outcome for one agent: one entry
// per configured platform, always.
type ReconcileResult struct {
	AgentID          uuid.UUID                       `json:"agentId"`
	DeclaredStatus   models.AgentDeploymentStatus    `json:"declaredStatus"`
	PlatformStatuses map[string]*PlatformStatusEntry `json:"platformStatuses"`
	CheckedAt        time.Time                       `json:"checkedAt"`
}

// ReconcileService queries each configured platform for an agent's live
// state and compares it against local deployment bookkeeping.
type ReconcileService interface {
	Reconcile(ctx context.Context, agentID uuid.UUID) (*ReconcileResult, error)
}

type reconcileService struct {
	agentRepo    repositories.AgentRepository
	platformRepo repositories.PlatformRepository
	handlers     *platform.Registry
	logger       *slog.Logger
}

// NewReconcileService creates a new reconcile service
func NewReconcileService(
	agentRepo repositories.AgentRepository,
	platformRepo repositories.PlatformRepository,
	handlers *platform.Registry,
	logger *slog.Logger,
) ReconcileService {
	return &reconcileService{
		agentRepo:    agentRepo,
		platformRepo: platformRepo,
		handlers:     handlers,
		logger:       logger,
	}
}

// Reconcile fans out across all configured platforms concurrently.
// Per-platform failures are isolated into their map entry and never
// abort the overall reconciliation: each probe runs under its own
// timeout inside the handler, so a slow or down platform cannot delay
// the others past its own window. The call is read-only and
// side-effect free.
func (s *reconcileService) Reconcile(ctx context.Context, agentID uuid.UUID) (*ReconcileResult, error) {
	agent, err := s.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	platforms, err := s.platformRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{
		AgentID:          agent.ID,
		DeclaredStatus:   agent.DeploymentInfo.DeploymentStatus,
		PlatformStatuses: make(map[string]*PlatformStatusEntry, len(platforms)),
		CheckedAt:        time.Now().UTC(),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, p := range platforms {
		wg.Add(1)
		go func(p *models.Platform) {
			defer wg.Done()
			entry := s.probePlatform(ctx, agent, p)

			mu.Lock()
			result.PlatformStatuses[p.Name] = entry
			mu.Unlock()
		}(p)
	}
	wg.Wait()

	return result, nil
}

func (s *reconcileService) probePlatform(ctx context.Context, agent *models.CanonicalAgent, p *models.Platform) *PlatformStatusEntry {
	if p.BaseURL == "" {
		return &PlatformStatusEntry{Status: platform.StateNotConfigured}
	}

	handler, err := s.handlers.Get(p.Name)
	if err != nil {
		return &PlatformStatusEntry{Status: platform.StateError, Message: err.Error()}
	}

	status, err := handler.FetchStatus(ctx, platform.PlatformAgentID(agent), platform.Target{URL: p.BaseURL})
	if err != nil {
		// Transport failure: the platform gave no answer at all.
		s.logger.Warn("platform status probe failed",
			"platform", p.Name, "agentId", agent.ID, "error", err)
		return &PlatformStatusEntry{Status: platform.StateUnknown, Message: err.Error()}
	}

	entry := &PlatformStatusEntry{
		Status:   status.Status,
		LastSeen: status.LastSeen,
		Version:  status.Version,
		Message:  status.Message,
	}
	entry.Drift = detectDrift(agent, p.Name, status.Status)
	return entry
}

// detectDrift compares local bookkeeping against the observed state.
func detectDrift(agent *models.CanonicalAgent, platformName, observed string) string {
	tracked := agent.DeploymentInfo.IsDeployedTo(platformName)
	switch {
	case observed == platform.StateDeployed && !tracked:
		return DriftDeployedButUntracked
	case observed == platform.StateNotDeployed && tracked:
		return DriftTrackedButAbsent
	default:
		return ""
	}
}
