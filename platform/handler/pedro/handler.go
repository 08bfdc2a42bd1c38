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

// Package pedro implements the platform handler for Pedro, a
// capacity-limited deployment target.
package pedro

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

const handlerName = "pedro"

// Handler deploys agents to Pedro. Pedro enforces a capacity quota, so
// deploy first queries the current agent count and rejects when the
// configured maximum would be exceeded. The check-then-act is a
// best-effort guard: concurrent deploys from other operators can slip
// past it, and Pedro offers no atomic reservation to close the race.
type Handler struct {
	client        *http.Client
	deployTimeout time.Duration
	probeTimeout  time.Duration
	logger        *slog.Logger
}

// NewHandler creates the Pedro handler.
func NewHandler(deployTimeout, probeTimeout time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		client:        &http.Client{},
		deployTimeout: deployTimeout,
		probeTimeout:  probeTimeout,
		logger:        logger,
	}
}

// Name returns the platform name this handler serves.
func (h *Handler) Name() string { return handlerName }

// Deploy checks Pedro's capacity and pushes the agent projection to
// POST {target}/agents/receive. The acknowledgment is returned
// unmodified for audit.
func (h *Handler) Deploy(ctx context.Context, agent *models.CanonicalAgent, target platform.Target) (map[string]interface{}, error) {
	if target.MaxAgents != nil {
		count, err := h.currentAgentCount(ctx, target.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to check pedro capacity: %w", err)
		}
		if count >= *target.MaxAgents {
			return nil, fmt.Errorf("%w: pedro allows a maximum of %d agents, currently hosting %d",
				utils.ErrPlatformCapacityExceeded, *target.MaxAgents, count)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, h.deployTimeout)
	defer cancel()

	payload := platform.NewDeployPayload(agent)
	resp, err := platform.DoJSON(ctx, h.client, http.MethodPost, target.URL+"/agents/receive", payload)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("pedro deploy failed with status %d: %s", resp.StatusCode, string(resp.Body))
	}

	h.logger.Info("agent deployed to pedro", "agentId", payload.ID, "targetUrl", target.URL)
	return resp.DecodeMap(), nil
}

// Undeploy removes the agent via DELETE {target}/agents/{id}.
func (h *Handler) Undeploy(ctx context.Context, agentID string, target platform.Target) (map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, h.deployTimeout)
	defer cancel()

	resp, err := platform.DoJSON(ctx, h.client, http.MethodDelete, target.URL+"/agents/"+agentID, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("pedro undeploy failed with status %d: %s", resp.StatusCode, string(resp.Body))
	}

	h.logger.Info("agent undeployed from pedro", "agentId", agentID, "targetUrl", target.URL)
	return resp.DecodeMap(), nil
}

// FetchStatus probes GET {target}/agents/{id} for live presence.
func (h *Handler) FetchStatus(ctx context.Context, agentID string, target platform.Target) (*platform.AgentStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()

	resp, err := platform.DoJSON(ctx, h.client, http.MethodGet, target.URL+"/agents/"+agentID, nil)
	if err != nil {
		return nil, err
	}
	return platform.StatusFromProbe(resp), nil
}

// currentAgentCount lists Pedro's agents for the quota check.
func (h *Handler) currentAgentCount(ctx context.Context, baseURL string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()

	resp, err := platform.DoJSON(ctx, h.client, http.MethodGet, baseURL+"/agents", nil)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("pedro agent listing failed with status %d", resp.StatusCode)
	}
	agents, err := resp.DecodeList()
	if err != nil {
		return 0, err
	}
	return len(agents), nil
}
