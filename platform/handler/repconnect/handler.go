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

// Package repconnect implements the handler for platforms speaking the
// standard agent-receive API with no admission constraints. One handler
// instance is registered per platform name (repconnect1, repspheres).
package repconnect

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform"
)

// Handler deploys agents to a quota-free standard platform.
type Handler struct {
	name          string
	client        *http.Client
	deployTimeout time.Duration
	probeTimeout  time.Duration
	logger        *slog.Logger
}

// NewHandler creates a handler serving the given platform name.
func NewHandler(name string, deployTimeout, probeTimeout time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		name:          name,
		client:        &http.Client{},
		deployTimeout: deployTimeout,
		probeTimeout:  probeTimeout,
		logger:        logger,
	}
}

// Name returns the platform name this handler serves.
func (h *Handler) Name() string { return h.name }

// Deploy pushes the agent projection to POST {target}/agents/receive.
func (h *Handler) Deploy(ctx context.Context, agent *models.CanonicalAgent, target platform.Target) (map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, h.deployTimeout)
	defer cancel()

	payload := platform.NewDeployPayload(agent)
	resp, err := platform.DoJSON(ctx, h.client, http.MethodPost, target.URL+"/agents/receive", payload)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s deploy failed with status %d: %s", h.name, resp.StatusCode, string(resp.Body))
	}

	h.logger.Info("agent deployed", "platform", h.name, "agentId", payload.ID, "targetUrl", target.URL)
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
		return nil, fmt.Errorf("%s undeploy failed with status %d: %s", h.name, resp.StatusCode, string(resp.Body))
	}

	h.logger.Info("agent undeployed", "platform", h.name, "agentId", agentID, "targetUrl", target.URL)
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
