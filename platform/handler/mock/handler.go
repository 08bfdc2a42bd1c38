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

// Package mock implements an in-memory platform handler for tests and
// local development.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform"
)

// Handler is a mock implementation of platform.Handler with
// configurable failure behavior.
type Handler struct {
	PlatformName string
	ShouldFail   bool
	FailMessage  string

	mu       sync.Mutex
	deployed map[string]time.Time
}

// NewHandler creates a mock handler serving the given platform name.
func NewHandler(name string) *Handler {
	return &Handler{
		PlatformName: name,
		FailMessage:  "mock handler failure",
		deployed:     make(map[string]time.Time),
	}
}

// Name returns the platform name this handler serves.
func (h *Handler) Name() string { return h.PlatformName }

// Deploy records the agent as deployed and returns a synthetic ack.
func (h *Handler) Deploy(ctx context.Context, agent *models.CanonicalAgent, target platform.Target) (map[string]interface{}, error) {
	if h.ShouldFail {
		return nil, fmt.Errorf("%s: %s", h.FailMessage, target.URL)
	}
	id := platform.PlatformAgentID(agent)

	h.mu.Lock()
	h.deployed[id] = time.Now()
	h.mu.Unlock()

	return map[string]interface{}{
		"status":  "received",
		"agentId": id,
	}, nil
}

// Undeploy removes the agent from the in-memory state.
func (h *Handler) Undeploy(ctx context.Context, agentID string, target platform.Target) (map[string]interface{}, error) {
	if h.ShouldFail {
		return nil, fmt.Errorf("%s: %s", h.FailMessage, target.URL)
	}

	h.mu.Lock()
	delete(h.deployed, agentID)
	h.mu.Unlock()

	return map[string]interface{}{
		"status":  "removed",
		"agentId": agentID,
	}, nil
}

// FetchStatus reports whether the agent was deployed through this mock.
func (h *Handler) FetchStatus(ctx context.Context, agentID string, target platform.Target) (*platform.AgentStatus, error) {
	if h.ShouldFail {
		return nil, fmt.Errorf("%s: %s", h.FailMessage, target.URL)
	}

	h.mu.Lock()
	deployedAt, ok := h.deployed[agentID]
	h.mu.Unlock()

	if !ok {
		return &platform.AgentStatus{Status: platform.StateNotDeployed}, nil
	}
	return &platform.AgentStatus{Status: platform.StateDeployed, LastSeen: &deployedAt}, nil
}
