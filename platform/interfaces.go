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

package platform

import (
	"context"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
)

// Handler is the per-platform deployment strategy. Implementations are
// stateless aside from the HTTP calls they issue; one handler instance
// serves all requests for its platform.
type Handler interface {
	// Name returns the lowercase platform name this handler serves.
	Name() string

	// Deploy pushes the agent to the target and returns the platform's
	// raw acknowledgment payload unmodified, so the orchestrator can
	// persist it for audit. Admission rules (e.g. capacity quotas) are
	// enforced here before the deploy call is issued.
	Deploy(ctx context.Context, agent *models.CanonicalAgent, target Target) (map[string]interface{}, error)

	// Undeploy removes the agent from the target by its platform-facing
	// id and returns the platform's raw acknowledgment.
	Undeploy(ctx context.Context, agentID string, target Target) (map[string]interface{}, error)

	// FetchStatus probes the target for the agent's live presence.
	// A missing agent is reported via AgentStatus, not an error; errors
	// are reserved for transport failures and unexpected statuses.
	FetchStatus(ctx context.Context, agentID string, target Target) (*AgentStatus, error)
}
