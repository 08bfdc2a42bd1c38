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
	"time"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
)

// Live platform states observed during reconciliation.
const (
	StateDeployed      = "deployed"
	StateNotDeployed   = "not_deployed"
	StateError         = "error"
	StateUnknown       = "unknown"
	StateNotConfigured = "not_configured"
)

// Target identifies where a handler call should go and carries the
// platform-specific constraints the handler enforces.
type Target struct {
	// URL is the platform API root for this call.
	URL string
	// MaxAgents is the platform capacity quota; nil means unlimited.
	MaxAgents *int
}

// AgentStatus is the live presence of one agent on one platform.
type AgentStatus struct {
	Status   string     `json:"status"`
	LastSeen *time.Time `json:"lastSeen,omitempty"`
	Version  string     `json:"version,omitempty"`
	// Message retains the raw upstream diagnostics for error states.
	Message string `json:"message,omitempty"`
}

// DeployPayload is the narrow projection of a CanonicalAgent that
// target platform APIs accept. Internal bookkeeping (sync timestamps,
// local primary key internals, audit fields) stays out of the wire
// format.
type DeployPayload struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Type             string                 `json:"type"`
	Personality      []string               `json:"personality"`
	Capabilities     []string               `json:"capabilities"`
	VoiceConfig      map[string]interface{} `json:"voiceConfig"`
	KnowledgeBase    map[string]interface{} `json:"knowledgeBase"`
	ProceduresAccess []string               `json:"proceduresAccess"`
}

// NewDeployPayload builds the wire projection for an agent. Platforms
// address agents by their external id; locally administered agents fall
// back to the local UUID.
func NewDeployPayload(agent *models.CanonicalAgent) DeployPayload {
	return DeployPayload{
		ID:               PlatformAgentID(agent),
		Name:             agent.Name,
		Type:             string(agent.AgentType),
		Personality:      agent.PersonalityTraits,
		Capabilities:     agent.Capabilities,
		VoiceConfig:      agent.VoiceConfig,
		KnowledgeBase:    agent.KnowledgeBase,
		ProceduresAccess: agent.ProceduresAccess,
	}
}

// PlatformAgentID returns the id a platform knows this agent by.
func PlatformAgentID(agent *models.CanonicalAgent) string {
	if agent.ExternalID != "" {
		return agent.ExternalID
	}
	return agent.ID.String()
}
