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

package models

// SyncAgentsRequest is the request body for POST /sync/agents.
// Platform optionally restricts the run to agents whose registry
// bookkeeping lists that platform. Persist=false is a dry run: mapped
// agents are returned without touching the store.
type SyncAgentsRequest struct {
	Platform string `json:"platform,omitempty"`
	Persist  *bool  `json:"persist,omitempty"`
}

// DeployAgentRequest is the request body for POST /deployments.
type DeployAgentRequest struct {
	AgentID    string `json:"agentId"`
	PlatformID string `json:"platformId"`
	TargetURL  string `json:"targetUrl"`
}

// UndeployResponse is returned by POST /deployments/{id}/undeploy.
type UndeployResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AgentFilter narrows agent list queries.
type AgentFilter struct {
	AgentType string
	IsActive  *bool
	Search    string
}

// CreateAgentRequest is the request body for administrative agent
// creation. Administrative agents have no external identity; synced
// fields are owned by the sync engine and rejected here.
type CreateAgentRequest struct {
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	AgentType         string                 `json:"agentType"`
	Config            map[string]interface{} `json:"config"`
	Capabilities      []string               `json:"capabilities"`
	PersonalityTraits []string               `json:"personalityTraits"`
	VoiceConfig       map[string]interface{} `json:"voiceConfig"`
	KnowledgeBase     map[string]interface{} `json:"knowledgeBase"`
	ProceduresAccess  []string               `json:"proceduresAccess"`
	IsActive          *bool                  `json:"isActive"`
}

// UpdateAgentRequest is the request body for administrative agent
// updates. nil fields are left unchanged.
type UpdateAgentRequest struct {
	Name              *string                `json:"name"`
	Description       *string                `json:"description"`
	AgentType         *string                `json:"agentType"`
	Config            map[string]interface{} `json:"config"`
	Capabilities      []string               `json:"capabilities"`
	PersonalityTraits []string               `json:"personalityTraits"`
	VoiceConfig       map[string]interface{} `json:"voiceConfig"`
	KnowledgeBase     map[string]interface{} `json:"knowledgeBase"`
	ProceduresAccess  []string               `json:"proceduresAccess"`
	IsActive          *bool                  `json:"isActive"`
}
