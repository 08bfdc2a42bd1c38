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

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// AgentType classifies an agent by its conversational role.
// Free-form source type strings are normalized into this closed set
// by the schema mapper; anything unrecognized becomes AgentTypeSupport.
type AgentType string

const (
	AgentTypePatientCare AgentType = "patient-care"
	AgentTypeSales       AgentType = "sales"
	AgentTypeSupport     AgentType = "support"
	AgentTypeSpecialist  AgentType = "specialist"
)

// AgentDeploymentStatus is the declared (bookkeeping) status carried
// inside DeploymentInfo, as opposed to the live status observed by
// reconciliation.
type AgentDeploymentStatus string

const (
	AgentDeploymentStatusUnknown     AgentDeploymentStatus = "unknown"
	AgentDeploymentStatusActive      AgentDeploymentStatus = "active"
	AgentDeploymentStatusIdle        AgentDeploymentStatus = "idle"
	AgentDeploymentStatusError       AgentDeploymentStatus = "error"
	AgentDeploymentStatusMaintenance AgentDeploymentStatus = "maintenance"
)

// DeploymentInfo is the per-agent deployment bookkeeping blob synced
// from the canonical registry.
type DeploymentInfo struct {
	DeployedTo       []string              `json:"deployedTo"`
	DeploymentStatus AgentDeploymentStatus `json:"deploymentStatus"`
	LastDeployed     *time.Time            `json:"lastDeployed"`
}

// IsDeployedTo reports whether the registry bookkeeping lists the given
// platform name for this agent.
func (d DeploymentInfo) IsDeployedTo(platformName string) bool {
	return slices.Contains(d.DeployedTo, platformName)
}

// CanonicalAgent is the GORM model for the canonical_agents table: the
// normalized representation of an agent definition, regardless of which
// upstream registry dialect produced it.
//
// The pair (ExternalID, ExternalSource) is the sole identity used for
// upsert matching during sync. The local UUID primary key is never
// exposed to the source registry.
type CanonicalAgent struct {
	ID             uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalID     string    `gorm:"column:external_id" json:"externalId"`
	ExternalSource string    `gorm:"column:external_source" json:"externalSource"`

	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	AgentType   AgentType `gorm:"column:agent_type" json:"agentType"`

	Config            map[string]interface{} `gorm:"column:config;type:jsonb;serializer:json" json:"config"`
	Capabilities      []string               `gorm:"column:capabilities;type:jsonb;serializer:json" json:"capabilities"`
	PersonalityTraits []string               `gorm:"column:personality_traits;type:jsonb;serializer:json" json:"personalityTraits"`
	VoiceConfig       map[string]interface{} `gorm:"column:voice_config;type:jsonb;serializer:json" json:"voiceConfig"`
	KnowledgeBase     map[string]interface{} `gorm:"column:knowledge_base;type:jsonb;serializer:json" json:"knowledgeBase"`
	ProceduresAccess  []string               `gorm:"column:procedures_access;type:jsonb;serializer:json" json:"proceduresAccess"`
	DeploymentInfo    DeploymentInfo         `gorm:"column:deployment_info;type:jsonb;serializer:json" json:"deploymentInfo"`

	IsActive bool `gorm:"column:is_active" json:"isActive"`

	// Source-supplied timestamps; nil when the upstream record carried none.
	ExternalCreatedAt *time.Time `gorm:"column:external_created_at" json:"externalCreatedAt"`
	ExternalUpdatedAt *time.Time `gorm:"column:external_updated_at" json:"externalUpdatedAt"`

	LastSyncedAt *time.Time `gorm:"column:last_synced_at" json:"lastSyncedAt"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null;default:NOW()" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null;default:NOW()" json:"updatedAt"`
}

func (CanonicalAgent) TableName() string { return "canonical_agents" }

// HasExternalSource reports whether this agent is backed by an upstream
// registry. Locally administered agents have neither external identity
// field set and are exempt from sync ownership rules.
func (a *CanonicalAgent) HasExternalSource() bool {
	return a.ExternalID != "" && a.ExternalSource != ""
}
