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
	"time"

	"github.com/google/uuid"
)

// DeploymentStatus is the lifecycle status of a deployment record.
// Records are never deleted: undeploy transitions active -> inactive and
// the table is conceptually an append-only history.
type DeploymentStatus string

const (
	DeploymentStatusActive   DeploymentStatus = "active"
	DeploymentStatusInactive DeploymentStatus = "inactive"
)

// AgentDeployment is the GORM model for the agent_deployments table: one
// row per (agent, platform, attempt lineage). A fresh deploy always
// inserts a new row rather than reactivating an inactive one.
type AgentDeployment struct {
	ID            uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	AgentID       uuid.UUID `gorm:"column:agent_id;not null" json:"agentId"`
	PlatformID    uuid.UUID `gorm:"column:platform_id;not null" json:"platformId"`
	DeploymentURL string    `gorm:"column:deployment_url" json:"deploymentUrl"`

	Status       DeploymentStatus `gorm:"column:status;not null" json:"status"`
	DeployedAt   time.Time        `gorm:"column:deployed_at;not null" json:"deployedAt"`
	UndeployedAt *time.Time       `gorm:"column:undeployed_at" json:"undeployedAt"`

	// DeploymentConfig captures the request payload sent to the platform
	// and the platform's raw acknowledgment, for audit and debugging.
	DeploymentConfig map[string]interface{} `gorm:"column:deployment_config;type:jsonb;serializer:json" json:"deploymentConfig"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:NOW()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:NOW()" json:"updatedAt"`

	// Populated via Preload for undeploy/status flows; never written back.
	Agent    *CanonicalAgent `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	Platform *Platform       `gorm:"foreignKey:PlatformID" json:"platform,omitempty"`
}

func (AgentDeployment) TableName() string { return "agent_deployments" }
