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

// Platform is the GORM model for the platforms table: a named external
// deployment target with its own API and optional capacity constraints.
// Name is stored lowercase and is the key used to resolve the matching
// platform handler.
type Platform struct {
	ID          uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	DisplayName string    `gorm:"column:display_name" json:"displayName"`

	// BaseURL is the platform API root. Empty means the platform is
	// registered but not reachable from this deployment; reconciliation
	// reports it as not_configured.
	BaseURL string `gorm:"column:base_url" json:"baseUrl"`

	// MaxAgents is the platform capacity quota. nil means unlimited.
	MaxAgents *int `gorm:"column:max_agents" json:"maxAgents,omitempty"`

	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:NOW()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:NOW()" json:"updatedAt"`
}

func (Platform) TableName() string { return "platforms" }
