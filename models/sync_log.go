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

// SyncLogStatus is the outcome of one sync run.
type SyncLogStatus string

const (
	SyncLogStatusSuccess SyncLogStatus = "success"
	SyncLogStatusFailed  SyncLogStatus = "failed"
)

// SyncLog is the GORM model for the sync_logs table: an append-only
// audit record of each sync engine run. Rows are never mutated.
type SyncLog struct {
	ID        uuid.UUID              `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Operation string                 `gorm:"column:operation;not null" json:"operation"`
	Status    SyncLogStatus          `gorm:"column:status;not null" json:"status"`
	Details   map[string]interface{} `gorm:"column:details;type:jsonb;serializer:json" json:"details"`
	SyncedAt  time.Time              `gorm:"column:synced_at;not null" json:"syncedAt"`
}

func (SyncLog) TableName() string { return "sync_logs" }
