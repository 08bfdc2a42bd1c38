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

package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
)

// SyncLogRepository defines the interface for sync audit records.
// Append-only: rows are never mutated.
type SyncLogRepository interface {
	Append(ctx context.Context, entry *models.SyncLog) error
	ListRecent(ctx context.Context, limit int) ([]*models.SyncLog, error)
}

// SyncLogRepo implements SyncLogRepository using GORM
type SyncLogRepo struct {
	db *gorm.DB
}

// NewSyncLogRepo creates a new sync log repository
func NewSyncLogRepo(db *gorm.DB) SyncLogRepository {
	return &SyncLogRepo{db: db}
}

func (r *SyncLogRepo) Append(ctx context.Context, entry *models.SyncLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *SyncLogRepo) ListRecent(ctx context.Context, limit int) ([]*models.SyncLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []*models.SyncLog
	err := r.db.WithContext(ctx).
		Order("synced_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
