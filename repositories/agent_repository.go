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
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

// AgentRepository defines the interface for canonical agent data
// operations.
type AgentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.CanonicalAgent, error)

	// GetByExternalIdentity looks an agent up by its upstream identity
	// pair. Returns (nil, nil) when absent: the sync engine treats a
	// miss as "insert", not an error.
	GetByExternalIdentity(ctx context.Context, externalID, externalSource string) (*models.CanonicalAgent, error)

	// UpsertByExternalIdentity inserts or updates by the upstream
	// identity pair and stamps last_synced_at. Returns whether a new
	// row was created.
	UpsertByExternalIdentity(ctx context.Context, agent *models.CanonicalAgent) (created bool, err error)

	List(ctx context.Context, filter models.AgentFilter) ([]*models.CanonicalAgent, error)
	Create(ctx context.Context, agent *models.CanonicalAgent) error
	Update(ctx context.Context, agent *models.CanonicalAgent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AgentRepo implements AgentRepository using GORM
type AgentRepo struct {
	db *gorm.DB
}

// NewAgentRepo creates a new agent repository
func NewAgentRepo(db *gorm.DB) AgentRepository {
	return &AgentRepo{db: db}
}

func (r *AgentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CanonicalAgent, error) {
	var agent models.CanonicalAgent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&agent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", utils.ErrAgentNotFound, id)
		}
		return nil, err
	}
	return &agent, nil
}

func (r *AgentRepo) GetByExternalIdentity(ctx context.Context, externalID, externalSource string) (*models.CanonicalAgent, error) {
	var agent models.CanonicalAgent
	err := r.db.WithContext(ctx).
		Where("external_id = ? AND external_source = ?", externalID, externalSource).
		First(&agent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agent, nil
}

func (r *AgentRepo) UpsertByExternalIdentity(ctx context.Context, agent *models.CanonicalAgent) (bool, error) {
	existing, err := r.GetByExternalIdentity(ctx, agent.ExternalID, agent.ExternalSource)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	agent.LastSyncedAt = &now

	if existing == nil {
		if err := r.db.WithContext(ctx).Create(agent).Error; err != nil {
			return false, err
		}
		return true, nil
	}

	// Preserve the local identity; everything the registry owns is
	// replaced wholesale.
	agent.ID = existing.ID
	agent.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Model(&models.CanonicalAgent{}).
		Where("id = ?", existing.ID).
		Select("*").Omit("id", "created_at").
		Updates(agent).Error; err != nil {
		return false, err
	}
	return false, nil
}

func (r *AgentRepo) List(ctx context.Context, filter models.AgentFilter) ([]*models.CanonicalAgent, error) {
	query := r.db.WithContext(ctx).Model(&models.CanonicalAgent{})
	if filter.AgentType != "" {
		query = query.Where("agent_type = ?", filter.AgentType)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var agents []*models.CanonicalAgent
	if err := query.Order("name ASC").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *AgentRepo) Create(ctx context.Context, agent *models.CanonicalAgent) error {
	err := r.db.WithContext(ctx).Create(agent).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s/%s", utils.ErrAgentAlreadyExists, agent.ExternalSource, agent.ExternalID)
	}
	return err
}

func (r *AgentRepo) Update(ctx context.Context, agent *models.CanonicalAgent) error {
	return r.db.WithContext(ctx).Save(agent).Error
}

func (r *AgentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CanonicalAgent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", utils.ErrAgentNotFound, id)
	}
	return nil
}
