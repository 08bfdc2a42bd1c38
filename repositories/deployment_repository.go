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

// DeploymentRepository defines the interface for deployment history
// operations. The table is append-only: rows are inserted and their
// status flipped, never deleted.
type DeploymentRepository interface {
	Create(ctx context.Context, deployment *models.AgentDeployment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AgentDeployment, error)

	// GetWithAssociations loads the record joined with its agent and
	// platform, as needed by undeploy.
	GetWithAssociations(ctx context.Context, id uuid.UUID) (*models.AgentDeployment, error)

	// ListByAgent returns all records for an agent, newest first, both
	// active and inactive.
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*models.AgentDeployment, error)

	// MarkInactive transitions a record to inactive and stamps
	// undeployed_at.
	MarkInactive(ctx context.Context, id uuid.UUID, undeployedAt time.Time) error
}

// DeploymentRepo implements DeploymentRepository using GORM
type DeploymentRepo struct {
	db *gorm.DB
}

// NewDeploymentRepo creates a new deployment repository
func NewDeploymentRepo(db *gorm.DB) DeploymentRepository {
	return &DeploymentRepo{db: db}
}

func (r *DeploymentRepo) Create(ctx context.Context, deployment *models.AgentDeployment) error {
	if deployment.ID == uuid.Nil {
		deployment.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(deployment).Error
}

func (r *DeploymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AgentDeployment, error) {
	var deployment models.AgentDeployment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&deployment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", utils.ErrDeploymentNotFound, id)
		}
		return nil, err
	}
	return &deployment, nil
}

func (r *DeploymentRepo) GetWithAssociations(ctx context.Context, id uuid.UUID) (*models.AgentDeployment, error) {
	var deployment models.AgentDeployment
	err := r.db.WithContext(ctx).
		Preload("Agent").
		Preload("Platform").
		Where("id = ?", id).
		First(&deployment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", utils.ErrDeploymentNotFound, id)
		}
		return nil, err
	}
	return &deployment, nil
}

func (r *DeploymentRepo) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*models.AgentDeployment, error) {
	var deployments []*models.AgentDeployment
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("deployed_at DESC").
		Find(&deployments).Error
	if err != nil {
		return nil, err
	}
	return deployments, nil
}

func (r *DeploymentRepo) MarkInactive(ctx context.Context, id uuid.UUID, undeployedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.AgentDeployment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.DeploymentStatusInactive,
			"undeployed_at": undeployedAt,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", utils.ErrDeploymentNotFound, id)
	}
	return nil
}
