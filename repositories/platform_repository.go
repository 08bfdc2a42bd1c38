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
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

// PlatformRepository defines the interface for platform data operations
type PlatformRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Platform, error)
	GetByName(ctx context.Context, name string) (*models.Platform, error)
	ListActive(ctx context.Context) ([]*models.Platform, error)
	Update(ctx context.Context, p *models.Platform) error
}

// PlatformRepo implements PlatformRepository using GORM
type PlatformRepo struct {
	db *gorm.DB
}

// NewPlatformRepo creates a new platform repository
func NewPlatformRepo(db *gorm.DB) PlatformRepository {
	return &PlatformRepo{db: db}
}

func (r *PlatformRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Platform, error) {
	var p models.Platform
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", utils.ErrPlatformNotFound, id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PlatformRepo) GetByName(ctx context.Context, name string) (*models.Platform, error) {
	var p models.Platform
	err := r.db.WithContext(ctx).Where("name = ?", strings.ToLower(name)).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", utils.ErrPlatformNotFound, name)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PlatformRepo) ListActive(ctx context.Context) ([]*models.Platform, error) {
	var platforms []*models.Platform
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&platforms).Error
	if err != nil {
		return nil, err
	}
	return platforms, nil
}

func (r *PlatformRepo) Update(ctx context.Context, p *models.Platform) error {
	return r.db.WithContext(ctx).Save(p).Error
}
