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

package wiring

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	registryclient "github.com/wso2/ai-agent-management-platform/agent-sync-service/clients/registry"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/config"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/controllers"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/db"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform/handler/pedro"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform/handler/repconnect"
)

// AppParams contains all wired application dependencies
type AppParams struct {
	Logger *slog.Logger

	// Controllers
	SyncController       controllers.SyncController
	AgentController      controllers.AgentController
	DeploymentController controllers.DeploymentController

	// Database
	DB *gorm.DB
}

func ProvideConfigFromPtr(config *config.Config) config.Config {
	return *config
}

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

// ProvideDB provides the shared gorm database handle
func ProvideDB() *gorm.DB {
	return db.GetDB()
}

// ProvideRegistryClient creates the canonical registry client
func ProvideRegistryClient(cfg config.Config) (registryclient.RegistryClient, error) {
	return registryclient.NewRegistryClient(&registryclient.Config{
		BaseURL:   cfg.Registry.BaseURL,
		SourceTag: cfg.Registry.SourceTag,
		Timeout:   time.Duration(cfg.Registry.TimeoutSeconds) * time.Second,
	})
}

// ProvidePlatformRegistry builds the handler registry for all supported
// deployment platforms. Platform endpoints and quotas come from the
// platforms table at call time; only timeouts are fixed here.
func ProvidePlatformRegistry(cfg config.Config, logger *slog.Logger) *platform.Registry {
	deployTimeout := time.Duration(cfg.Platforms.DeployTimeoutSeconds) * time.Second
	probeTimeout := time.Duration(cfg.Platforms.StatusTimeoutSeconds) * time.Second

	return platform.NewRegistry(
		pedro.NewHandler(deployTimeout, probeTimeout, logger),
		repconnect.NewHandler("repconnect1", deployTimeout, probeTimeout, logger),
		repconnect.NewHandler("repspheres", deployTimeout, probeTimeout, logger),
	)
}
