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

//go:build wireinject
// +build wireinject

package wiring

import (
	"github.com/google/wire"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/config"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/controllers"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/repositories"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/services"
)

var configProviderSet = wire.NewSet(
	ProvideConfigFromPtr,
)

var loggerProviderSet = wire.NewSet(
	ProvideLogger,
)

var clientProviderSet = wire.NewSet(
	ProvideRegistryClient,
	ProvidePlatformRegistry,
)

var repositoryProviderSet = wire.NewSet(
	ProvideDB,
	repositories.NewAgentRepo,
	repositories.NewPlatformRepo,
	repositories.NewDeploymentRepo,
	repositories.NewSyncLogRepo,
)

var serviceProviderSet = wire.NewSet(
	services.NewSyncService,
	services.NewAgentService,
	services.NewDeploymentService,
	services.NewReconcileService,
)

var controllerProviderSet = wire.NewSet(
	controllers.NewSyncController,
	controllers.NewAgentController,
	controllers.NewDeploymentController,
)

func InitializeAppParams(cfg *config.Config) (*AppParams, error) {
	wire.Build(
		configProviderSet,
		loggerProviderSet,
		clientProviderSet,
		repositoryProviderSet,
		serviceProviderSet,
		controllerProviderSet,
		wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil
}
