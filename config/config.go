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

package config

// Config holds all configuration for the application
type Config struct {
	PackageVersion      string
	ServerHost          string
	ServerPort          int
	AutoMaxProcsEnabled bool
	LogLevel            string
	POSTGRESQL          POSTGRESQL

	// HTTP Server timeout configurations
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	MaxHeaderBytes      int

	// Database operation timeout configuration
	DbOperationTimeoutSeconds int

	// CORSAllowedOrigin is the single allowed origin for CORS; use "*" to allow all
	CORSAllowedOrigin string

	// Canonical registry configuration (upstream source of agent definitions)
	Registry RegistryConfig

	// Platform handler configuration (outbound deploy/status calls)
	Platforms PlatformsConfig
}

// RegistryConfig holds canonical registry API configuration
type RegistryConfig struct {
	// BaseURL is the canonical registry API root; GET {BaseURL}/agents
	BaseURL string
	// SourceTag is stamped onto records synced from this registry
	SourceTag string
	// TimeoutSeconds bounds a full registry fetch
	TimeoutSeconds int
}

// PlatformsConfig holds timeouts shared by all platform handlers.
// Per-platform endpoints and quotas live in the platforms table.
type PlatformsConfig struct {
	// DeployTimeoutSeconds bounds a single deploy/undeploy call
	DeployTimeoutSeconds int
	// StatusTimeoutSeconds bounds a single per-platform status probe
	StatusTimeoutSeconds int
}

type POSTGRESQL struct {
	Host     string
	Port     int
	User     string
	DBName   string
	Password string `json:"-"`
	DbConfigs
}

type DbConfigs struct {
	// gorm configs
	SlowThresholdMilliseconds int64
	SkipDefaultTransaction    bool

	// go sql configs
	MaxIdleCount       *int64 // zero means defaultMaxIdleConns (2); negative means 0
	MaxOpenCount       *int64 // <= 0 means unlimited
	MaxLifetimeSeconds *int64 // maximum amount of time a connection may be reused
	MaxIdleTimeSeconds *int64
}
