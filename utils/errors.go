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

package utils

import "errors"

var (
	// Resource not found errors
	ErrAgentNotFound      = errors.New("agent not found")
	ErrPlatformNotFound   = errors.New("platform not found")
	ErrDeploymentNotFound = errors.New("deployment not found")
	ErrAgentAlreadyExists = errors.New("agent already exists")

	// Platform handler errors
	ErrUnsupportedPlatform      = errors.New("unsupported platform")
	ErrPlatformCapacityExceeded = errors.New("platform capacity exceeded")
	ErrPlatformNotConfigured    = errors.New("platform not configured")

	// Sync ownership errors
	ErrSyncedFieldImmutable = errors.New("cannot change sync-owned field")

	// Request errors
	ErrInvalidInput = errors.New("invalid input")
	ErrBadRequest   = errors.New("bad request")
)
