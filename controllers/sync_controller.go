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

package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/middleware/logger"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/services"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

// SyncController defines interface for registry sync HTTP handlers
type SyncController interface {
	SyncAgents(w http.ResponseWriter, r *http.Request)
	ListSyncLogs(w http.ResponseWriter, r *http.Request)
}

type syncController struct {
	syncService services.SyncService
}

// NewSyncController creates a new sync controller
func NewSyncController(syncService services.SyncService) SyncController {
	return &syncController{syncService: syncService}
}

func (c *syncController) SyncAgents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	// Body is optional: an empty POST triggers a full persisted sync.
	var req models.SyncAgentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("SyncAgents: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	opts := services.SyncOptions{
		PlatformFilter: req.Platform,
		Persist:        true,
	}
	if req.Persist != nil {
		opts.Persist = *req.Persist
	}

	result, err := c.syncService.SyncFromRegistry(ctx, opts)
	if err != nil {
		log.Error("SyncAgents: sync run failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Failed to fetch agents from registry")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, result)
}

func (c *syncController) ListSyncLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	limit := getIntQueryParam(r, "limit", 50)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	logs, err := c.syncService.ListSyncLogs(ctx, limit)
	if err != nil {
		log.Error("ListSyncLogs: failed to list sync logs", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list sync logs")
		return
	}

	resp := map[string]interface{}{
		"logs":  logs,
		"count": len(logs),
	}
	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}
