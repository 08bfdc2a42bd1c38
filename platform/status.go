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

package platform

import (
	"net/http"
	"time"
)

// StatusFromProbe interprets a GET /agents/{id} probe response:
// 200 with a truthy activity flag is deployed, 404 is not_deployed,
// anything else is an error state with the raw body retained for
// diagnostics.
func StatusFromProbe(resp *Response) *AgentStatus {
	switch {
	case resp.StatusCode == http.StatusOK:
		body := resp.DecodeMap()
		status := &AgentStatus{Status: StateNotDeployed}
		if probeActivityFlag(body) {
			status.Status = StateDeployed
		}
		if version, ok := body["version"].(string); ok {
			status.Version = version
		}
		if lastSeen := probeTimestamp(body, "lastSeen", "last_seen"); lastSeen != nil {
			status.LastSeen = lastSeen
		}
		return status
	case resp.StatusCode == http.StatusNotFound:
		return &AgentStatus{Status: StateNotDeployed}
	default:
		return &AgentStatus{
			Status:  StateError,
			Message: http.StatusText(resp.StatusCode) + ": " + string(resp.Body),
		}
	}
}

// probeActivityFlag walks the known activity field dialects in order.
// A 200 without any recognized flag still counts as deployed: the
// platform answered for the agent.
func probeActivityFlag(body map[string]interface{}) bool {
	for _, key := range []string{"isActive", "is_active", "active", "deployed"} {
		if flag, ok := body[key].(bool); ok {
			return flag
		}
	}
	if status, ok := body["status"].(string); ok {
		return status == "active" || status == "deployed" || status == "running"
	}
	return true
}

func probeTimestamp(body map[string]interface{}, keys ...string) *time.Time {
	for _, key := range keys {
		if raw, ok := body[key].(string); ok {
			if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
				return &parsed
			}
		}
	}
	return nil
}
