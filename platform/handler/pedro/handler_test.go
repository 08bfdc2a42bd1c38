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

package pedro

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/platform"
	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

func newTestHandler() *Handler {
	return NewHandler(5*time.Second, 5*time.Second, slog.Default())
}

func testAgent() *models.CanonicalAgent {
	return &models.CanonicalAgent{
		ExternalID:     "ext-1",
		ExternalSource: "agentbackend",
		Name:           "Julie",
		AgentType:      models.AgentTypePatientCare,
	}
}

// pedroServer simulates Pedro's agent API with a fixed hosted count.
func pedroServer(t *testing.T, hostedCount int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /agents", func(w http.ResponseWriter, r *http.Request) {
		agents := make([]map[string]interface{}, hostedCount)
		for i := range agents {
			agents[i] = map[string]interface{}{"id": i}
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(agents))
	})
	mux.HandleFunc("POST /agents/receive", func(w http.ResponseWriter, r *http.Request) {
		var payload platform.DeployPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ext-1", payload.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "received",
			"agentId": payload.ID,
		}))
	})
	mux.HandleFunc("DELETE /agents/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{"status": "removed"}))
	})
	mux.HandleFunc("GET /agents/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "ext-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{"isActive": true}))
	})
	return httptest.NewServer(mux)
}

func maxAgents(n int) *int { return &n }

func TestDeploy_UnderQuota(t *testing.T) {
	srv := pedroServer(t, 3)
	defer srv.Close()

	h := newTestHandler()
	ack, err := h.Deploy(context.Background(), testAgent(), platform.Target{
		URL:       srv.URL,
		MaxAgents: maxAgents(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "received", ack["status"])
}

func TestDeploy_QuotaExceeded(t *testing.T) {
	srv := pedroServer(t, 5)
	defer srv.Close()

	h := newTestHandler()
	_, err := h.Deploy(context.Background(), testAgent(), platform.Target{
		URL:       srv.URL,
		MaxAgents: maxAgents(5),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrPlatformCapacityExceeded)
	assert.Contains(t, err.Error(), "maximum")
}

func TestDeploy_NoQuotaSkipsCapacityCheck(t *testing.T) {
	// Only the deploy endpoint exists: a capacity check would 404 and
	// fail the call.
	mux := http.NewServeMux()
	mux.HandleFunc("POST /agents/receive", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": "received"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	h := newTestHandler()
	_, err := h.Deploy(context.Background(), testAgent(), platform.Target{URL: srv.URL})
	require.NoError(t, err)
}

func TestDeploy_PlatformRejection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /agents/receive", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid agent payload", http.StatusUnprocessableEntity)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	h := newTestHandler()
	_, err := h.Deploy(context.Background(), testAgent(), platform.Target{URL: srv.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid agent payload")
}

func TestUndeploy(t *testing.T) {
	srv := pedroServer(t, 0)
	defer srv.Close()

	h := newTestHandler()
	ack, err := h.Undeploy(context.Background(), "ext-1", platform.Target{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "removed", ack["status"])
}

func TestFetchStatus_Deployed(t *testing.T) {
	srv := pedroServer(t, 0)
	defer srv.Close()

	h := newTestHandler()
	status, err := h.FetchStatus(context.Background(), "ext-1", platform.Target{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, platform.StateDeployed, status.Status)
}

func TestFetchStatus_NotDeployed(t *testing.T) {
	srv := pedroServer(t, 0)
	defer srv.Close()

	h := newTestHandler()
	status, err := h.FetchStatus(context.Background(), "ext-other", platform.Target{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, platform.StateNotDeployed, status.Status)
}

func TestFetchStatus_TransportFailure(t *testing.T) {
	srv := pedroServer(t, 0)
	srv.Close() // unreachable target

	h := newTestHandler()
	_, err := h.FetchStatus(context.Background(), "ext-1", platform.Target{URL: srv.URL})
	require.Error(t, err)
}

func TestFetchStatus_RespectsProbeTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	h := NewHandler(5*time.Second, 50*time.Millisecond, slog.Default())

	start := time.Now()
	_, err := h.FetchStatus(context.Background(), "ext-1", platform.Target{URL: srv.URL})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
