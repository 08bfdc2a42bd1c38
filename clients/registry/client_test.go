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

package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryClient_RequiresBaseURL(t *testing.T) {
	_, err := NewRegistryClient(&Config{})
	require.Error(t, err)
}

func TestNewRegistryClient_DefaultSourceTag(t *testing.T) {
	c, err := NewRegistryClient(&Config{BaseURL: "http://registry.local"})
	require.NoError(t, err)
	assert.Equal(t, "agentbackend", c.Source())
}

func TestNewRegistryClient_ConfiguredSourceTag(t *testing.T) {
	c, err := NewRegistryClient(&Config{BaseURL: "http://registry.local", SourceTag: "staging-backend"})
	require.NoError(t, err)
	assert.Equal(t, "staging-backend", c.Source())
}

func TestFetchAgents_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "r1", "name": "Julie"}, {"id": "r2", "name": "Pedro Rep"}]`))
	}))
	defer srv.Close()

	c, err := NewRegistryClient(&Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	agents, err := c.FetchAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "Julie", agents[0]["name"])
}

func TestFetchAgents_Envelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"agents": [{"id": "r1"}], "total": 1}`))
	}))
	defer srv.Close()

	c, err := NewRegistryClient(&Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	agents, err := c.FetchAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "r1", agents[0]["id"])
}

func TestFetchAgents_NoCollectionInEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "nothing here"}`))
	}))
	defer srv.Close()

	c, err := NewRegistryClient(&Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	_, err = c.FetchAgents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no agent collection")
}

func TestFetchAgents_ServerErrorNoRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := NewRegistryClient(&Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	_, err = c.FetchAgents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
	assert.Contains(t, err.Error(), "upstream down")

	// A failed fetch is surfaced once, not replayed.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchAgents_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	c, err := NewRegistryClient(&Config{BaseURL: srv.URL, Timeout: 30 * time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.FetchAgents(ctx)
	require.Error(t, err)
}
