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

// Package registry is the client for the canonical agent registry, the
// single upstream source of truth for agent definitions.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// RegistryClient fetches the full agent collection from the canonical
// registry. Records come back in whatever shape the registry speaks;
// normalization is the schema mapper's job.
type RegistryClient interface {
	FetchAgents(ctx context.Context) ([]map[string]interface{}, error)
	Source() string
}

// Config holds registry client configuration.
type Config struct {
	// BaseURL is the registry API root; agents are fetched from
	// {BaseURL}/agents.
	BaseURL string
	// SourceTag identifies records produced by this registry in the
	// canonical store.
	SourceTag string
	// Timeout bounds a full fetch.
	Timeout time.Duration
}

type registryClient struct {
	baseURL   string
	sourceTag string
	client    *http.Client
}

// NewRegistryClient creates the HTTP registry client. Fetch failures
// are surfaced verbatim with no automatic retry: the sync engine's
// callers own retry policy.
func NewRegistryClient(cfg *Config) (RegistryClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("registry base URL is required")
	}
	sourceTag := cfg.SourceTag
	if sourceTag == "" {
		sourceTag = "agentbackend"
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.Logger = nil
	rc.HTTPClient.Timeout = cfg.Timeout
	// Hand back the final response instead of a synthetic "giving up"
	// error, so upstream status codes and bodies reach the caller.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &registryClient{
		baseURL:   cfg.BaseURL,
		sourceTag: sourceTag,
		client:    rc.StandardClient(),
	}, nil
}

// Source returns the source tag stamped onto records from this
// registry.
func (c *registryClient) Source() string { return c.sourceTag }

// FetchAgents retrieves the full agent collection. Both a bare JSON
// array and the common {"agents": [...]} / {"data": [...]} envelopes
// are accepted.
func (c *registryClient) FetchAgents(ctx context.Context) ([]map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/agents", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry fetch failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	return decodeAgentCollection(body)
}

func decodeAgentCollection(body []byte) ([]map[string]interface{}, error) {
	var agents []map[string]interface{}
	if err := json.Unmarshal(body, &agents); err == nil {
		return agents, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode registry response: %w", err)
	}
	for _, key := range []string{"agents", "data", "items"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &agents); err != nil {
			return nil, fmt.Errorf("failed to decode registry %q collection: %w", key, err)
		}
		return agents, nil
	}
	return nil, fmt.Errorf("registry response carries no agent collection")
}
