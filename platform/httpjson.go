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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Response is a fully buffered platform API response.
type Response struct {
	StatusCode int
	Body       []byte
}

// DecodeMap decodes the response body as a JSON object. A body that is
// not an object (or not JSON at all) yields a map carrying the raw text
// so acknowledgments are never lost for audit.
func (r *Response) DecodeMap() map[string]interface{} {
	var payload map[string]interface{}
	if err := json.Unmarshal(r.Body, &payload); err != nil || payload == nil {
		if len(r.Body) == 0 {
			return map[string]interface{}{}
		}
		return map[string]interface{}{"raw": string(r.Body)}
	}
	return payload
}

// DecodeList decodes the response body as a JSON array of objects.
func (r *Response) DecodeList() ([]map[string]interface{}, error) {
	var list []map[string]interface{}
	if err := json.Unmarshal(r.Body, &list); err != nil {
		// Some platforms wrap the list in an envelope.
		var envelope map[string]json.RawMessage
		if envErr := json.Unmarshal(r.Body, &envelope); envErr == nil {
			for _, key := range []string{"agents", "data", "items"} {
				if raw, ok := envelope[key]; ok {
					if err := json.Unmarshal(raw, &list); err == nil {
						return list, nil
					}
				}
			}
		}
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return list, nil
}

// DoJSON issues a single request with a JSON body (nil for none) and
// buffers the response. No retries: callers own retry policy since not
// every platform call is safe to repeat.
func DoJSON(ctx context.Context, client *http.Client, method, url string, body interface{}) (*Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	buffered, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: buffered}, nil
}
