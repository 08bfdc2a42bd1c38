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
	"fmt"
	"strings"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/utils"
)

// Registry resolves platform names to handlers. It is populated once at
// startup and immutable afterwards, so concurrent lookups need no
// locking.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds a registry from the given handlers, keyed by
// lowercase handler name. A duplicate name panics: registration happens
// only during wiring and a duplicate is a programming error.
func NewRegistry(handlers ...Handler) *Registry {
	byName := make(map[string]Handler, len(handlers))
	for _, h := range handlers {
		name := strings.ToLower(h.Name())
		if _, exists := byName[name]; exists {
			panic(fmt.Sprintf("platform handler %q registered twice", name))
		}
		byName[name] = h
	}
	return &Registry{handlers: byName}
}

// Get returns the handler for the given platform name
// (case-insensitive) or ErrUnsupportedPlatform when none is registered.
func (r *Registry) Get(name string) (Handler, error) {
	handler, ok := r.handlers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrUnsupportedPlatform, name)
	}
	return handler, nil
}

// Names returns the registered platform names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}
