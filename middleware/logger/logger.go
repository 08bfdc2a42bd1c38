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

// Package logger provides request-scoped structured logging. The
// request logger middleware stores a logger enriched with request
// attributes in the context; handlers retrieve it with GetLogger.
package logger

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type contextKey string

const loggerKey contextKey = "requestLogger"

// GetLogger returns the request-scoped logger from the context, or the
// default logger when the middleware did not run.
func GetLogger(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// WithLogger stores a logger in the context. Exposed for tests that
// exercise handlers without the middleware chain.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger returns middleware that attaches a request-scoped
// logger to the context and emits one access log line per request.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			log := slog.Default().With(
				"method", r.Method,
				"path", r.URL.Path,
			)
			if correlationID := r.Header.Get("X-Correlation-ID"); correlationID != "" {
				log = log.With("correlationId", correlationID)
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(WithLogger(r.Context(), log)))

			log.Info("request completed",
				"status", rec.status,
				"durationMs", time.Since(start).Milliseconds(),
			)
		})
	}
}
