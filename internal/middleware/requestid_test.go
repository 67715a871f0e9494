// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/chartkitchen/internal/logging"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{"generates when missing", "", false},
		{"preserves upstream id", "upstream-123", true},
		{"replaces oversized id", strings.Repeat("x", maxRequestIDLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxID, corrID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = logging.RequestIDFromContext(r.Context())
				corrID = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got != ctxID {
				t.Errorf("header %q != context %q", got, ctxID)
			}
			if corrID == "" {
				t.Error("expected a correlation ID in context")
			}
			if tt.wantSame {
				if got != tt.incoming {
					t.Errorf("request ID = %q, want %q", got, tt.incoming)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("generated ID %q is not a UUID: %v", got, err)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs info", http.StatusOK, `"level":"info"`},
		{"client error logs info", http.StatusBadRequest, `"level":"info"`},
		{"server error logs error", http.StatusServiceUnavailable, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			var handlerLogged bool
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logging.Ctx(r.Context()).Info().Msg("inside handler")
				handlerLogged = true
				w.WriteHeader(tt.status)
			})
			handler := RequestID(RequestLogger(zerolog.New(&buf))(inner))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/recommend", nil)
			req.Header.Set(RequestIDHeader, "req-42")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			if !handlerLogged {
				t.Fatal("handler not called")
			}
			for _, want := range []string{
				`"message":"inside handler"`,
				`"message":"http request"`,
				`"request_id":"req-42"`,
				`"path":"/api/v1/recipes/recommend"`,
				tt.wantLevel,
			} {
				if !strings.Contains(out, want) {
					t.Errorf("log output missing %s:\n%s", want, out)
				}
			}
		})
	}
}
