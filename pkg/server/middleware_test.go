// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	s, err := New(opts...)
	require.NoError(t, err)
	return s
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) middleware {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next(w, r)
			}
		}
	}

	h := chain(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") },
		mark("outer"), mark("inner"))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWrap_SetsRequestContext(t *testing.T) {
	var gotID, gotOp string
	s := newTestServer(t, WithRoutes(Route{
		Path:      "/v1/render",
		Operation: "render",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			gotID, gotOp = RequestID(r), Operation(r)
			w.WriteHeader(http.StatusNoContent)
		},
	}))

	w := serve(s.Handler(), http.MethodGet, "/v1/render?id=desktop")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "render", gotOp)
	assert.Equal(t, w.Header().Get(RequestIDHeader), gotID)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestAssignRequestID(t *testing.T) {
	const valid = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when missing", "", false},
		{"caller UUID kept", valid, true},
		{"invalid replaced", "not-a-uuid", false},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := s.assignRequestID(func(_ http.ResponseWriter, r *http.Request) { seen = RequestID(r) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			h(w, req)

			got := w.Header().Get(RequestIDHeader)
			assert.Equal(t, seen, got)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
				assert.Len(t, got, len(valid))
			}
		})
	}
}

func TestLimit_RejectsOverBurst(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	s := newTestServer(t, WithConfig(cfg), WithRoutes(Route{Path: "/v1/plugins", Operation: "plugins", Handler: okHandler}))

	before := testutil.ToFloat64(rateLimitRejects)

	first := serve(s.Handler(), http.MethodGet, "/v1/plugins")
	assert.Equal(t, http.StatusOK, first.Code)

	second := serve(s.Handler(), http.MethodGet, "/v1/plugins")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))

	resp := decodeErrorResponse(t, second)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", resp.Code)
	assert.True(t, resp.Retryable)
	assert.Equal(t, second.Header().Get(RequestIDHeader), resp.RequestID)
	assert.Equal(t, before+1, testutil.ToFloat64(rateLimitRejects))
}

func TestRecoverPanic(t *testing.T) {
	s := newTestServer(t, WithRoutes(Route{
		Path:      "/v1/collect",
		Operation: "collect",
		Handler:   func(http.ResponseWriter, *http.Request) { panic("extractor bug") },
	}))

	before := testutil.ToFloat64(panicRecoveries)
	w := serve(s.Handler(), http.MethodGet, "/v1/collect?id=desktop")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL", decodeErrorResponse(t, w).Code)
	assert.Equal(t, before+1, testutil.ToFloat64(panicRecoveries))
}

func TestInstrument_RecordsByOperation(t *testing.T) {
	body := []byte("## desktop\n")
	s := newTestServer(t, WithRoutes(Route{
		Path:      "/v1/render",
		Operation: "render",
		Handler: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(body)
		},
	}))

	counter := requestsTotal.WithLabelValues("render", http.MethodGet, "200")
	before := testutil.ToFloat64(counter)

	serve(s.Handler(), http.MethodGet, "/v1/render?id=desktop")
	serve(s.Handler(), http.MethodGet, "/v1/render?id=example")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := newRecorder(w)
	assert.Same(t, rec, newRecorder(rec))
	assert.Equal(t, http.StatusOK, rec.Status())

	rec.WriteHeader(http.StatusNotFound)
	rec.WriteHeader(http.StatusInternalServerError)
	_, err := rec.Write([]byte("missing"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Status())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, len("missing"), rec.bytes)
	assert.Same(t, w, rec.Unwrap())
}
