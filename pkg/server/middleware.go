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
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

type middleware func(http.HandlerFunc) http.HandlerFunc

// chain applies mws so that the first one is outermost.
func chain(h http.HandlerFunc, mws ...middleware) http.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// wrap puts rt behind the middleware chain. Panics are recovered before
// the limiter so a crashing handler still spends its token.
func (s *Server) wrap(rt Route) http.HandlerFunc {
	return chain(rt.Handler,
		s.instrument(rt.Operation),
		s.assignRequestID,
		s.recoverPanic,
		s.limit,
		s.logRequest,
	)
}

// instrument tags the request with its operation and records metrics.
func (s *Server) instrument(op string) middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestsInFlight.Inc()
			defer requestsInFlight.Dec()

			rec := newRecorder(w)
			next(rec, withValue(r, operationKey, op))

			requestsTotal.WithLabelValues(op, r.Method, strconv.Itoa(rec.Status())).Inc()
			requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
			responseSize.WithLabelValues(op).Observe(float64(rec.bytes))
		}
	}
}

// assignRequestID keeps a caller-supplied UUID or generates a new one.
func (s *Server) assignRequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next(w, withValue(r, requestIDKey, id))
	}
}

func (s *Server) recoverPanic(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				panicRecoveries.Inc()
				slog.Error("docs handler panicked",
					"operation", Operation(r),
					"requestID", RequestID(r),
					"panic", fmt.Sprint(v),
				)
				WriteError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternal,
					"Internal server error", true, nil)
			}
		}()
		next(w, r)
	}
}

func (s *Server) limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			rateLimitRejects.Inc()
			w.Header().Set("Retry-After", "1")
			WriteError(w, r, http.StatusTooManyRequests, apperrors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", true, map[string]any{
					"limit": float64(s.config.RateLimit),
					"burst": s.config.RateLimitBurst,
				})
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(int(s.config.RateLimit)))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(s.limiter.Tokens())))
		next(w, r)
	}
}

func (s *Server) logRequest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newRecorder(w)
		next(rec, r)

		slog.Debug("docs request",
			"operation", Operation(r),
			"requestID", RequestID(r),
			"method", r.Method,
			"query", r.URL.RawQuery,
			"status", rec.Status(),
			"bytes", rec.bytes,
			"duration", time.Since(start).String(),
		)
	}
}
