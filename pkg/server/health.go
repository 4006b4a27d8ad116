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
	"context"
	"net/http"
	"time"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/serializer"
)

const (
	checkOK = "ok"

	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusStarting = "starting"
	statusNotReady = "not_ready"
)

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string            `json:"status" yaml:"status"`
	Name      string            `json:"name,omitempty" yaml:"name,omitempty"`
	Version   string            `json:"version,omitempty" yaml:"version,omitempty"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// handleHealth reports liveness: the process answers.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !AllowGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    statusHealthy,
		Name:      s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC(),
	})
}

// handleReady reports 200 only when the listener is up and every
// configured check passes. Each check gets its own timeout.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !AllowGet(w, r) {
		return
	}

	resp := HealthResponse{
		Status:    statusReady,
		Name:      s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC(),
	}

	if !s.started.Load() {
		resp.Status = statusStarting
		serializer.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	if len(s.config.Checks) > 0 {
		resp.Checks = make(map[string]string, len(s.config.Checks))
	}
	for _, ch := range s.config.Checks {
		err := runCheck(r.Context(), ch)
		if err != nil {
			resp.Status = statusNotReady
			resp.Checks[ch.Name] = err.Error()
			readyState.WithLabelValues(ch.Name).Set(0)
			continue
		}
		resp.Checks[ch.Name] = checkOK
		readyState.WithLabelValues(ch.Name).Set(1)
	}

	status := http.StatusOK
	if resp.Status != statusReady {
		status = http.StatusServiceUnavailable
	}
	serializer.RespondJSON(w, status, resp)
}

func runCheck(ctx context.Context, ch Check) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.ServerReadyCheckTimeout)
	defer cancel()
	return ch.Run(ctx)
}

// AllowGet answers anything but GET with 405 and reports whether the
// request may proceed.
func AllowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}
