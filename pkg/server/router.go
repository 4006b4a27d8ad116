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
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/serializer"
)

const (
	healthPath  = "/health"
	readyPath   = "/ready"
	metricsPath = "/metrics"
)

// RouteInfo describes one mounted route in the root listing.
type RouteInfo struct {
	Path      string `json:"path"`
	Operation string `json:"operation"`
}

// Index is the body served on "/".
type Index struct {
	Name      string      `json:"name"`
	Version   string      `json:"version"`
	Ready     bool        `json:"ready"`
	Timestamp time.Time   `json:"timestamp"`
	Routes    []RouteInfo `json:"routes"`
}

// setupRoutes mounts system endpoints directly and every configured route
// behind the middleware chain. "/" lists the routes unless a route claims it.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(healthPath, s.handleHealth)
	mux.HandleFunc(readyPath, s.handleReady)
	mux.Handle(metricsPath, promhttp.Handler())

	hasRoot := false
	for _, rt := range s.config.Routes {
		hasRoot = hasRoot || rt.Path == "/"
		mux.HandleFunc(rt.Path, s.wrap(rt))
	}
	if !hasRoot {
		mux.HandleFunc("/", s.wrap(Route{Path: "/", Operation: "index", Handler: s.handleIndex}))
	}
	return mux
}

func (s *Server) index() Index {
	routes := make([]RouteInfo, 0, len(s.config.Routes)+3)
	for _, rt := range s.config.Routes {
		routes = append(routes, RouteInfo{Path: rt.Path, Operation: rt.Operation})
	}
	routes = append(routes,
		RouteInfo{Path: healthPath, Operation: "health"},
		RouteInfo{Path: readyPath, Operation: "ready"},
		RouteInfo{Path: metricsPath, Operation: "metrics"},
	)
	slices.SortFunc(routes, func(a, b RouteInfo) int {
		return strings.Compare(a.Path, b.Path)
	})

	return Index{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.started.Load(),
		Timestamp: time.Now().UTC(),
		Routes:    routes,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if !AllowGet(w, r) {
		return
	}
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path})
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.index())
}
