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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/handler"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/options"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/serializer"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/server"
)

const (
	// idParam names the query parameter carrying the identifier.
	idParam = "id"

	// cacheMaxAge is sent on successful document responses.
	cacheMaxAge = 60
)

// Docs serves the handler's operations over HTTP.
type Docs struct {
	handler *handler.Handler
	version string
	timeout time.Duration
}

// NewDocs returns HTTP handlers for h. version is stamped on emitted
// documents.
func NewDocs(h *handler.Handler, version string) *Docs {
	return &Docs{
		handler: h,
		version: version,
		timeout: defaults.DocsHandlerTimeout,
	}
}

// Routes returns the docs routes, one per handler operation.
func (d *Docs) Routes() []server.Route {
	return []server.Route{
		{Path: "/v1/plugins", Operation: "plugins", Handler: d.HandlePlugins},
		{Path: "/v1/collect", Operation: "collect", Handler: d.HandleCollect},
		{Path: "/v1/render", Operation: "render", Handler: d.HandleRender},
	}
}

// HandlePlugins handles GET /v1/plugins.
func (d *Docs) HandlePlugins(w http.ResponseWriter, r *http.Request) {
	if !server.AllowGet(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), d.timeout)
	defer cancel()

	snap, err := d.handler.Discovery().Snapshot(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "plugin discovery failed", nil)
		return
	}

	setCacheHeaders(w)
	serializer.Respond(w, r, http.StatusOK, handler.NewReportDocument(snap.Report(), d.version))
}

// HandleCollect handles GET /v1/collect.
func (d *Docs) HandleCollect(w http.ResponseWriter, r *http.Request) {
	if !server.AllowGet(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), d.timeout)
	defer cancel()

	id, opts, ok := d.parseRequest(w, r)
	if !ok {
		return
	}

	md, err := d.handler.Collect(ctx, id, opts)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "collection failed", map[string]any{idParam: id})
		return
	}

	setCacheHeaders(w)
	serializer.Respond(w, r, http.StatusOK, handler.NewMetadataDocument(md, d.version))
}

// HandleRender handles GET /v1/render.
func (d *Docs) HandleRender(w http.ResponseWriter, r *http.Request) {
	if !server.AllowGet(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), d.timeout)
	defer cancel()

	id, opts, ok := d.parseRequest(w, r)
	if !ok {
		return
	}

	md, err := d.handler.Collect(ctx, id, opts)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "collection failed", map[string]any{idParam: id})
		return
	}

	page, err := d.handler.Render(md, opts)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "render failed", map[string]any{idParam: id})
		return
	}

	slog.Debug("rendered page",
		"requestID", server.RequestID(r),
		idParam, id,
		"bytes", len(page),
	)

	setCacheHeaders(w)
	serializer.RespondMarkdown(w, http.StatusOK, page)
}

// parseRequest reads the identifier and local options. It writes the error
// response and returns false when the request is invalid.
func (d *Docs) parseRequest(w http.ResponseWriter, r *http.Request) (string, options.Options, bool) {
	query := r.URL.Query()
	id := query.Get(idParam)
	if id == "" {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("query parameter %q is required", idParam), false, nil)
		return "", options.Options{}, false
	}

	local, err := options.FromValues(query, idParam)
	if err != nil {
		writeInvalidOptions(w, r, id, err)
		return "", options.Options{}, false
	}

	opts, err := d.handler.GetOptions(local)
	if err != nil {
		writeInvalidOptions(w, r, id, err)
		return "", options.Options{}, false
	}
	return id, opts, true
}

func writeInvalidOptions(w http.ResponseWriter, r *http.Request, id string, err error) {
	server.WriteErrorFromErr(w, r,
		apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid options", err),
		"invalid options", map[string]any{idParam: id})
}

func setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", cacheMaxAge))
}
