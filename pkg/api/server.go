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
	"log/slog"

	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/handler"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/server"
)

// discoveryCheck names the readiness check guarding the plugin snapshot.
const discoveryCheck = "discovery"

// Serve runs the preview server for h until ctx is done or the process is
// interrupted. A nil cfg uses server.NewConfig. Plugin discovery starts in
// the background as soon as the server is built, detached from any request,
// and /ready reports 503 until it completes.
func Serve(ctx context.Context, h *handler.Handler, cfg *server.Config, version string) error {
	if cfg == nil {
		cfg = server.NewConfig()
	}

	s, err := newServer(h, cfg, version)
	if err != nil {
		return err
	}

	go warmDiscovery(context.WithoutCancel(ctx), h)

	slog.Info("starting preview server", "theme", h.Config().Theme, "version", version)
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

func newServer(h *handler.Handler, cfg *server.Config, version string) (*server.Server, error) {
	return server.New(
		server.WithConfig(cfg),
		server.WithName(handler.Name),
		server.WithVersion(version),
		server.WithRoutes(NewDocs(h, version).Routes()...),
		server.WithCheck(discoveryCheck, discoveryReady(h)),
	)
}

// warmDiscovery populates the snapshot so the first request does not pay
// for discovery.
func warmDiscovery(ctx context.Context, h *handler.Handler) {
	snap, err := h.Discovery().Snapshot(ctx)
	if err != nil {
		slog.Warn("plugin discovery failed, retrying on first request", "error", err)
		return
	}
	slog.Info("plugin discovery ready",
		"discovered", len(snap.Names()),
		"failed", len(snap.FailedNames()))
}

func discoveryReady(h *handler.Handler) func(context.Context) error {
	return func(context.Context) error {
		if h.Discovery().Ready() {
			return nil
		}
		return apperrors.New(apperrors.ErrCodeUnavailable, "plugin discovery has not completed")
	}
}
