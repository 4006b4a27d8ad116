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
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Server serves docs routes behind a shared middleware chain.
type Server struct {
	config     *Config
	httpServer *http.Server
	limiter    *rate.Limiter
	started    atomic.Bool
}

// Option is a functional option for configuring a Server.
type Option func(*Config)

// WithName sets the name reported by "/", /health and /ready.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithVersion sets the reported version.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.Version = version
	}
}

// WithRoutes appends routes.
func WithRoutes(routes ...Route) Option {
	return func(c *Config) {
		c.Routes = append(c.Routes, routes...)
	}
}

// WithCheck adds a readiness check.
func WithCheck(name string, run func(ctx context.Context) error) Option {
	return func(c *Config) {
		c.Checks = append(c.Checks, Check{Name: name, Run: run})
	}
}

// WithConfig replaces the base configuration. Apply it before the other
// options, which modify whatever config is current.
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		if cfg != nil {
			*c = *cfg
		}
	}
}

// New builds a Server from NewConfig and opts.
func New(opts ...Option) (*Server, error) {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		config:  cfg,
		limiter: rate.NewLimiter(cfg.RateLimit, cfg.RateLimitBurst),
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.setupRoutes(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
	return s, nil
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens and serves until ctx is done, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.started.Store(true)
	slog.Info("docs server listening", "address", ln.Addr().String(), "routes", len(s.config.Routes))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.WithoutCancel(ctx))
	case err := <-errCh:
		s.started.Store(false)
		return err
	}
}

// Shutdown stops accepting requests and waits up to ShutdownTimeout for
// in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.started.Store(false)

	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down docs server", "timeout", s.config.ShutdownTimeout)
	return s.httpServer.Shutdown(ctx)
}

// Run starts the server and stops it on SIGINT, SIGTERM or when ctx is
// done.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("docs server config",
		"name", s.config.Name,
		"version", s.config.Version,
		"address", s.httpServer.Addr,
		"rateLimit", float64(s.config.RateLimit),
		"rateLimitBurst", s.config.RateLimitBurst,
		"checks", len(s.config.Checks),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("docs server: %w", err)
	}

	slog.Info("docs server stopped")
	return nil
}
