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
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
)

const (
	// EnvPort overrides the default listen port.
	EnvPort = "PORT"

	// EnvShutdownTimeout overrides the shutdown grace period, in seconds.
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Route binds a path to a handler. Operation names the route in metrics,
// logs and the route listing.
type Route struct {
	Path      string
	Operation string
	Handler   http.HandlerFunc
}

// Check gates /ready. Run returns nil when the dependency it guards can
// serve requests.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// Config holds server configuration.
type Config struct {
	Name    string
	Version string

	// Routes are mounted behind the middleware chain.
	Routes []Route

	// Checks gate /ready once the listener is up.
	Checks []Check

	Address string
	Port    int

	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns the defaults with PORT and SHUTDOWN_TIMEOUT_SECONDS
// applied. Unparseable environment values are logged and ignored.
func NewConfig() *Config {
	cfg := &Config{
		Name:              "owadocs",
		Version:           "dev",
		Port:              defaults.ServerPort,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if v, ok := envInt(EnvPort); ok {
		cfg.Port = v
	}
	if v, ok := envInt(EnvShutdownTimeout); ok && v > 0 {
		cfg.ShutdownTimeout = time.Duration(v) * time.Second
	}
	return cfg
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("ignoring invalid environment value", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}

// Addr is the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// Validate reports the first setting the server cannot start with.
func (c *Config) Validate() error {
	invalid := func(field, format string, args ...any) error {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, fmt.Sprintf(format, args...),
			map[string]any{"field": field})
	}

	if c.Port < 0 || c.Port > 65535 {
		return invalid("port", "invalid port %d", c.Port)
	}
	if c.RateLimit <= 0 {
		return invalid("rateLimit", "rate limit must be positive, got %v", float64(c.RateLimit))
	}
	if c.RateLimitBurst <= 0 {
		return invalid("rateLimitBurst", "rate limit burst must be positive, got %d", c.RateLimitBurst)
	}

	seen := make(map[string]bool, len(c.Routes))
	for _, rt := range c.Routes {
		switch {
		case rt.Path == "" || rt.Path[0] != '/':
			return invalid("routes", "route path %q must start with /", rt.Path)
		case rt.Handler == nil:
			return invalid("routes", "route %s has no handler", rt.Path)
		case seen[rt.Path]:
			return invalid("routes", "duplicate route %s", rt.Path)
		}
		seen[rt.Path] = true
	}
	for _, ch := range c.Checks {
		if ch.Name == "" || ch.Run == nil {
			return invalid("checks", "readiness check needs a name and a func")
		}
	}
	return nil
}
