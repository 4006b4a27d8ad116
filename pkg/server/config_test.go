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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvShutdownTimeout, "")

	cfg := NewConfig()
	assert.Equal(t, "owadocs", cfg.Name)
	assert.Equal(t, defaults.ServerPort, cfg.Port)
	assert.Equal(t, rate.Limit(defaults.ServerRateLimit), cfg.RateLimit)
	assert.Equal(t, defaults.ServerRateLimitBurst, cfg.RateLimitBurst)
	assert.Equal(t, defaults.ServerReadHeaderTimeout, cfg.ReadHeaderTimeout)
	assert.Equal(t, defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_Environment(t *testing.T) {
	tests := []struct {
		name         string
		port         string
		shutdown     string
		wantPort     int
		wantShutdown time.Duration
	}{
		{"overrides", "9090", "5", 9090, 5 * time.Second},
		{"invalid values ignored", "http", "soon", defaults.ServerPort, defaults.ServerShutdownTimeout},
		{"non-positive shutdown ignored", "9090", "0", 9090, defaults.ServerShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPort, tt.port)
			t.Setenv(EnvShutdownTimeout, tt.shutdown)

			cfg := NewConfig()
			assert.Equal(t, tt.wantPort, cfg.Port)
			assert.Equal(t, tt.wantShutdown, cfg.ShutdownTimeout)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	ready := func(context.Context) error { return nil }

	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"port too large", func(c *Config) { c.Port = 70000 }, "port"},
		{"negative port", func(c *Config) { c.Port = -1 }, "port"},
		{"zero rate limit", func(c *Config) { c.RateLimit = 0 }, "rateLimit"},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, "rateLimitBurst"},
		{"relative route", func(c *Config) {
			c.Routes = []Route{{Path: "v1/render", Operation: "render", Handler: okHandler}}
		}, "routes"},
		{"route without handler", func(c *Config) {
			c.Routes = []Route{{Path: "/v1/render", Operation: "render"}}
		}, "routes"},
		{"duplicate route", func(c *Config) {
			c.Routes = []Route{
				{Path: "/v1/render", Operation: "render", Handler: okHandler},
				{Path: "/v1/render", Operation: "render", Handler: okHandler},
			}
		}, "routes"},
		{"unnamed check", func(c *Config) { c.Checks = []Check{{Run: ready}} }, "checks"},
		{"check without func", func(c *Config) { c.Checks = []Check{{Name: "discovery"}} }, "checks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))

			var se *apperrors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantField, se.Context["field"])
		})
	}
}
