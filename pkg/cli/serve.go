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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/api"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve rendered plugin documentation over HTTP for local preview.",
		Description: `Starts an HTTP server that exposes the same operations as the other commands:

  GET /v1/plugins            - discovery report
  GET /v1/collect?id=<id>    - collected metadata as JSON
  GET /v1/render?id=<id>     - rendered Markdown page

Any other query parameter is treated as a local handler option, for example
/v1/render?id=desktop&heading_level=3. Health, readiness and Prometheus
metrics are served on /health, /ready and /metrics.

The port defaults to $PORT or 8080.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to listen on (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "Requests per second allowed across all clients",
			},
			&cli.IntFlag{
				Name:  "rate-limit-burst",
				Usage: "Burst size for the rate limiter",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := serverConfig(cmd)
			if err != nil {
				return err
			}

			h, err := newHandler(cmd)
			if err != nil {
				return err
			}

			return api.Serve(ctx, h, cfg, version)
		},
	}
}

// serverConfig starts from the environment defaults and applies the flags
// that were set explicitly.
func serverConfig(cmd *cli.Command) (*server.Config, error) {
	cfg := server.NewConfig()

	if cmd.IsSet("address") {
		cfg.Address = cmd.String("address")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}
	if cmd.IsSet("rate-limit") {
		cfg.RateLimit = rate.Limit(cmd.Float("rate-limit"))
	}
	if cmd.IsSet("rate-limit-burst") {
		cfg.RateLimitBurst = cmd.Int("rate-limit-burst")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
