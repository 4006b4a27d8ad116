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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/logging"
)

const (
	name           = "owadocs"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                      name,
		Version:                   fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Usage:                     "Generate reference documentation for OWA environment plugins",
		Description: `Discovers installed OWA environment plugins and renders their reference
documentation the same way the mkdocstrings "owa" handler does inside a docs build:

  plugins - list discovered plugins and the ones that failed to load
  collect - print the collected metadata for a plugin or module identifier
  render  - render the Markdown page for one or more identifiers
  serve   - serve the same operations over HTTP for local preview

Handler configuration is read from the mkdocstrings "owa" handler section of
the file passed with --config.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to mkdocs.yml or a standalone handler config file",
				Sources: cli.EnvVars("OWADOCS_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:  "plugins-dir",
				Usage: "Directory of plugin manifests, overrides plugins_dir from the config",
			},
			&cli.StringFlag{
				Name:  "templates",
				Usage: "Directory of custom templates, overrides custom_templates from the config",
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Embedded template theme, overrides theme from the config",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			pluginsCmd(),
			collectCmd(),
			renderCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the root command with os.Args. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps cancellation to 2 and everything else to 1.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		apperrors.CodeOf(err) == apperrors.ErrCodeTimeout {
		return 2
	}
	return 1
}
