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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/handler"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/serializer"
)

func pluginsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "plugins",
		EnableShellCompletion: true,
		Usage:                 "List discovered plugins",
		Description: `Run plugin discovery once and report every candidate:
  - discovered plugins with namespace, version, source and component count
  - failed candidates with the reason they could not be loaded

A failed plugin does not fail the command. The report can be output in JSON,
YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if outFormat == serializer.FormatMarkdown {
				return fmt.Errorf("output format %q is not supported for plugins", outFormat)
			}

			h, err := newHandler(cmd)
			if err != nil {
				return err
			}

			snap, err := h.Discovery().Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("plugin discovery failed: %w", err)
			}

			doc := handler.NewReportDocument(snap.Report(), version)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeWriter(ser)

			return ser.Serialize(ctx, doc)
		},
	}
}
