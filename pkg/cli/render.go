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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/options"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/serializer"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Render Markdown documentation for identifiers",
		ArgsUsage:             "<identifier> [identifier...]",
		Description: `Collect and render each identifier in order, the same way a docs build
expands "::: identifier" blocks. Pages are separated by a blank line.

Any identifier that cannot be collected or rendered fails the command.`,
		Flags: []cli.Flag{
			optionFlag,
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ids := cmd.Args().Slice()
			if len(ids) == 0 {
				return fmt.Errorf("render requires at least one identifier")
			}

			local, err := options.ParsePairs(cmd.StringSlice("option"))
			if err != nil {
				return err
			}

			h, err := newHandler(cmd)
			if err != nil {
				return err
			}

			opts, err := h.GetOptions(local)
			if err != nil {
				return err
			}

			pages := make([]string, 0, len(ids))
			for _, id := range ids {
				md, err := h.Collect(ctx, id, opts)
				if err != nil {
					return err
				}
				page, err := h.Render(md, opts)
				if err != nil {
					return fmt.Errorf("failed to render %q: %w", id, err)
				}
				pages = append(pages, page)
			}

			ser := serializer.NewFileWriterOrStdout(serializer.FormatMarkdown, cmd.String("output"))
			defer closeWriter(ser)

			return ser.Serialize(ctx, strings.Join(pages, "\n"))
		},
	}
}
