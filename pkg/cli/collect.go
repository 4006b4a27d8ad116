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
	"github.com/open-world-agents/mkdocstrings-owa/pkg/options"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/serializer"
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collect",
		EnableShellCompletion: true,
		Usage:                 "Print collected metadata for an identifier",
		ArgsUsage:             "<identifier>",
		Description: `Resolve an identifier to a discovered plugin or an importable module and
print the metadata the renderer would receive.

Local options are layered over the handler defaults from the config:

  owadocs collect --option show_components=false owa.env.desktop`,
		Flags: []cli.Flag{
			optionFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("collect requires exactly one identifier, got %d", cmd.Args().Len())
			}
			id := cmd.Args().First()

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if outFormat == serializer.FormatMarkdown {
				return fmt.Errorf("output format %q is not supported for collect, use render", outFormat)
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

			md, err := h.Collect(ctx, id, opts)
			if err != nil {
				return err
			}

			doc := handler.NewMetadataDocument(md, version)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeWriter(ser)

			return ser.Serialize(ctx, doc)
		},
	}
}
