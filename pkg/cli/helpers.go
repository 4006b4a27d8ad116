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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/handler"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}

	optionFlag = &cli.StringSliceFlag{
		Name:  "option",
		Usage: "Local handler option as key=value, value is parsed as YAML (repeatable)",
	}
)

// flag name to handler config key
var configOverrides = []struct {
	flag string
	key  string
	path bool
}{
	{flag: "plugins-dir", key: "plugins_dir", path: true},
	{flag: "templates", key: "custom_templates", path: true},
	{flag: "theme", key: "theme"},
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// loadHandlerConfig reads the handler section from path. An empty path
// yields an empty section.
func loadHandlerConfig(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	section, err := handlerSection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return section, nil
}

// handlerSection extracts plugins.mkdocstrings.handlers.owa from an mkdocs
// config. A document without a plugins key is treated as the handler
// section itself. Only the selected subtree is decoded, so host-specific
// tags elsewhere in the file do not fail the parse.
func handlerSection(data []byte) (map[string]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return map[string]any{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at the document root")
	}

	section := root
	if plugins := mappingValue(root, "plugins"); plugins != nil {
		mk := pluginEntry(plugins, "mkdocstrings")
		section = mappingValue(mappingValue(mk, "handlers"), handler.Name)
	}

	out := map[string]any{}
	if section == nil || section.Tag == "!!null" {
		return out, nil
	}
	if err := section.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// pluginEntry finds a plugin's config in either the list or the mapping
// form of the mkdocs plugins key.
func pluginEntry(plugins *yaml.Node, name string) *yaml.Node {
	if plugins.Kind == yaml.MappingNode {
		return mappingValue(plugins, name)
	}
	if plugins.Kind != yaml.SequenceNode {
		return nil
	}
	for _, item := range plugins.Content {
		if v := mappingValue(item, name); v != nil {
			return v
		}
	}
	return nil
}

// newHandler builds the handler from the global flags.
func newHandler(cmd *cli.Command) (*handler.Handler, error) {
	path := cmd.String("config")
	cfg, err := loadHandlerConfig(path)
	if err != nil {
		return nil, err
	}

	for _, o := range configOverrides {
		v := cmd.String(o.flag)
		if v == "" {
			continue
		}
		if o.path {
			if v, err = filepath.Abs(v); err != nil {
				return nil, fmt.Errorf("invalid --%s: %w", o.flag, err)
			}
		}
		cfg[o.key] = v
	}

	return handler.GetHandler(cfg, handler.StaticHostConfig(path))
}

func closeWriter(w serializer.Closer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close serializer", "error", err)
	}
}
