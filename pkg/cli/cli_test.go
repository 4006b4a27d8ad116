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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin/desktop"
)

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name, "--log-level", "error"}, args...))
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPluginsCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plugins.json")
	require.NoError(t, runCLI(t, "plugins", "--format", "json", "--output", out))

	var doc struct {
		Kind       string `json:"kind"`
		APIVersion string `json:"apiVersion"`
		Report     struct {
			ID         string `json:"id"`
			Discovered []struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"discovered"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, out)), &doc))

	assert.Equal(t, "DiscoveryReport", doc.Kind)
	assert.Equal(t, "docs.owa.dev/v1alpha1", doc.APIVersion)
	assert.NotEmpty(t, doc.Report.ID)

	versions := map[string]string{}
	for _, d := range doc.Report.Discovered {
		versions[d.Name] = d.Version
	}
	assert.Equal(t, desktop.Version, versions["desktop"])
	assert.Contains(t, versions, "example")
}

func TestPluginsCmd_RejectsMarkdown(t *testing.T) {
	err := runCLI(t, "plugins", "--format", "markdown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestPluginsCmd_ManifestDir(t *testing.T) {
	dir := t.TempDir()
	manifest := `
namespace: audio
version: 1.0.0
description: Audio capture
components:
  - type: callables
    name: record
    importPath: owa.env.audio:record
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "audio.yaml"), []byte(manifest), 0o600))

	out := filepath.Join(t.TempDir(), "plugins.yaml")
	require.NoError(t, runCLI(t, "--plugins-dir", dir, "plugins", "--output", out))
	assert.Contains(t, readOutput(t, out), "name: audio")
}

func TestCollectCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "desktop.yaml")
	require.NoError(t, runCLI(t, "collect", "--output", out, "desktop"))

	var doc struct {
		Kind   string         `yaml:"kind"`
		Plugin map[string]any `yaml:"plugin"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(readOutput(t, out)), &doc))

	assert.Equal(t, "PluginMetadata", doc.Kind)
	assert.Equal(t, "desktop", doc.Plugin["namespace"])
	assert.Equal(t, desktop.Version, doc.Plugin["version"])
	assert.Equal(t, "plugin", doc.Plugin["kind"])
	assert.NotEmpty(t, doc.Plugin["components"])
}

func TestCollectCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no identifier", args: []string{"collect"}, want: "exactly one identifier"},
		{name: "unknown identifier", args: []string{"collect", "nonexistent_plugin_xyz"}, want: "nonexistent_plugin_xyz"},
		{name: "bad option syntax", args: []string{"collect", "--option", "oops", "desktop"}, want: "key=value"},
		{name: "unknown option", args: []string{"collect", "--option", "unknown_flag=true", "desktop"}, want: "unknown_flag"},
		{name: "markdown format", args: []string{"collect", "--format", "markdown", "desktop"}, want: "use render"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRenderCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "reference.md")
	require.NoError(t, runCLI(t, "render", "--output", out, "desktop", "example"))

	page := readOutput(t, out)
	assert.True(t, strings.HasPrefix(page, "## desktop\n"), "page starts with %q", page[:min(len(page), 40)])
	assert.Contains(t, page, desktop.Version)
	assert.Contains(t, page, "## example")
	assert.Less(t, strings.Index(page, "## desktop"), strings.Index(page, "## example"))
}

func TestRenderCmd_Options(t *testing.T) {
	out := filepath.Join(t.TempDir(), "reference.md")
	require.NoError(t, runCLI(t, "render", "--option", "heading_level=4", "--option", "show_components=false", "--output", out, "desktop"))

	page := readOutput(t, out)
	assert.True(t, strings.HasPrefix(page, "#### desktop\n"))
	assert.NotContains(t, page, "screen.capture")
}

func TestRenderCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "templates", "plugin-env.md.tmpl"),
		[]byte("custom {{ .Meta.Name }}\n"), 0o600))

	config := `
site_name: docs
plugins:
  - mkdocstrings:
      handlers:
        owa:
          custom_templates: templates
`
	configPath := filepath.Join(dir, "mkdocs.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o600))

	out := filepath.Join(t.TempDir(), "reference.md")
	require.NoError(t, runCLI(t, "--config", configPath, "render", "--output", out, "desktop"))
	assert.Equal(t, "custom desktop\n", readOutput(t, out))
}

func TestRenderCmd_Errors(t *testing.T) {
	err := runCLI(t, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one identifier")

	err = runCLI(t, "--theme", "nope", "render", "desktop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme")

	err = runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "render", "desktop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}
