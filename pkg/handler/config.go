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

package handler

import (
	"fmt"
	"path/filepath"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/options"
)

// HostConfig is the part of the host generator's configuration the
// handler reads.
type HostConfig interface {
	// ConfigFilePath is the path of the host's configuration file.
	// Relative handler paths are resolved against its directory.
	ConfigFilePath() string
}

// StaticHostConfig is a HostConfig for a fixed configuration file path.
type StaticHostConfig string

// ConfigFilePath implements HostConfig.
func (s StaticHostConfig) ConfigFilePath() string {
	return string(s)
}

// Config is the handler section of the host configuration.
type Config struct {
	// Options are handler-wide option defaults layered under local options.
	Options map[string]any `mapstructure:"options" json:"options,omitempty" yaml:"options,omitempty"`

	// PluginsDir is a directory of plugin manifests to discover in addition
	// to compiled-in plugins.
	PluginsDir string `mapstructure:"plugins_dir" json:"plugins_dir,omitempty" yaml:"plugins_dir,omitempty"`

	// CustomTemplates is a directory whose templates override the theme's.
	CustomTemplates string `mapstructure:"custom_templates" json:"custom_templates,omitempty" yaml:"custom_templates,omitempty"`

	// Theme selects the embedded template set.
	Theme string `mapstructure:"theme" json:"theme,omitempty" yaml:"theme,omitempty"`

	// DiscoveryConcurrency bounds concurrent plugin loads.
	DiscoveryConcurrency int `mapstructure:"discovery_concurrency" json:"discovery_concurrency,omitempty" yaml:"discovery_concurrency,omitempty"`
}

// ParseConfig decodes and validates the handler configuration map.
// Unknown keys and invalid values fail with *options.ConfigurationError.
func ParseConfig(raw map[string]any, host HostConfig) (Config, error) {
	cfg := Config{
		Theme:                defaults.Theme,
		DiscoveryConcurrency: defaults.DiscoveryConcurrency,
	}
	if err := options.Decode(raw, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.DiscoveryConcurrency < 1 || cfg.DiscoveryConcurrency > defaults.MaxDiscoveryConcurrency {
		return Config{}, &options.ConfigurationError{
			Keys:   []string{"discovery_concurrency"},
			Reason: fmt.Sprintf("must be between 1 and %d, got %d", defaults.MaxDiscoveryConcurrency, cfg.DiscoveryConcurrency),
		}
	}

	// Handler-wide option defaults must be valid on their own.
	if _, err := options.Merge(cfg.Options, nil); err != nil {
		return Config{}, err
	}

	base := ""
	if host != nil && host.ConfigFilePath() != "" {
		base = filepath.Dir(host.ConfigFilePath())
	}
	cfg.PluginsDir = resolvePath(base, cfg.PluginsDir)
	cfg.CustomTemplates = resolvePath(base, cfg.CustomTemplates)
	return cfg, nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) || base == "" {
		return p
	}
	return filepath.Join(base, p)
}
