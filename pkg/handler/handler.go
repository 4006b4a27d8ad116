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
	"context"
	"errors"
	"log/slog"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/collector"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/discovery"
	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/metadata"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/module"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/options"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/render"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/resolver"
)

const (
	// Name identifies the handler to the host.
	Name = "owa"

	// Domain is the cross-reference domain of rendered objects.
	Domain = "owa"
)

// Handler is the collect/render facade for one host configuration.
type Handler struct {
	Name   string
	Domain string

	config    Config
	cache     *discovery.Cache
	collector *collector.Collector
	renderer  *render.Renderer
}

type settings struct {
	registry *plugin.Registry
	importer module.Importer
	store    render.Store
}

// Option is a functional option for configuring a Handler.
type Option func(*settings)

// WithRegistry returns an Option that discovers plugins from reg instead of
// the global registry.
func WithRegistry(reg *plugin.Registry) Option {
	return func(s *settings) {
		s.registry = reg
	}
}

// WithImporter returns an Option that replaces the module importer.
func WithImporter(imp module.Importer) Option {
	return func(s *settings) {
		s.importer = imp
	}
}

// WithStore returns an Option that replaces the embedded theme store.
// A configured custom_templates directory still overlays it.
func WithStore(store render.Store) Option {
	return func(s *settings) {
		s.store = store
	}
}

// GetHandler builds a Handler from the handler section of the host
// configuration.
func GetHandler(config map[string]any, host HostConfig, opts ...Option) (*Handler, error) {
	cfg, err := ParseConfig(config, host)
	if err != nil {
		return nil, wrapConfigError(err)
	}

	s := settings{registry: plugin.Global()}
	for _, opt := range opts {
		opt(&s)
	}

	sources := []discovery.Option{discovery.WithConcurrency(cfg.DiscoveryConcurrency)}
	if cfg.PluginsDir != "" {
		sources = append(sources, discovery.WithSource(discovery.NewManifestSource(cfg.PluginsDir)))
	}
	d := discovery.NewDiscoverer(discovery.NewEntryPointSource(s.registry), sources...)
	cache := discovery.NewCache(d)

	store := s.store
	if store == nil {
		embedded, err := render.NewEmbeddedStore(cfg.Theme)
		if err != nil {
			return nil, wrapConfigError(&options.ConfigurationError{Keys: []string{"theme"}, Reason: err.Error()})
		}
		store = embedded
	}
	if cfg.CustomTemplates != "" {
		custom, err := render.NewDirStore(cfg.CustomTemplates)
		if err != nil {
			return nil, wrapConfigError(&options.ConfigurationError{Keys: []string{"custom_templates"}, Reason: err.Error()})
		}
		store = render.LayeredStore{custom, store}
	}

	slog.Debug("handler configured",
		"theme", cfg.Theme,
		"plugins_dir", cfg.PluginsDir,
		"custom_templates", cfg.CustomTemplates,
	)

	return &Handler{
		Name:      Name,
		Domain:    Domain,
		config:    cfg,
		cache:     cache,
		collector: collector.New(cache, resolver.New(s.importer)),
		renderer:  render.New(store),
	}, nil
}

// Config returns the parsed handler configuration.
func (h *Handler) Config() Config {
	return h.config
}

// Discovery returns the handler's discovery cache.
func (h *Handler) Discovery() *discovery.Cache {
	return h.cache
}

// GetOptions merges local options over the handler defaults.
func (h *Handler) GetOptions(local map[string]any) (options.Options, error) {
	opts, err := options.Merge(h.config.Options, local)
	if err != nil {
		return options.Options{}, wrapConfigError(err)
	}
	return opts, nil
}

// Collect returns the metadata for id.
func (h *Handler) Collect(ctx context.Context, id string, opts options.Options) (*metadata.PluginMetadata, error) {
	return h.collector.Collect(ctx, id, opts)
}

// Render renders md to Markdown.
func (h *Handler) Render(md *metadata.PluginMetadata, opts options.Options) (string, error) {
	return h.renderer.Render(md, opts)
}

func wrapConfigError(err error) error {
	var ce *options.ConfigurationError
	if errors.As(err, &ce) {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid handler configuration", err)
	}
	return err
}
