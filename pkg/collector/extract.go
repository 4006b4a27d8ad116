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

package collector

import (
	"errors"
	"log/slog"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/metadata"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/module"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/options"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/resolver"
)

// Payload keys set on plugin components.
const (
	PayloadType        = "type"
	PayloadImportPath  = "import_path"
	PayloadDescription = "description"
	PayloadFullName    = "full_name"
)

// Payload keys set on module components.
const (
	PayloadKind = "kind"
	PayloadDoc  = "doc"
)

var (
	errNoSpec   = errors.New("plugin target carries no declaration")
	errNoModule = errors.New("module target carries no module")
)

// FromPlugin extracts metadata from a discovered plugin's declaration.
func FromPlugin(t *resolver.Target, opts options.Options) (*metadata.PluginMetadata, error) {
	spec := t.Spec()
	if spec == nil {
		return nil, errNoSpec
	}

	md := metadata.New(t.Identifier)
	md.Kind = metadata.KindPlugin
	md.SubKind = spec.EffectiveKind()
	md.Description = spec.Description
	if spec.Namespace != "" {
		md.Namespace = spec.Namespace
	}
	if spec.Version != "" {
		md.Version = spec.Version
	}

	for _, c := range spec.Components {
		if !opts.IncludesType(c.Type) {
			continue
		}
		payload := map[string]string{
			PayloadType:     c.Type.String(),
			PayloadFullName: md.Namespace + "/" + c.Name,
		}
		if c.ImportPath != "" {
			payload[PayloadImportPath] = c.ImportPath
		}
		if c.Description != "" {
			payload[PayloadDescription] = c.Description
		}
		if err := md.Components.Add(metadata.ComponentInfo{Name: c.Name, Payload: payload}); err != nil {
			return nil, err
		}
	}
	return md, nil
}

// FromModule extracts metadata from an imported module using whatever
// capabilities it implements.
func FromModule(t *resolver.Target, _ options.Options) (*metadata.PluginMetadata, error) {
	m := t.Module
	if m == nil {
		return nil, errNoModule
	}

	md := metadata.New(t.Identifier)
	md.Kind = metadata.KindModule
	md.Namespace = module.TopLevel(m.Path())

	if v, ok := m.(module.Versioned); ok && v.Version() != "" {
		md.Version = v.Version()
	}
	if d, ok := m.(module.Described); ok {
		md.Description = d.Doc()
	}
	if mf, ok := m.(module.Manifested); ok {
		for _, member := range mf.Manifest() {
			payload := map[string]string{PayloadKind: member.Kind}
			if member.Doc != "" {
				payload[PayloadDoc] = member.Doc
			}
			if err := md.Components.Add(metadata.ComponentInfo{Name: member.Name, Payload: payload}); err != nil {
				slog.Debug("skipping module member", "module", m.Path(), "member", member.Name, "error", err)
			}
		}
	}
	return md, nil
}
