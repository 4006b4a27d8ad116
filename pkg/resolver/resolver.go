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

// Package resolver decides what kind of object an identifier names.
//
// An identifier that exactly matches a discovered plugin resolves to
// metadata.KindPlugin. Anything else is handed to a module.Importer and,
// if importable, resolves to metadata.KindModule. There is no fuzzy or
// prefix matching.
package resolver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/discovery"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/metadata"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/module"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
)

// ErrPluginNotFound is the plugin-side cause when no entry matches.
var ErrPluginNotFound = errors.New("no discovered plugin with that name")

// Target is a resolved identifier bound to the object that will be
// collected from.
type Target struct {
	Identifier string
	Kind       metadata.Kind

	// Entry is set when Kind is metadata.KindPlugin.
	Entry *discovery.Entry

	// Module is set when Kind is metadata.KindModule.
	Module module.Module
}

// Spec returns the plugin declaration, or nil for module targets.
func (t *Target) Spec() *plugin.Spec {
	if t.Entry == nil {
		return nil
	}
	return t.Entry.Spec
}

// ResolutionError reports that an identifier is neither a discovered
// plugin nor an importable module.
type ResolutionError struct {
	Identifier string
	PluginErr  error
	ImportErr  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q: not a plugin (%v); not a module (%v)",
		e.Identifier, e.PluginErr, e.ImportErr)
}

// Unwrap exposes both causes to errors.Is and errors.As.
func (e *ResolutionError) Unwrap() []error {
	var errs []error
	if e.PluginErr != nil {
		errs = append(errs, e.PluginErr)
	}
	if e.ImportErr != nil {
		errs = append(errs, e.ImportErr)
	}
	return errs
}

// Resolver maps identifiers to Targets.
type Resolver struct {
	importer module.Importer
}

// New returns a Resolver that falls back to imp for non-plugin identifiers.
// A nil imp uses module.DefaultImporter.
func New(imp module.Importer) *Resolver {
	if imp == nil {
		imp = module.DefaultImporter()
	}
	return &Resolver{importer: imp}
}

// Resolve looks id up in snap first and then in the importer.
// A plugin that failed to load still gets the import attempt, and its load
// error is reported as the plugin-side cause.
func (r *Resolver) Resolve(id string, snap *discovery.Snapshot) (*Target, error) {
	pluginErr := fmt.Errorf("%w: %s", ErrPluginNotFound, id)

	if snap != nil {
		if e, ok := snap.Lookup(id); ok {
			if e.IsDiscovered() {
				slog.Debug("resolved identifier", "identifier", id, "kind", metadata.KindPlugin)
				return &Target{Identifier: id, Kind: metadata.KindPlugin, Entry: &e}, nil
			}
			pluginErr = e.Err
			if pluginErr == nil {
				pluginErr = errors.New(e.FailureReason)
			}
		}
	}

	m, err := r.importer.Import(id)
	if err != nil {
		return nil, &ResolutionError{Identifier: id, PluginErr: pluginErr, ImportErr: err}
	}

	slog.Debug("resolved identifier", "identifier", id, "kind", metadata.KindModule)
	return &Target{Identifier: id, Kind: metadata.KindModule, Module: m}, nil
}
