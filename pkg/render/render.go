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

package render

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"text/template"
	"time"

	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/metadata"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/options"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
)

// ErrTemplateNotFound is the cause when no candidate template exists.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateError reports a template that is missing or failed to parse or
// execute.
type TemplateError struct {
	Template string
	Cause    error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: %v", e.Template, e.Cause)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Renderer renders metadata through templates from a Store.
type Renderer struct {
	store Store
}

// New creates a Renderer over store.
func New(store Store) *Renderer {
	return &Renderer{store: store}
}

// Group is a run of components sharing a type, in documentation order.
type Group struct {
	Type       string
	Components []metadata.ComponentInfo
}

// Page is the data passed to every template.
type Page struct {
	Meta       *metadata.PluginMetadata
	Options    options.Options
	Components []metadata.ComponentInfo
	Groups     []Group
}

// Select returns the name and source of the first template in
// md.TemplateNames that the store holds.
func (r *Renderer) Select(md *metadata.PluginMetadata) (string, string, error) {
	names := md.TemplateNames()
	for _, name := range names {
		if text, ok := r.store.Lookup(name); ok {
			return name, text, nil
		}
	}
	return "", "", &TemplateError{
		Template: metadata.GenericTemplate,
		Cause:    fmt.Errorf("%w: tried %v", ErrTemplateNotFound, names),
	}
}

// Render produces the Markdown page for md.
func (r *Renderer) Render(md *metadata.PluginMetadata, opts options.Options) (string, error) {
	if md == nil {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest, "metadata is nil")
	}

	name, text, err := r.Select(md)
	if err != nil {
		renderTotal.WithLabelValues(metadata.GenericTemplate, "error").Inc()
		return "", apperrors.Wrap(apperrors.ErrCodeTemplate, "no template available", err)
	}

	start := time.Now()
	defer func() {
		renderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(funcMap()).
		Parse(text)
	if err != nil {
		renderTotal.WithLabelValues(name, "error").Inc()
		return "", apperrors.Wrap(apperrors.ErrCodeTemplate, "failed to parse template",
			&TemplateError{Template: name, Cause: err})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newPage(md, opts)); err != nil {
		renderTotal.WithLabelValues(name, "error").Inc()
		return "", apperrors.Wrap(apperrors.ErrCodeTemplate, "failed to execute template",
			&TemplateError{Template: name, Cause: err})
	}

	renderTotal.WithLabelValues(name, "success").Inc()
	slog.Debug("rendered page", "name", md.Name, "template", name, "bytes", buf.Len())
	return buf.String(), nil
}

func newPage(md *metadata.PluginMetadata, opts options.Options) Page {
	all := md.Components.All()
	return Page{
		Meta:       md,
		Options:    opts,
		Components: all,
		Groups:     groupByType(all),
	}
}

// groupByType groups components by their "type" payload. Known component
// types come first in their documentation order; other types follow in
// order of first appearance.
func groupByType(components []metadata.ComponentInfo) []Group {
	order := make([]string, 0, len(plugin.SupportedComponentTypes()))
	for _, t := range plugin.SupportedComponentTypes() {
		order = append(order, t.String())
	}

	byType := make(map[string][]metadata.ComponentInfo)
	for _, c := range components {
		t := c.Get("type")
		if t == "" {
			t = "other"
		}
		if !slices.Contains(order, t) {
			order = append(order, t)
		}
		byType[t] = append(byType[t], c)
	}

	groups := make([]Group, 0, len(byType))
	for _, t := range order {
		if cs := byType[t]; len(cs) > 0 {
			groups = append(groups, Group{Type: t, Components: cs})
		}
	}
	return groups
}
