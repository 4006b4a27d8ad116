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

package metadata

import (
	"fmt"
	"maps"
	"strings"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
)

// Kind classifies a collected object and drives template selection.
type Kind string

// Supported kinds.
const (
	KindPlugin  Kind = "plugin"
	KindModule  Kind = "module"
	KindUnknown Kind = "unknown"
)

// String returns the string value of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k may appear on a returned PluginMetadata.
// KindUnknown is deliberately excluded.
func (k Kind) IsValid() bool {
	switch k {
	case KindPlugin, KindModule:
		return true
	default:
		return false
	}
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPlugin:
		return KindPlugin, nil
	case KindModule:
		return KindModule, nil
	default:
		return KindUnknown, fmt.Errorf("unsupported kind: %s", s)
	}
}

// SupportedKinds returns the kinds a successful collection can produce.
func SupportedKinds() []Kind {
	return []Kind{KindPlugin, KindModule}
}

// Sentinels for optional data that was not declared.
const (
	UnknownVersion   = defaults.UnknownVersion
	UnknownNamespace = defaults.UnknownNamespace
)

// GenericTemplate is the fallback template name used for any kind.
const GenericTemplate = "generic"

// ComponentInfo describes one named sub-unit of a plugin or module.
type ComponentInfo struct {
	Name    string            `json:"name" yaml:"name"`
	Payload map[string]string `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Get returns a payload value, or "" when absent.
func (c ComponentInfo) Get(key string) string {
	return c.Payload[key]
}

// Equal reports whether two components carry the same name and payload.
func (c ComponentInfo) Equal(o ComponentInfo) bool {
	return c.Name == o.Name && maps.Equal(c.Payload, o.Payload)
}

// PluginMetadata is the normalized documentation object for one identifier.
type PluginMetadata struct {
	Namespace   string      `json:"namespace" yaml:"namespace"`
	Version     string      `json:"version" yaml:"version"`
	Name        string      `json:"name" yaml:"name"`
	Kind        Kind        `json:"kind" yaml:"kind"`
	SubKind     string      `json:"subKind,omitempty" yaml:"subKind,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Components  *Components `json:"components" yaml:"components"`
}

// New returns an empty PluginMetadata in the under-construction state.
func New(name string) *PluginMetadata {
	return &PluginMetadata{
		Name:       name,
		Namespace:  UnknownNamespace,
		Version:    UnknownVersion,
		Kind:       KindUnknown,
		Components: NewComponents(),
	}
}

// Validate checks that the object is fully populated and safe to return.
func (m *PluginMetadata) Validate() error {
	if m == nil {
		return fmt.Errorf("metadata is nil")
	}
	if m.Name == "" {
		return fmt.Errorf("metadata name is required")
	}
	if m.Namespace == "" {
		return fmt.Errorf("metadata %q: namespace is empty", m.Name)
	}
	if m.Version == "" {
		return fmt.Errorf("metadata %q: version is empty", m.Name)
	}
	if !m.Kind.IsValid() {
		return fmt.Errorf("metadata %q: kind %q is not a collected kind", m.Name, m.Kind)
	}
	if m.Components == nil {
		return fmt.Errorf("metadata %q: components are nil", m.Name)
	}
	return nil
}

// TemplateNames returns the template lookup order, most specific first.
func (m *PluginMetadata) TemplateNames() []string {
	names := make([]string, 0, 3)
	if m.SubKind != "" {
		names = append(names, m.Kind.String()+"-"+strings.ToLower(m.SubKind))
	}
	if m.Kind != KindUnknown && m.Kind != "" {
		names = append(names, m.Kind.String())
	}
	return append(names, GenericTemplate)
}

// Equal reports whether two metadata objects are value-equal.
func (m *PluginMetadata) Equal(o *PluginMetadata) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Namespace == o.Namespace &&
		m.Version == o.Version &&
		m.Name == o.Name &&
		m.Kind == o.Kind &&
		m.SubKind == o.SubKind &&
		m.Description == o.Description &&
		m.Components.Equal(o.Components)
}
