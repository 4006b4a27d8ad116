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

package plugin

import (
	"fmt"
	"regexp"
	"slices"
)

// ComponentType groups the components a plugin provides.
type ComponentType string

// Supported component types.
const (
	ComponentTypeCallables ComponentType = "callables"
	ComponentTypeListeners ComponentType = "listeners"
	ComponentTypeRunnables ComponentType = "runnables"
)

// String returns the string representation of the component type.
func (t ComponentType) String() string {
	return string(t)
}

// IsValid reports whether t is a supported component type.
func (t ComponentType) IsValid() bool {
	return slices.Contains(SupportedComponentTypes(), t)
}

// ParseComponentType converts a string to a ComponentType.
func ParseComponentType(s string) (ComponentType, error) {
	t := ComponentType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unsupported component type: %s", s)
	}
	return t, nil
}

// SupportedComponentTypes returns all component types in documentation order.
func SupportedComponentTypes() []ComponentType {
	return []ComponentType{
		ComponentTypeCallables,
		ComponentTypeListeners,
		ComponentTypeRunnables,
	}
}

// DefaultKind is the plugin kind assumed when a Spec leaves Kind empty.
const DefaultKind = "env"

var namespacePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_\-]*$`)

// Component is one entry a plugin exposes.
type Component struct {
	// Type is the component group (e.g. "callables").
	Type ComponentType `json:"type" yaml:"type"`

	// Name is unique within the plugin (e.g. "clock.time_ns").
	Name string `json:"name" yaml:"name"`

	// ImportPath points at the implementation (e.g. "owa.env.std.clock:time_ns").
	ImportPath string `json:"importPath,omitempty" yaml:"importPath,omitempty"`

	// Description is a one-line summary.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Spec is the declaration a plugin makes about itself.
type Spec struct {
	Namespace   string      `json:"namespace" yaml:"namespace"`
	Version     string      `json:"version,omitempty" yaml:"version,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string      `json:"author,omitempty" yaml:"author,omitempty"`
	Kind        string      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Components  []Component `json:"components,omitempty" yaml:"components,omitempty"`
}

// Validate checks the declaration for errors a reader of the
// documentation would trip over.
func (s *Spec) Validate() error {
	if s == nil {
		return fmt.Errorf("plugin spec is nil")
	}
	if s.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if !namespacePattern.MatchString(s.Namespace) {
		return fmt.Errorf("invalid namespace %q: must start with a letter and contain only letters, digits, '_' or '-'", s.Namespace)
	}

	seen := make(map[string]bool, len(s.Components))
	for i, c := range s.Components {
		if c.Name == "" {
			return fmt.Errorf("component[%d]: name is required", i)
		}
		if !c.Type.IsValid() {
			return fmt.Errorf("component %q: unsupported type %q", c.Name, c.Type)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate component name: %s", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// EffectiveKind returns Kind, or DefaultKind when Kind is empty.
func (s *Spec) EffectiveKind() string {
	if s.Kind == "" {
		return DefaultKind
	}
	return s.Kind
}

// ComponentsOfType returns the components of the given type in declaration order.
func (s *Spec) ComponentsOfType(t ComponentType) []Component {
	var out []Component
	for _, c := range s.Components {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy of the spec.
func (s *Spec) Clone() *Spec {
	if s == nil {
		return nil
	}
	c := *s
	c.Components = slices.Clone(s.Components)
	return &c
}
