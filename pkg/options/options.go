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

// Package options builds the immutable rendering options for one
// collect/render call from handler defaults and per-call local options.
package options

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
)

// Options controls what is collected and how it is rendered.
// Treat values as read-only once returned from Merge.
type Options struct {
	// HeadingLevel is the markdown level of the root heading (1-6).
	HeadingLevel int `mapstructure:"heading_level" json:"heading_level" yaml:"heading_level"`

	// ShowRootHeading renders a heading with the object name.
	ShowRootHeading bool `mapstructure:"show_root_heading" json:"show_root_heading" yaml:"show_root_heading"`

	// ShowNamespace renders the namespace line.
	ShowNamespace bool `mapstructure:"show_namespace" json:"show_namespace" yaml:"show_namespace"`

	// ShowComponents renders the component listing.
	ShowComponents bool `mapstructure:"show_components" json:"show_components" yaml:"show_components"`

	// ShowComponentDetails renders import paths and descriptions per component.
	ShowComponentDetails bool `mapstructure:"show_component_details" json:"show_component_details" yaml:"show_component_details"`

	// ComponentTypes restricts collection to these component types.
	// Empty means all types.
	ComponentTypes []string `mapstructure:"component_types" json:"component_types,omitempty" yaml:"component_types,omitempty"`

	// SortComponents orders components by name instead of declaration order.
	SortComponents bool `mapstructure:"sort_components" json:"sort_components" yaml:"sort_components"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		HeadingLevel:         defaults.HeadingLevel,
		ShowRootHeading:      true,
		ShowNamespace:        true,
		ShowComponents:       true,
		ShowComponentDetails: true,
	}
}

// Keys returns the recognized option keys in sorted order.
func Keys() []string {
	return []string{
		"component_types",
		"heading_level",
		"show_component_details",
		"show_components",
		"show_namespace",
		"show_root_heading",
		"sort_components",
	}
}

// Merge layers local over handlerDefaults over Default and validates the
// result. Unknown keys and invalid values fail with *ConfigurationError.
func Merge(handlerDefaults, local map[string]any) (Options, error) {
	merged := make(map[string]any, len(handlerDefaults)+len(local))
	maps.Copy(merged, handlerDefaults)
	maps.Copy(merged, local)

	opts := Default()
	if err := Decode(merged, &opts); err != nil {
		return Options{}, err
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Decode decodes raw into target, a pointer to a struct with mapstructure
// tags. Keys that match no field are reported as a *ConfigurationError.
func Decode(raw map[string]any, target any) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         &md,
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return &ConfigurationError{Reason: err.Error()}
	}
	if len(md.Unused) > 0 {
		keys := slices.Clone(md.Unused)
		slices.Sort(keys)
		return &ConfigurationError{Keys: keys, Reason: "unknown option"}
	}
	return nil
}

// Validate checks value ranges.
func (o Options) Validate() error {
	if o.HeadingLevel < defaults.MinHeadingLevel || o.HeadingLevel > defaults.MaxHeadingLevel {
		return &ConfigurationError{
			Keys:   []string{"heading_level"},
			Reason: fmt.Sprintf("must be between %d and %d, got %d", defaults.MinHeadingLevel, defaults.MaxHeadingLevel, o.HeadingLevel),
		}
	}
	for _, t := range o.ComponentTypes {
		if _, err := plugin.ParseComponentType(t); err != nil {
			return &ConfigurationError{Keys: []string{"component_types"}, Reason: err.Error()}
		}
	}
	return nil
}

// IncludesType reports whether components of type t should be collected.
func (o Options) IncludesType(t plugin.ComponentType) bool {
	return len(o.ComponentTypes) == 0 || slices.Contains(o.ComponentTypes, t.String())
}

// ConfigurationError reports unknown option keys or invalid option values.
type ConfigurationError struct {
	Keys   []string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if len(e.Keys) == 0 {
		return "invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Reason, strings.Join(e.Keys, ", "))
}
