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

package header

import (
	"time"
)

// Kind represents the type of document the CLI emits.
type Kind string

const (
	KindDiscoveryReport Kind = "DiscoveryReport"
	KindPluginMetadata  Kind = "PluginMetadata"
)

// APIVersion is the schema version stamped on every emitted document.
const APIVersion = "docs.owa.dev/v1alpha1"

// Metadata keys written by the options below.
const (
	MetadataTimestamp  = "timestamp"
	MetadataVersion    = "version"
	MetadataSnapshot   = "snapshot"
	MetadataIdentifier = "identifier"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindDiscoveryReport, KindPluginMetadata:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for emitted documents.
// It follows Kubernetes-style resource conventions with Kind, APIVersion, and Metadata fields.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata entry. Empty values are skipped so optional
// facts do not show up as blank keys.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value != "" {
			h.Metadata[key] = value
		}
	}
}

// WithVersion records the version of the tool that produced the document.
func WithVersion(version string) Option {
	return WithMetadata(MetadataVersion, version)
}

// WithSnapshot records the discovery snapshot the document was built from.
func WithSnapshot(id string) Option {
	return WithMetadata(MetadataSnapshot, id)
}

// WithIdentifier records the identifier a metadata document was collected for.
func WithIdentifier(id string) Option {
	return WithMetadata(MetadataIdentifier, id)
}

// WithTimestamp overrides the generation time, which defaults to now.
func WithTimestamp(t time.Time) Option {
	return WithMetadata(MetadataTimestamp, t.UTC().Format(time.RFC3339))
}

// New returns a header of the given kind stamped with APIVersion and the
// current UTC time.
func New(kind Kind, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}
	WithTimestamp(time.Now())(&h)

	for _, opt := range opts {
		opt(&h)
	}
	return h
}
