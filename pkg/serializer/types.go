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

package serializer

import (
	"context"
	"mime"
	"strings"
)

// Format names an output encoding for documents and rendered pages.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable, FormatMarkdown:
		return false
	default:
		return true
	}
}

// SupportedFormats lists the values accepted by --format.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
		string(FormatMarkdown),
	}
}

// ContentType is the media type a document encoded in f is served with.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatTable:
		return "text/plain; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "application/json"
	}
}

// FormatFromMediaType maps an Accept header entry to a document format.
// Only JSON and YAML are negotiable; ok is false for anything else.
func FormatFromMediaType(mediaType string) (Format, bool) {
	mt, _, err := mime.ParseMediaType(strings.TrimSpace(mediaType))
	if err != nil {
		return "", false
	}
	switch mt {
	case "application/json", "application/*", "*/*":
		return FormatJSON, true
	case "application/yaml", "application/x-yaml", "text/yaml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Serializer writes one document, such as a PluginMetadata or a discovery
// report.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by serializers that own an output file.
type Closer interface {
	Close() error
}
