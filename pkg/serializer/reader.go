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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath picks a format from the file extension, case-insensitively:
// .json, .yaml/.yml, .table/.txt and .md. Anything else is JSON.
func FormatFromPath(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".table", ".txt":
		return FormatTable
	case ".md":
		return FormatMarkdown
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// FromFile decodes the JSON or YAML document at path into a new T. Plugin
// manifests under plugins_dir are read this way.
func FromFile[T any](path string) (*T, error) {
	format := FormatFromPath(path)
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("%s format does not support deserialization: %s", format, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close file", "path", path, "error", cerr)
		}
	}()

	var v T
	if err := decode(format, f, &v); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", path, err)
	}
	slog.Debug("loaded document", "path", path, "format", format)
	return &v, nil
}

func decode(format Format, r io.Reader, v any) error {
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", format)
	}
	return nil
}
