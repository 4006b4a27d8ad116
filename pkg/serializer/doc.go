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

// Package serializer provides encoding and decoding of documentation data in multiple formats.
//
// # Overview
//
// The serializer package converts plugin metadata, discovery reports and
// rendered pages to JSON, YAML, tables or raw Markdown. It also reads plugin
// manifests and host configuration files from disk, with the format chosen
// by file extension.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE listing for terminals
//   - Write-only (no deserialization support)
//
// Markdown:
//   - Strings are written verbatim
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "plugins.yaml")
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// # HTTP
//
// Respond encodes a document in the format negotiated from the request's
// Accept header: application/yaml selects YAML, everything else JSON.
// RespondJSON and RespondMarkdown skip negotiation.
//
//	serializer.Respond(w, r, http.StatusOK, doc)
//
// # Usage - Decoding
//
//	spec, err := serializer.FromFile[plugin.Spec]("plugins.d/screen.yaml")
//	if err != nil {
//	    return err
//	}
package serializer
