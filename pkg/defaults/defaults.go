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

package defaults

const (
	// HeadingLevel is the markdown heading level used for the root heading.
	HeadingLevel = 2

	// MinHeadingLevel and MaxHeadingLevel bound the heading_level option.
	MinHeadingLevel = 1
	MaxHeadingLevel = 6

	// Theme is the template theme shipped with the renderer.
	Theme = "material"

	// TemplateExtension is appended to a template name to find its file.
	TemplateExtension = ".md.tmpl"
)

const (
	// DiscoveryConcurrency caps the number of plugin candidates loaded at once.
	DiscoveryConcurrency = 4

	// MaxDiscoveryConcurrency is the upper bound accepted from configuration.
	MaxDiscoveryConcurrency = 64
)

// ManifestExtensions lists the file extensions recognized as plugin manifests.
var ManifestExtensions = []string{".yaml", ".yml", ".json"}

const (
	// UnknownVersion is reported when a plugin or module declares no version.
	UnknownVersion = "unknown"

	// UnknownNamespace is reported when no namespace can be derived.
	UnknownNamespace = "unknown"
)
