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

// Package defaults provides centralized configuration constants for the
// documentation pipeline.
//
// This package defines rendering option defaults, discovery tuning values and
// the sentinel strings used when optional metadata is absent. Centralizing
// these values keeps the handler, the CLI and the tests in agreement.
//
// # Categories
//
//   - Rendering defaults: heading level bounds and the shipped template theme
//   - Discovery defaults: concurrent loader limit, manifest file extensions
//   - Sentinels: placeholder values for missing version or namespace data
package defaults
