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

// Package module resolves identifiers that are not discovered plugins into
// importable modules.
//
// A Module only has to report its path. Everything else is optional and is
// queried through small capability interfaces rather than reflection:
//
//   - Versioned: the module declares a version
//   - Described: the module carries a one-line doc string
//   - Manifested: the module lists named members
//
// Importers are tried in order by a Chain. The default chain consults the
// registered Catalog, then the binary's build info (main module and its
// dependencies), then the Go standard library sources under GOROOT.
package module
