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

// Package collector turns an identifier into normalized plugin metadata.
//
// # Overview
//
// Collect resolves the identifier against the cached discovery snapshot and
// the module importer, then runs the extraction function registered for the
// resolved kind:
//
//	c := collector.New(cache, resolver.New(nil))
//	md, err := c.Collect(ctx, "example", opts)
//
// # Extraction
//
// Plugins (metadata.KindPlugin) contribute their declared namespace,
// version, description and one component per declared component. The
// plugin's own kind (for example "env") becomes the metadata SubKind.
//
// Modules (metadata.KindModule) are inspected through optional capability
// interfaces. A module that declares no version reports
// metadata.UnknownVersion, and its namespace is the top-level path segment.
// A module that lists members contributes them as components.
//
// # Errors
//
// Collection is total over resolvable identifiers. The only failure is an
// identifier that cannot be resolved, reported as a *CollectionError that
// wraps the *resolver.ResolutionError.
package collector
