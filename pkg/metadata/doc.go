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

// Package metadata defines the documentation object produced by collection
// and consumed by rendering.
//
// A PluginMetadata describes one resolved identifier: its namespace, version,
// name, kind and the ordered set of components it exposes. Kind is a closed
// set (plugin, module, unknown); unknown only exists while an object is
// being built and is never returned by a successful collection. Plugins carry
// an additional SubKind used to pick a specialized template.
//
// Components preserve insertion order so rendering is deterministic:
//
//	comps := metadata.NewComponents()
//	_ = comps.Add(metadata.ComponentInfo{Name: "clock.time_ns"})
//	_ = comps.Add(metadata.ComponentInfo{Name: "clock.tick"})
//	comps.Keys() // [clock.time_ns clock.tick]
package metadata
