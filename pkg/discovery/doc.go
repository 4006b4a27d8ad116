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

// Package discovery enumerates installed plugins and records which of them
// loaded and which failed.
//
// Candidates come from CandidateSource implementations: the compiled-in
// entry point registry (EntryPointSource) and, optionally, a directory of
// YAML or JSON plugin manifests (ManifestSource). Each candidate is loaded in
// isolation: a returned error, an invalid declaration or a panic inside the
// loader marks that candidate as failed and never aborts the run.
//
// Loading is concurrent and bounded. The resulting Snapshot preserves the
// enumeration order of the sources, not the order in which loads finished:
//
//	d := discovery.NewDiscoverer(discovery.NewEntryPointSource(plugin.Global()))
//	snap, err := d.Discover(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, e := range snap.Failed() {
//	    slog.Warn("plugin failed", "name", e.Name, "reason", e.FailureReason)
//	}
//
// A Cache wraps a Discoverer so that discovery runs once per process and
// every later caller receives the same Snapshot.
package discovery
