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

package module

import (
	"fmt"
	"runtime/debug"
)

type buildModule struct {
	path    string
	version string
}

func (m *buildModule) Path() string    { return m.path }
func (m *buildModule) Version() string { return m.version }

// BuildInfoImporter resolves the main module and the dependencies compiled
// into the running binary.
type BuildInfoImporter struct {
	read func() (*debug.BuildInfo, bool)
}

// NewBuildInfoImporter creates an importer backed by debug.ReadBuildInfo.
func NewBuildInfoImporter() *BuildInfoImporter {
	return &BuildInfoImporter{read: debug.ReadBuildInfo}
}

// Import implements Importer. Only exact module paths match.
func (b *BuildInfoImporter) Import(path string) (Module, error) {
	info, ok := b.read()
	if !ok || info == nil {
		return nil, fmt.Errorf("%w: build info unavailable", ErrNotImportable)
	}

	if info.Main.Path == path {
		return &buildModule{path: path, version: info.Main.Version}, nil
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		version := dep.Version
		if dep.Replace != nil && dep.Replace.Version != "" {
			version = dep.Replace.Version
		}
		return &buildModule{path: path, version: version}, nil
	}
	return nil, fmt.Errorf("%w: %s is not a dependency of this binary", ErrNotImportable, path)
}
