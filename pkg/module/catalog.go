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
	"slices"
	"sync"
)

// Static is a Module whose data is fixed at registration time.
type Static struct {
	ModulePath    string
	ModuleVersion string
	ModuleDoc     string
	Members       []Member
}

// Path implements Module.
func (s *Static) Path() string { return s.ModulePath }

// Version implements Versioned.
func (s *Static) Version() string { return s.ModuleVersion }

// Doc implements Described.
func (s *Static) Doc() string { return s.ModuleDoc }

// Manifest implements Manifested.
func (s *Static) Manifest() []Member { return slices.Clone(s.Members) }

// Catalog is an Importer over explicitly registered modules.
type Catalog struct {
	modules map[string]Module
	mu      sync.RWMutex
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{modules: make(map[string]Module)}
}

// Register adds a module. Returns an error if the path is invalid or taken.
func (c *Catalog) Register(m Module) error {
	if m == nil {
		return fmt.Errorf("module is nil")
	}
	if err := ValidatePath(m.Path()); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.modules[m.Path()]; exists {
		return fmt.Errorf("module %s already registered", m.Path())
	}
	c.modules[m.Path()] = m
	return nil
}

// Import implements Importer.
func (c *Catalog) Import(path string) (Module, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.modules[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not in the module catalog", ErrNotImportable, path)
	}
	return m, nil
}

// Paths returns registered paths in lexical order.
func (c *Catalog) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.modules))
	for p := range c.modules {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

var globalCatalog = NewCatalog()

// Register adds a module to the global catalog.
func Register(m Module) error {
	return globalCatalog.Register(m)
}

// MustRegister panics if registration fails. Use from init().
func MustRegister(m Module) {
	if err := Register(m); err != nil {
		panic(err)
	}
}

// Global returns the process-wide catalog.
func Global() *Catalog {
	return globalCatalog
}
