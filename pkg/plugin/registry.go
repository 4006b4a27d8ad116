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

package plugin

import (
	"fmt"
	"sync"
)

// Loader produces a plugin's Spec. It may fail or panic; discovery
// isolates both.
type Loader func() (*Spec, error)

// EntryPoint is a named Loader registered with a Registry.
type EntryPoint struct {
	Name string
	Load Loader
}

// Registry records entry points in registration order with thread-safe operations.
type Registry struct {
	entries []EntryPoint
	index   map[string]int
	mu      sync.RWMutex
}

// NewRegistry creates a new empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register records an entry point.
// Returns an error if the name is empty, the loader is nil, or the name is taken.
func (r *Registry) Register(name string, load Loader) error {
	if name == "" {
		return fmt.Errorf("entry point name is required")
	}
	if load == nil {
		return fmt.Errorf("entry point %s: loader is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[name]; exists {
		return fmt.Errorf("entry point %s already registered", name)
	}

	r.index[name] = len(r.entries)
	r.entries = append(r.entries, EntryPoint{Name: name, Load: load})
	return nil
}

// Get retrieves an entry point by name.
func (r *Registry) Get(name string) (EntryPoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return EntryPoint{}, false
	}
	return r.entries[i], true
}

// EntryPoints returns all entry points in registration order.
func (r *Registry) EntryPoints() []EntryPoint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]EntryPoint, len(r.entries))
	copy(out, r.entries)
	return out
}

// Names returns all registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Unregister removes an entry point.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[name]
	if !ok {
		return fmt.Errorf("entry point %s not registered", name)
	}

	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	delete(r.index, name)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].Name] = j
	}
	return nil
}

// Count returns the number of registered entry points.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Global registry for compiled-in plugins.
// Plugins register themselves via init() functions.
var globalRegistry = NewRegistry()

// Register registers an entry point in the global registry.
func Register(name string, load Loader) error {
	return globalRegistry.Register(name, load)
}

// MustRegister is a convenience function that panics on registration error.
// Use this in init() functions where registration must succeed.
func MustRegister(name string, load Loader) {
	if err := Register(name, load); err != nil {
		panic(err)
	}
}

// Global returns the process-wide registry.
func Global() *Registry {
	return globalRegistry
}
