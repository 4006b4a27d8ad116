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

package metadata

import (
	"encoding/json"
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Components is an insertion-ordered set of ComponentInfo keyed by name.
// The zero value is not usable; call NewComponents.
type Components struct {
	m *orderedmap.OrderedMap[string, ComponentInfo]
}

// NewComponents returns an empty component set.
func NewComponents() *Components {
	return &Components{m: orderedmap.New[string, ComponentInfo]()}
}

// Add appends a component. Names must be non-empty and unique.
func (c *Components) Add(info ComponentInfo) error {
	if info.Name == "" {
		return fmt.Errorf("component name is required")
	}
	if _, exists := c.m.Get(info.Name); exists {
		return fmt.Errorf("duplicate component name: %s", info.Name)
	}
	c.m.Set(info.Name, info)
	return nil
}

// Get returns the component with the given name.
func (c *Components) Get(name string) (ComponentInfo, bool) {
	if c == nil {
		return ComponentInfo{}, false
	}
	return c.m.Get(name)
}

// Len returns the number of components.
func (c *Components) Len() int {
	if c == nil {
		return 0
	}
	return c.m.Len()
}

// Keys returns component names in insertion order.
func (c *Components) Keys() []string {
	keys := make([]string, 0, c.Len())
	if c == nil {
		return keys
	}
	for p := c.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// All returns components in insertion order.
func (c *Components) All() []ComponentInfo {
	out := make([]ComponentInfo, 0, c.Len())
	if c == nil {
		return out
	}
	for p := c.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

// Sorted returns a copy whose keys are in lexical order.
func (c *Components) Sorted() *Components {
	all := c.All()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	out := NewComponents()
	for _, info := range all {
		out.m.Set(info.Name, info)
	}
	return out
}

// Equal reports whether both sets hold equal components in the same order.
func (c *Components) Equal(o *Components) bool {
	if c.Len() != o.Len() {
		return false
	}
	a, b := c.All(), o.All()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a JSON object in insertion order.
func (c *Components) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.m)
}

// MarshalYAML encodes the set as a YAML mapping in insertion order.
func (c *Components) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, info := range c.All() {
		var value yaml.Node
		if err := value.Encode(info); err != nil {
			return nil, fmt.Errorf("failed to encode component %s: %w", info.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: info.Name},
			&value,
		)
	}
	return node, nil
}
