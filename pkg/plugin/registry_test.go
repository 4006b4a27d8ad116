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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okLoader(ns string) Loader {
	return func() (*Spec, error) { return &Spec{Namespace: ns}, nil }
}

func TestRegistry_RegisterPreservesOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(name, okLoader(name)))
	}

	assert.Equal(t, 3, reg.Count())
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Names())

	eps := reg.EntryPoints()
	require.Len(t, eps, 3)
	assert.Equal(t, "alpha", eps[1].Name)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("example", okLoader("example")))

	assert.Error(t, reg.Register("example", okLoader("example")), "duplicate")
	assert.Error(t, reg.Register("", okLoader("x")), "empty name")
	assert.Error(t, reg.Register("nil-loader", nil), "nil loader")
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_Get(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Get("example")
	assert.False(t, ok)

	require.NoError(t, reg.Register("example", okLoader("example")))
	ep, ok := reg.Get("example")
	require.True(t, ok)
	spec, err := ep.Load()
	require.NoError(t, err)
	assert.Equal(t, "example", spec.Namespace)
}

func TestRegistry_Unregister(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, reg.Register(name, okLoader(name)))
	}

	require.NoError(t, reg.Unregister("a"))
	assert.Error(t, reg.Unregister("a"))
	assert.Equal(t, []string{"b", "c"}, reg.Names())

	ep, ok := reg.Get("c")
	require.True(t, ok)
	assert.Equal(t, "c", ep.Name)
}

func TestRegistry_EntryPointsIsCopy(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("a", okLoader("a")))

	eps := reg.EntryPoints()
	eps[0].Name = "mutated"
	assert.Equal(t, []string{"a"}, reg.Names())
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("plugin-%d", i), okLoader("p"))
			_ = reg.Names()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, reg.Count())
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	name := "must-register-test"
	MustRegister(name, okLoader("x"))
	t.Cleanup(func() { _ = Global().Unregister(name) })

	assert.Panics(t, func() { MustRegister(name, okLoader("x")) })
}
