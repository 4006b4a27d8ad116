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

package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/discovery"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/metadata"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/module"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
)

func testSnapshot(t *testing.T) *discovery.Snapshot {
	t.Helper()
	reg := plugin.NewRegistry()
	require.NoError(t, reg.Register("example", func() (*plugin.Spec, error) {
		return &plugin.Spec{Namespace: "example", Version: "0.1.0"}, nil
	}))
	require.NoError(t, reg.Register("broken", func() (*plugin.Spec, error) {
		return nil, errors.New("missing dependency")
	}))
	snap, err := discovery.NewDiscoverer(discovery.NewEntryPointSource(reg)).Discover(context.Background())
	require.NoError(t, err)
	return snap
}

func testImporter() module.Importer {
	cat := module.NewCatalog()
	_ = cat.Register(&module.Static{ModulePath: "owa.core", ModuleVersion: "0.4.0"})
	_ = cat.Register(&module.Static{ModulePath: "broken", ModuleVersion: "9.9.9"})
	return module.Chain{cat}
}

func TestResolve(t *testing.T) {
	r := New(testImporter())
	snap := testSnapshot(t)

	t.Run("plugin", func(t *testing.T) {
		target, err := r.Resolve("example", snap)
		require.NoError(t, err)
		assert.Equal(t, metadata.KindPlugin, target.Kind)
		require.NotNil(t, target.Spec())
		assert.Equal(t, "example", target.Spec().Namespace)
		assert.Nil(t, target.Module)
	})

	t.Run("module", func(t *testing.T) {
		target, err := r.Resolve("owa.core", snap)
		require.NoError(t, err)
		assert.Equal(t, metadata.KindModule, target.Kind)
		assert.Equal(t, "owa.core", target.Module.Path())
		assert.Nil(t, target.Spec())
	})

	t.Run("failed plugin falls back to import", func(t *testing.T) {
		target, err := r.Resolve("broken", snap)
		require.NoError(t, err)
		assert.Equal(t, metadata.KindModule, target.Kind)
	})

	t.Run("no prefix matching", func(t *testing.T) {
		_, err := r.Resolve("exam", snap)
		require.Error(t, err)
	})
}

func TestResolve_Unresolvable(t *testing.T) {
	r := New(testImporter())
	_, err := r.Resolve("nonexistent_plugin_xyz", testSnapshot(t))
	require.Error(t, err)

	var re *ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "nonexistent_plugin_xyz", re.Identifier)
	assert.Contains(t, err.Error(), "nonexistent_plugin_xyz")
	assert.ErrorIs(t, err, ErrPluginNotFound)
	assert.ErrorIs(t, err, module.ErrNotImportable)
}

func TestResolve_FailedPluginNotImportable(t *testing.T) {
	r := New(module.Chain{module.NewCatalog()})
	_, err := r.Resolve("broken", testSnapshot(t))
	require.Error(t, err)

	var le *discovery.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "broken", le.Name)
	assert.Contains(t, err.Error(), "missing dependency")
}

func TestResolve_NilSnapshot(t *testing.T) {
	r := New(testImporter())
	target, err := r.Resolve("owa.core", nil)
	require.NoError(t, err)
	assert.Equal(t, metadata.KindModule, target.Kind)
}
