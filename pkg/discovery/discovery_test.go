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

package discovery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
)

func specLoader(ns, ver string) plugin.Loader {
	return func() (*plugin.Spec, error) {
		return &plugin.Spec{
			Namespace: ns,
			Version:   ver,
			Components: []plugin.Component{
				{Type: plugin.ComponentTypeCallables, Name: "add"},
			},
		}, nil
	}
}

func newRegistry(t *testing.T, entries map[string]plugin.Loader, order ...string) *plugin.Registry {
	t.Helper()
	reg := plugin.NewRegistry()
	for _, name := range order {
		require.NoError(t, reg.Register(name, entries[name]))
	}
	return reg
}

func TestDiscover_PartialFailureIsolation(t *testing.T) {
	reg := newRegistry(t, map[string]plugin.Loader{
		"example": specLoader("example", "0.1.0"),
		"broken":  func() (*plugin.Spec, error) { return nil, errors.New("missing native library") },
		"panicky": func() (*plugin.Spec, error) { panic("boom") },
		"invalid": func() (*plugin.Spec, error) {
			return &plugin.Spec{Namespace: "", Version: "1.0.0"}, nil
		},
		"desktop": specLoader("desktop", "0.3.2"),
	}, "example", "broken", "panicky", "invalid", "desktop")

	snap, err := NewDiscoverer(NewEntryPointSource(reg)).Discover(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"example", "desktop"}, snap.Names())
	assert.Equal(t, []string{"broken", "panicky", "invalid"}, snap.FailedNames())
	assert.Equal(t, 5, snap.Len())

	_, failed := snap.PluginInfo()
	assert.Contains(t, failed["broken"], "missing native library")
	assert.Contains(t, failed["panicky"], "boom")
	assert.Contains(t, failed["invalid"], "namespace is required")

	e, ok := snap.Lookup("panicky")
	require.True(t, ok)
	assert.Equal(t, StatusFailed, e.Status)
	assert.Nil(t, e.Spec)

	var le *LoadError
	require.ErrorAs(t, e.Err, &le)
	assert.Equal(t, "panicky", le.Name)
	assert.Equal(t, apperrors.ErrCodePluginLoad, apperrors.CodeOf(e.Err))
}

func TestDiscover_DiscoveredXorFailed(t *testing.T) {
	reg := plugin.NewRegistry()
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("p%02d", i)
		var load plugin.Loader = specLoader(name, "1.0.0")
		if i%3 == 0 {
			load = func() (*plugin.Spec, error) { return nil, errors.New("nope") }
		}
		require.NoError(t, reg.Register(name, load))
	}

	snap, err := NewDiscoverer(NewEntryPointSource(reg), WithConcurrency(3)).Discover(context.Background())
	require.NoError(t, err)

	discovered, failed := snap.PluginInfo()
	assert.Len(t, discovered, 13)
	assert.Len(t, failed, 7)
	for name := range discovered {
		_, inFailed := failed[name]
		assert.False(t, inFailed, name)
	}
	for _, reason := range failed {
		assert.NotEmpty(t, reason)
	}
}

func TestDiscover_PreservesEnumerationOrder(t *testing.T) {
	reg := plugin.NewRegistry()
	order := []string{"slow", "medium", "fast"}
	delays := map[string]time.Duration{"slow": 30 * time.Millisecond, "medium": 10 * time.Millisecond, "fast": 0}
	for _, name := range order {
		d := delays[name]
		ns := name
		require.NoError(t, reg.Register(name, func() (*plugin.Spec, error) {
			time.Sleep(d)
			return &plugin.Spec{Namespace: ns}, nil
		}))
	}

	snap, err := NewDiscoverer(NewEntryPointSource(reg), WithConcurrency(3)).Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, order, snap.Names())
}

func TestDiscover_DuplicateNamesFirstWins(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "example.yaml", "namespace: shadow\n")
	writeManifest(t, dir, "extra.yaml", "namespace: extra\nversion: 0.2.0\n")

	reg := newRegistry(t, map[string]plugin.Loader{"example": specLoader("example", "0.1.0")}, "example")
	d := NewDiscoverer(NewEntryPointSource(reg), WithSource(NewManifestSource(dir)))

	snap, err := d.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"example", "extra"}, snap.Names())

	e, ok := snap.Lookup("example")
	require.True(t, ok)
	assert.Equal(t, "example", e.Spec.Namespace)
	assert.Equal(t, SourceEntryPoint, e.Source)
}

func TestDiscover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDiscoverer(NewEntryPointSource(plugin.NewRegistry())).Discover(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingSource struct{}

func (failingSource) Candidates(context.Context) ([]Candidate, error) {
	return nil, errors.New("unreadable")
}

func TestDiscover_SourceErrorIsSkipped(t *testing.T) {
	reg := newRegistry(t, map[string]plugin.Loader{"example": specLoader("example", "0.1.0")}, "example")
	d := NewDiscoverer(failingSource{}, WithSource(NewEntryPointSource(reg)))

	snap, err := d.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"example"}, snap.Names())
}

func TestSnapshot_AccessorsReturnCopies(t *testing.T) {
	reg := newRegistry(t, map[string]plugin.Loader{"example": specLoader("example", "0.1.0")}, "example")
	snap, err := NewDiscoverer(NewEntryPointSource(reg)).Discover(context.Background())
	require.NoError(t, err)

	e, _ := snap.Lookup("example")
	e.Spec.Namespace = "mutated"
	e.Spec.Components[0].Name = "mutated"

	again, _ := snap.Lookup("example")
	assert.Equal(t, "example", again.Spec.Namespace)
	assert.Equal(t, "add", again.Spec.Components[0].Name)

	assert.NotEmpty(t, snap.ID())
	assert.False(t, snap.CreatedAt().IsZero())
}

func TestSnapshot_Report(t *testing.T) {
	reg := newRegistry(t, map[string]plugin.Loader{
		"example": specLoader("example", "0.1.0"),
		"broken":  func() (*plugin.Spec, error) { return nil, errors.New("nope") },
	}, "example", "broken")
	snap, err := NewDiscoverer(NewEntryPointSource(reg)).Discover(context.Background())
	require.NoError(t, err)

	r := snap.Report()
	require.Len(t, r.Discovered, 1)
	assert.Equal(t, "example", r.Discovered[0].Namespace)
	assert.Equal(t, 1, r.Discovered[0].Components)
	require.Len(t, r.Failed, 1)
	assert.Equal(t, "broken", r.Failed[0].Name)
	assert.Contains(t, r.Failed[0].Reason, "nope")
	assert.Equal(t, snap.ID(), r.ID)
}

func TestSnapshot_ReportKeepsFailureOrder(t *testing.T) {
	fail := func() (*plugin.Spec, error) { return nil, errors.New("boom") }
	reg := newRegistry(t, map[string]plugin.Loader{"zeta": fail, "alpha": fail, "mid": fail},
		"zeta", "alpha", "mid")

	for range 5 {
		snap, err := NewDiscoverer(NewEntryPointSource(reg)).Discover(context.Background())
		require.NoError(t, err)

		r := snap.Report()
		require.Len(t, r.Failed, 3)
		assert.Equal(t, "zeta", r.Failed[0].Name)
		assert.Equal(t, "alpha", r.Failed[1].Name)
		assert.Equal(t, "mid", r.Failed[2].Name)
	}
}

func TestDiscover_EmptyErrorMessageStillFails(t *testing.T) {
	reg := newRegistry(t, map[string]plugin.Loader{
		"silent": func() (*plugin.Spec, error) { return nil, errors.New("") },
	}, "silent")
	snap, err := NewDiscoverer(NewEntryPointSource(reg)).Discover(context.Background())
	require.NoError(t, err)

	e, ok := snap.Lookup("silent")
	require.True(t, ok)
	assert.False(t, e.IsDiscovered())
	assert.NotEmpty(t, e.FailureReason)
	assert.Contains(t, e.FailureReason, "silent")

	_, failed := snap.PluginInfo()
	assert.NotEmpty(t, failed["silent"])
	assert.Equal(t, []string{"silent"}, snap.FailedNames())
	assert.Empty(t, snap.Names())
}

func TestCache_DiscoversOnce(t *testing.T) {
	var calls int
	var mu sync.Mutex
	reg := plugin.NewRegistry()
	require.NoError(t, reg.Register("example", func() (*plugin.Spec, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return &plugin.Spec{Namespace: "example"}, nil
	}))

	cache := NewCache(NewDiscoverer(NewEntryPointSource(reg)))

	var wg sync.WaitGroup
	snaps := make([]*Snapshot, 10)
	for i := range snaps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := cache.Snapshot(context.Background())
			assert.NoError(t, err)
			snaps[i] = s
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	for _, s := range snaps {
		assert.Same(t, snaps[0], s)
	}
}

func TestCache_CancelledRunIsNotStored(t *testing.T) {
	var calls int
	reg := plugin.NewRegistry()
	require.NoError(t, reg.Register("example", func() (*plugin.Spec, error) {
		calls++
		return &plugin.Spec{Namespace: "example"}, nil
	}))
	cache := NewCache(NewDiscoverer(NewEntryPointSource(reg)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cache.Snapshot(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTimeout, apperrors.CodeOf(err))
	assert.False(t, cache.Ready())

	snap, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, cache.Ready())
	assert.Equal(t, []string{"example"}, snap.Names())

	again, err := cache.Snapshot(ctx)
	require.NoError(t, err, "a stored snapshot ignores the caller's context")
	assert.Same(t, snap, again)
	assert.Equal(t, 1, calls)
}

func TestManifestSource(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "screen.yaml", `namespace: screen
version: 1.0.0
description: Screen capture
components:
  - type: callables
    name: capture
    importPath: owa.env.screen:capture
`)
	writeManifest(t, dir, "audio.json", `{"namespace":"audio","components":[{"type":"listeners","name":"mic"}]}`)
	writeManifest(t, dir, "notes.txt", "ignored")
	writeManifest(t, dir, "empty.yml", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	src := NewManifestSource(dir)
	cs, err := src.Candidates(context.Background())
	require.NoError(t, err)

	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"audio", "empty", "screen"}, names)

	snap, err := NewDiscoverer(src).Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"audio", "screen"}, snap.Names())
	assert.Equal(t, []string{"empty"}, snap.FailedNames())

	e, ok := snap.Lookup("screen")
	require.True(t, ok)
	assert.Equal(t, "Screen capture", e.Spec.Description)
	assert.Equal(t, "owa.env.screen:capture", e.Spec.Components[0].ImportPath)
	assert.Equal(t, "manifest:"+filepath.Join(dir, "screen.yaml"), e.Source)
}

func TestManifestSource_MissingDir(t *testing.T) {
	cs, err := NewManifestSource(filepath.Join(t.TempDir(), "absent")).Candidates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
