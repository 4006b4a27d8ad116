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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/serializer"
)

// SourceEntryPoint labels candidates enumerated from a plugin.Registry.
const SourceEntryPoint = "entrypoint"

// Candidate is one plugin that a source knows how to load.
type Candidate struct {
	Name   string
	Source string
	Load   plugin.Loader
}

// CandidateSource enumerates plugin candidates in a stable order.
type CandidateSource interface {
	Candidates(ctx context.Context) ([]Candidate, error)
}

// EntryPointSource enumerates the entry points registered with a Registry.
type EntryPointSource struct {
	Registry *plugin.Registry
}

// NewEntryPointSource returns a source over reg, or over the global
// registry when reg is nil.
func NewEntryPointSource(reg *plugin.Registry) *EntryPointSource {
	if reg == nil {
		reg = plugin.Global()
	}
	return &EntryPointSource{Registry: reg}
}

// Candidates returns the registry's entry points in registration order.
func (s *EntryPointSource) Candidates(_ context.Context) ([]Candidate, error) {
	eps := s.Registry.EntryPoints()
	out := make([]Candidate, 0, len(eps))
	for _, ep := range eps {
		out = append(out, Candidate{Name: ep.Name, Source: SourceEntryPoint, Load: ep.Load})
	}
	return out, nil
}

// ManifestSource enumerates plugin manifests in a directory. Each file with
// a recognized extension is one candidate named after the file stem.
type ManifestSource struct {
	Dir string
}

// NewManifestSource returns a source reading manifests from dir.
func NewManifestSource(dir string) *ManifestSource {
	return &ManifestSource{Dir: dir}
}

// Candidates lists manifests in lexical file order. A missing directory
// yields no candidates.
func (s *ManifestSource) Candidates(_ context.Context) ([]Candidate, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("plugin manifest directory does not exist", "dir", s.Dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read plugin manifest directory %s: %w", s.Dir, err)
	}

	var out []Candidate
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if !slices.Contains(defaults.ManifestExtensions, ext) {
			continue
		}
		path := filepath.Join(s.Dir, de.Name())
		out = append(out, Candidate{
			Name:   strings.TrimSuffix(de.Name(), filepath.Ext(de.Name())),
			Source: "manifest:" + path,
			Load:   manifestLoader(path),
		})
	}
	return out, nil
}

func manifestLoader(path string) plugin.Loader {
	return func() (*plugin.Spec, error) {
		return serializer.FromFile[plugin.Spec](path)
	}
}
