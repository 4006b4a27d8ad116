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

package render

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/metadata"
)

//go:embed templates
var embeddedTemplates embed.FS

// Store looks up template source text by template name.
type Store interface {
	Lookup(name string) (string, bool)
}

// StoreFunc adapts a function to the Store interface.
type StoreFunc func(name string) (string, bool)

// Lookup calls f(name).
func (f StoreFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// MapStore serves templates from an in-memory map.
type MapStore map[string]string

// Lookup implements Store.
func (m MapStore) Lookup(name string) (string, bool) {
	t, ok := m[name]
	return t, ok
}

// FSStore serves "<name>.md.tmpl" files from a file system.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore serves templates from fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// NewEmbeddedStore serves the templates of a theme compiled into the binary.
func NewEmbeddedStore(theme string) (*FSStore, error) {
	if theme == "" {
		theme = defaults.Theme
	}
	sub, err := fs.Sub(embeddedTemplates, path.Join("templates", theme))
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", theme, err)
	}
	if _, err := fs.Stat(sub, metadata.GenericTemplate+defaults.TemplateExtension); err != nil {
		return nil, fmt.Errorf("unknown theme %q", theme)
	}
	return NewFSStore(sub), nil
}

// NewDirStore serves templates from a directory on disk.
func NewDirStore(dir string) (*FSStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", dir)
	}
	return NewFSStore(os.DirFS(dir)), nil
}

// Lookup implements Store.
func (s *FSStore) Lookup(name string) (string, bool) {
	if !fs.ValidPath(name) {
		return "", false
	}
	b, err := fs.ReadFile(s.fsys, name+defaults.TemplateExtension)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// LayeredStore consults each store in order and returns the first hit.
type LayeredStore []Store

// Lookup implements Store.
func (l LayeredStore) Lookup(name string) (string, bool) {
	for _, s := range l {
		if s == nil {
			continue
		}
		if t, ok := s.Lookup(name); ok {
			return t, true
		}
	}
	return "", false
}
