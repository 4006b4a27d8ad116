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
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
)

// ErrNotImportable is wrapped by every importer miss.
var ErrNotImportable = errors.New("module not importable")

// Module is anything an Importer can hand back.
type Module interface {
	Path() string
}

// Versioned is implemented by modules that declare a version.
type Versioned interface {
	Version() string
}

// Described is implemented by modules that carry a doc string.
type Described interface {
	Doc() string
}

// Manifested is implemented by modules that list named members.
type Manifested interface {
	Manifest() []Member
}

// Member is one named entry in a module manifest.
type Member struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
	Doc  string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Importer turns a path into a Module.
type Importer interface {
	Import(path string) (Module, error)
}

// ImporterFunc adapts a function to the Importer interface.
type ImporterFunc func(path string) (Module, error)

// Import calls f(path).
func (f ImporterFunc) Import(path string) (Module, error) {
	return f(path)
}

// ImportError reports that no importer in a chain accepted a path.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("cannot import %q: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Chain tries each importer in order and returns the first success.
type Chain []Importer

// Import implements Importer.
func (c Chain) Import(path string) (Module, error) {
	if err := ValidatePath(path); err != nil {
		return nil, &ImportError{Path: path, Err: err}
	}

	errs := make([]error, 0, len(c))
	for _, imp := range c {
		m, err := imp.Import(path)
		if err == nil {
			return m, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		errs = append(errs, fmt.Errorf("%w: no importers configured", ErrNotImportable))
	}
	return nil, &ImportError{Path: path, Err: errors.Join(errs...)}
}

// ValidatePath rejects strings that cannot name a module.
func ValidatePath(path string) error {
	switch {
	case path == "":
		return fmt.Errorf("%w: empty path", ErrNotImportable)
	case strings.HasPrefix(path, "/"), strings.HasPrefix(path, "."),
		strings.HasSuffix(path, "/"), strings.HasSuffix(path, "."):
		return fmt.Errorf("%w: malformed path %q", ErrNotImportable, path)
	case strings.Contains(path, ".."), strings.Contains(path, "//"):
		return fmt.Errorf("%w: malformed path %q", ErrNotImportable, path)
	case strings.IndexFunc(path, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w: path %q contains whitespace", ErrNotImportable, path)
	}
	return nil
}

// TopLevel returns the top-level package segment of a path.
// Slash-separated paths split on "/", otherwise the path splits on ".".
func TopLevel(path string) string {
	sep := "."
	if strings.Contains(path, "/") {
		sep = "/"
	}
	head, _, _ := strings.Cut(path, sep)
	if head == "" {
		return defaults.UnknownNamespace
	}
	return head
}
