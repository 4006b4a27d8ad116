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
	_ "embed"
	"errors"
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// stdlibList holds the importable standard library package paths, one per
// line. It lets binaries running without a Go installation still resolve
// "os" or "net/http" to a module.
//
//go:embed stdlib.txt
var stdlibList string

var stdlibPackages = sync.OnceValue(func() map[string]bool {
	pkgs := make(map[string]bool)
	for _, line := range strings.Split(stdlibList, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			pkgs[line] = true
		}
	}
	return pkgs
})

// StdlibImporter resolves Go standard library packages. Packages whose
// sources are present under GOROOT carry their doc comment and exported
// members. Without sources, listed packages resolve to a bare module that
// only reports its path and the toolchain version. It never invokes the go
// command.
type StdlibImporter struct {
	ctx build.Context
}

// NewStdlibImporter creates an importer using build.Default.
func NewStdlibImporter() *StdlibImporter {
	return &StdlibImporter{ctx: build.Default}
}

// Import implements Importer.
func (s *StdlibImporter) Import(path string) (Module, error) {
	if path == "" || (strings.Contains(path, ".") && !strings.Contains(path, "/")) {
		return nil, fmt.Errorf("%w: %q is not a standard library path", ErrNotImportable, path)
	}
	if path == "cmd" || strings.HasPrefix(path, "cmd/") || isInternal(path) {
		return nil, fmt.Errorf("%w: %s is not importable", ErrNotImportable, path)
	}

	pkg, err := s.importSource(path)
	if err == nil {
		if pkg.Name == "main" {
			return nil, fmt.Errorf("%w: %s is not importable", ErrNotImportable, path)
		}
		return &sourcePackage{stdPackage: stdPackage{path: path}, pkg: pkg}, nil
	}

	if stdlibPackages()[path] {
		slog.Debug("standard library sources unavailable, using bare module", "package", path, "error", err)
		return &stdPackage{path: path}, nil
	}
	return nil, fmt.Errorf("%w: %s is not a standard library package: %v", ErrNotImportable, path, err)
}

func (s *StdlibImporter) importSource(path string) (*build.Package, error) {
	if s.ctx.GOROOT == "" {
		return nil, errors.New("GOROOT is not set")
	}
	dir := filepath.Join(s.ctx.GOROOT, "src", filepath.FromSlash(path))
	return s.ctx.ImportDir(dir, 0)
}

func isInternal(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == "internal" || seg == "vendor" {
			return true
		}
	}
	return false
}

// stdPackage is a standard library package known only by path.
type stdPackage struct {
	path string
}

func (p *stdPackage) Path() string { return p.path }

// Version reports the toolchain the binary was built with, which is the
// standard library version it carries.
func (p *stdPackage) Version() string { return runtime.Version() }

type sourcePackage struct {
	stdPackage
	pkg *build.Package
}

func (p *sourcePackage) Doc() string { return p.pkg.Doc }

// Manifest lists exported top-level functions, types, constants and
// variables in file order. Files that fail to parse are skipped.
func (p *sourcePackage) Manifest() []Member {
	fset := token.NewFileSet()
	seen := make(map[string]bool)
	var members []Member

	add := func(name, kind string, doc *ast.CommentGroup) {
		if !ast.IsExported(name) || seen[name] {
			return
		}
		seen[name] = true
		members = append(members, Member{Name: name, Kind: kind, Doc: synopsis(doc)})
	}

	for _, file := range p.pkg.GoFiles {
		f, err := parser.ParseFile(fset, filepath.Join(p.pkg.Dir, file), nil,
			parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			slog.Debug("skipping unparsable source file", "package", p.path, "file", file, "error", err)
			continue
		}
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil {
					add(d.Name.Name, "func", d.Doc)
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch sp := spec.(type) {
					case *ast.TypeSpec:
						doc := sp.Doc
						if doc == nil {
							doc = d.Doc
						}
						add(sp.Name.Name, "type", doc)
					case *ast.ValueSpec:
						kind := "var"
						if d.Tok == token.CONST {
							kind = "const"
						}
						doc := sp.Doc
						if doc == nil {
							doc = d.Doc
						}
						for _, n := range sp.Names {
							add(n.Name, kind, doc)
						}
					}
				}
			}
		}
	}
	return members
}

// synopsis returns the first sentence of a doc comment.
func synopsis(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	text := strings.Join(strings.Fields(doc.Text()), " ")
	if i := strings.Index(text, ". "); i >= 0 {
		return text[:i+1]
	}
	return text
}
