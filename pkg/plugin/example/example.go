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

// Package example registers the reference "example" plugin. It exists so
// that plugin authors and the documentation pipeline have a small, stable
// declaration to work against.
package example

import (
	"github.com/open-world-agents/mkdocstrings-owa/pkg/module"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
)

// Name is the entry point name of the plugin.
const Name = "example"

// Version of the example plugin declaration.
const Version = "0.1.0"

const importRoot = "owa.env.example"

func init() {
	plugin.MustRegister(Name, Load)
	module.MustRegister(&module.Static{
		ModulePath:    importRoot,
		ModuleVersion: Version,
		ModuleDoc:     "Reference implementation of an environment plugin.",
		Members: []module.Member{
			{Name: "example_callable", Kind: "func", Doc: "Return a greeting."},
			{Name: "ExampleListener", Kind: "type", Doc: "Emit a tick on every interval."},
			{Name: "ExampleRunnable", Kind: "type", Doc: "Count upwards until stopped."},
		},
	})
}

// Load returns the example plugin declaration.
func Load() (*plugin.Spec, error) {
	return &plugin.Spec{
		Namespace:   "example",
		Version:     Version,
		Description: "Example environment plugin demonstrating callables, listeners and runnables.",
		Author:      "Open World Agents",
		Kind:        plugin.DefaultKind,
		Components: []plugin.Component{
			{
				Type:        plugin.ComponentTypeCallables,
				Name:        "callable",
				ImportPath:  importRoot + ".example_callable:example_callable",
				Description: "Return a greeting.",
			},
			{
				Type:        plugin.ComponentTypeCallables,
				Name:        "print",
				ImportPath:  importRoot + ".example_callable:example_print",
				Description: "Print a message to stdout.",
			},
			{
				Type:        plugin.ComponentTypeListeners,
				Name:        "listener",
				ImportPath:  importRoot + ".example_listener:ExampleListener",
				Description: "Emit a tick on every interval.",
			},
			{
				Type:        plugin.ComponentTypeRunnables,
				Name:        "runnable",
				ImportPath:  importRoot + ".example_runnable:ExampleRunnable",
				Description: "Count upwards until stopped.",
			},
		},
	}, nil
}
