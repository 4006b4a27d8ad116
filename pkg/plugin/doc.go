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

// Package plugin defines how a plugin declares itself and how plugins
// register with the process.
//
// A plugin is described by a Spec: a namespace, a version, an optional
// description and the components it provides, each tagged with a
// ComponentType (callables, listeners, runnables).
//
// Compiled-in plugins register an entry point from an init() function, the
// same way the built-in example and desktop plugins do:
//
//	func init() {
//	    plugin.MustRegister("example", Load)
//	}
//
// Registration only records a Loader. Nothing is loaded until discovery runs,
// so a broken plugin cannot prevent the process from starting.
package plugin
