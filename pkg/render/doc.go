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

// Package render turns collected plugin metadata into Markdown.
//
// A Renderer picks the most specific template available for the metadata:
// "<kind>-<subkind>" first, then "<kind>", then "generic". Templates come
// from a Store. The default store serves the embedded "material" theme, and
// a LayeredStore lets a directory of custom templates override individual
// files:
//
//	embedded, _ := render.NewEmbeddedStore(defaults.Theme)
//	custom, _ := render.NewDirStore("docs/templates/owa")
//	r := render.New(render.LayeredStore{custom, embedded})
//	page, err := r.Render(md, opts)
//
// Templates are Go text/template files named "<name>.md.tmpl". They
// execute with missingkey=error, and any parse or execution failure is
// reported as a *TemplateError naming the template.
package render
