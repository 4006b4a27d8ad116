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

// Package handler is the facade a documentation host drives.
//
// A host creates one Handler from its configuration and then, for every
// identifier it documents, merges options, collects metadata and renders
// it:
//
//	h, err := handler.GetHandler(cfg, handler.StaticHostConfig("mkdocs.yml"))
//	if err != nil {
//	    return err
//	}
//	opts, err := h.GetOptions(map[string]any{"heading_level": 3})
//	md, err := h.Collect(ctx, "desktop", opts)
//	page, err := h.Render(md, opts)
//
// Plugin discovery runs once per Handler, on the first Collect, and the
// snapshot is shared by every later call. The built-in "example" and
// "desktop" plugins are always registered.
package handler
