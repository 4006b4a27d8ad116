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

// Package api serves the documentation pipeline over HTTP for live
// previews.
//
// # Usage
//
//	h, err := handler.GetHandler(section, handler.StaticHostConfig("mkdocs.yml"))
//	if err != nil {
//	    return err
//	}
//	if err := api.Serve(ctx, h, server.NewConfig(), version); err != nil {
//	    return err
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Mapping query parameters to identifiers and local options
//   - Calling the handler's collect and render operations
//   - Delegating server lifecycle management to pkg/server
//
// Discovery runs once per server through the handler's cache, so every
// request sees the same plugin set. Serve starts it in the background,
// detached from any request, and /ready stays 503 until the snapshot is
// stored. A request that arrives first and is cancelled does not poison the
// cache: the next caller discovers again.
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/plugins - Discovery report, discovered and failed plugins
//   - GET /v1/collect - Collected metadata as a PluginMetadata document
//   - GET /v1/render  - Rendered Markdown (text/markdown)
//
// System Endpoints (no rate limiting):
//   - GET /health  - Liveness check
//   - GET /ready   - Readiness check, including the "discovery" check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/collect, GET /v1/render)
//
//   - id: identifier to resolve (required)
//   - any option key, e.g. heading_level=3 or show_components=false
//
// Option values are parsed as YAML scalars. Repeating a key builds a list:
//
//	curl "http://localhost:8080/v1/render?id=desktop&component_types=callables&component_types=listeners"
//
// # Errors
//
// Errors use the pkg/server JSON error body. An unknown identifier is 404,
// an invalid option is 400 and a template failure is 422.
package api
