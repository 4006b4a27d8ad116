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

// Package server provides the HTTP server that hosts the documentation
// preview API.
//
// The server owns transport concerns only. Callers supply Routes, each
// naming the docs operation it serves, and every route runs behind the
// same middleware chain:
//
//   - Prometheus metrics labelled by operation
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request logging
//
// # Usage
//
//	s, err := server.New(
//	    server.WithName("owadocs"),
//	    server.WithVersion(version),
//	    server.WithRoutes(server.Route{
//	        Path: "/v1/render", Operation: "render", Handler: renderHandler,
//	    }),
//	    server.WithCheck("discovery", discoveryReady),
//	)
//	if err != nil {
//	    return err
//	}
//	return s.Run(ctx)
//
// # System Endpoints
//
// GET /health returns 200 while the process answers.
//
// GET /ready returns 200 once the listener is up and every Check passes,
// and 503 otherwise, with the result of each check in the body.
//
// GET /metrics exposes Prometheus metrics.
//
// GET / lists routes and their operations unless a route claims "/".
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "identifier could not be collected",
//	  "details": {"error": "..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives the status from a StructuredError code:
//
//   - INVALID_REQUEST: 400
//   - NOT_FOUND: 404
//   - METHOD_NOT_ALLOWED: 405
//   - TEMPLATE: 422
//   - RATE_LIMIT_EXCEEDED: 429
//   - SERVICE_UNAVAILABLE: 503
//   - TIMEOUT: 504
//   - anything else: 500
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment
// on top of the defaults in pkg/defaults.
package server
