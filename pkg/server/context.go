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

package server

import (
	"context"
	"net/http"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	operationKey
)

// RequestID returns the request ID assigned by the middleware, if any.
func RequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

// Operation returns the operation of the route serving r, if any.
func Operation(r *http.Request) string {
	op, _ := r.Context().Value(operationKey).(string)
	return op
}

func withValue(r *http.Request, key contextKey, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), key, value))
}
