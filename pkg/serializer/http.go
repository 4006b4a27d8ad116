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

package serializer

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Negotiate picks the document format for r from its Accept header. The
// first JSON or YAML entry wins; anything else, or no header, means JSON.
func Negotiate(r *http.Request) Format {
	for _, entry := range strings.Split(r.Header.Get("Accept"), ",") {
		if f, ok := FormatFromMediaType(entry); ok {
			return f
		}
	}
	return FormatJSON
}

// Respond encodes v in the format negotiated for r. The body is encoded
// before any header is written, so an encoding failure still yields a
// clean 500.
func Respond(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	respond(w, Negotiate(r), statusCode, v)
}

// RespondJSON writes v as compact JSON. Health, readiness and error bodies
// use it regardless of Accept.
func RespondJSON(w http.ResponseWriter, statusCode int, v any) {
	respond(w, FormatJSON, statusCode, v)
}

// RespondMarkdown writes a rendered page.
func RespondMarkdown(w http.ResponseWriter, statusCode int, page string) {
	respond(w, FormatMarkdown, statusCode, page)
}

func respond(w http.ResponseWriter, format Format, statusCode int, v any) {
	buf := &bytes.Buffer{}
	enc := NewWriter(format, buf)
	enc.compact = true
	if err := enc.Serialize(context.Background(), v); err != nil {
		slog.Error("response encoding failed", "format", format, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "format", format, "error", err)
	}
}
