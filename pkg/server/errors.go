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
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/serializer"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an ErrorResponse and counts it against the route's
// operation.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apperrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	op := Operation(r)
	if op == "" {
		op = "system"
	}
	errorsTotal.WithLabelValues(op, string(code)).Inc()

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to a status and error response. A
// StructuredError contributes its code, message and context; anything else
// is reported as an internal error with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *apperrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, nil)
	if err != nil {
		details = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternal, fallbackMessage, true, details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeTemplate:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code apperrors.ErrorCode) bool {
	switch code {
	case apperrors.ErrCodeTimeout, apperrors.ErrCodeUnavailable,
		apperrors.ErrCodeRateLimitExceeded, apperrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries over a's, or nil when
// both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
