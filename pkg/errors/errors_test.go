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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("yaml: line 3: did not find expected key")
	ctx := map[string]any{
		"manifest": "plugins/broken.yaml",
		"plugin":   "broken",
	}

	err := WrapWithContext(ErrCodePluginLoad, "manifest load failed", cause, ctx)

	if err.Code != ErrCodePluginLoad {
		t.Errorf("expected code %s, got %s", ErrCodePluginLoad, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["manifest"] != "plugins/broken.yaml" {
		t.Errorf("expected manifest to be plugins/broken.yaml")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodePluginLoad,
		ErrCodeTemplate,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "structured error",
			err:  New(ErrCodeTemplate, "template missing"),
			want: ErrCodeTemplate,
		},
		{
			name: "structured error wrapped by fmt",
			err:  fmt.Errorf("render: %w", New(ErrCodeNotFound, "no such plugin")),
			want: ErrCodeNotFound,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}
