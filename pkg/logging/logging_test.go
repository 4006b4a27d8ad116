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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestNewStructuredLogger_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "owadocs", "v0.1.0", "info")

	logger.Info("plugin loaded", "name", "desktop")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "plugin loaded", record["msg"])
	assert.Equal(t, "owadocs", record["module"])
	assert.Equal(t, "v0.1.0", record["version"])
	assert.Equal(t, "desktop", record["name"])
	assert.NotContains(t, record, "source")
}

func TestNewStructuredLogger_DebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "owadocs", "dev", "debug")

	logger.Debug("resolving identifier", "id", "os")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Contains(t, record, "source")
}

func TestNewStructuredLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "owadocs", "dev", "warn")

	logger.Info("suppressed")
	assert.Zero(t, buf.Len())
}
