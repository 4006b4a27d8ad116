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

// Package logging provides structured logging utilities for the owadocs pipeline.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so that discovery, collection and rendering all log in one consistent shape.
// It supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("owadocs", "v0.1.0", os.Getenv(logging.EnvLogLevel))
//	    slog.Info("discovering plugins", "sources", 2)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("owadocs", "v0.1.0", "debug")
//	logger.Info("plugin loaded", "name", "desktop")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug owadocs plugins
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "discovery complete",
//	    "module": "owadocs",
//	    "version": "v0.1.0",
//	    "discovered": 2
//	}
package logging
