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

// Package cli implements the owadocs command-line interface.
//
// The CLI drives the same handler a docs build uses, which makes it useful
// for previewing plugin pages and for diagnosing plugins that fail to load.
//
// # Commands
//
// plugins - List discovered plugins:
//
//	owadocs plugins [--format json]
//
// Runs discovery once and reports discovered plugins together with the
// candidates that failed and why.
//
// collect - Print collected metadata:
//
//	owadocs collect owa.env.desktop --option show_components=false
//
// Resolves the identifier to a plugin or module and prints the metadata
// object the renderer receives, wrapped in a versioned document header.
//
// render - Render Markdown:
//
//	owadocs render owa.env.desktop owa.env.example --output reference.md
//
// Renders each identifier with the configured theme and custom templates.
//
// serve - Preview server:
//
//	owadocs serve --port 8080
//
// Serves /v1/plugins, /v1/collect and /v1/render. Query parameters other
// than id are local handler options. /health, /ready and /metrics are
// served alongside.
//
// # Global Flags
//
//	--config, -c    mkdocs.yml or standalone handler config file
//	--log-level     Log level (debug, info, warn, error)
//	--plugins-dir   Directory of plugin manifests
//	--templates     Directory of custom templates
//	--theme         Embedded template theme
//	--help, -h      Show command help
//	--version, -v   Show version information
//
// # Configuration
//
// With an mkdocs config the handler section is read from
// plugins.mkdocstrings.handlers.owa:
//
//	plugins:
//	  - mkdocstrings:
//	      handlers:
//	        owa:
//	          plugins_dir: plugins
//	          options:
//	            heading_level: 3
//
// Relative paths in the section resolve against the config file's
// directory. Paths given on the command line resolve against the working
// directory.
//
// # Environment Variables
//
//	OWADOCS_CONFIG  Default for --config
//	LOG_LEVEL       Default for --log-level
//	PORT            Default port for serve
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
package cli
