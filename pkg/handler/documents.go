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

package handler

import (
	"github.com/open-world-agents/mkdocstrings-owa/pkg/discovery"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/header"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/metadata"
)

// ReportDocument is the emitted form of a discovery run.
type ReportDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Report discovery.Report `json:"report" yaml:"report"`
}

// NewReportDocument wraps r in a versioned document header that names the
// snapshot it summarizes.
func NewReportDocument(r discovery.Report, version string) *ReportDocument {
	return &ReportDocument{
		Header: header.New(header.KindDiscoveryReport,
			header.WithVersion(version),
			header.WithSnapshot(r.ID)),
		Report: r,
	}
}

// MetadataDocument is the emitted form of collected metadata.
type MetadataDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Plugin *metadata.PluginMetadata `json:"plugin" yaml:"plugin"`
}

// NewMetadataDocument wraps md in a versioned document header that names
// the identifier it was collected for.
func NewMetadataDocument(md *metadata.PluginMetadata, version string) *MetadataDocument {
	return &MetadataDocument{
		Header: header.New(header.KindPluginMetadata,
			header.WithVersion(version),
			header.WithIdentifier(md.Name)),
		Plugin: md,
	}
}
