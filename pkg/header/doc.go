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

// Package header provides the envelope stamped on documents the CLI emits.
//
// Discovery reports and collected plugin metadata are written with a Kind,
// an APIVersion and a Metadata map. The map always carries the generation
// timestamp; options add the tool version, the discovery snapshot ID or the
// collected identifier:
//
//	h := header.New(header.KindDiscoveryReport,
//		header.WithVersion(version),
//		header.WithSnapshot(report.ID))
package header
