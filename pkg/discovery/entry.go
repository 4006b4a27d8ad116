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

package discovery

import (
	"fmt"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
)

// Status is the outcome of loading one candidate.
type Status string

const (
	StatusDiscovered Status = "discovered"
	StatusFailed     Status = "failed"
)

// Entry is the record of one candidate in a Snapshot.
type Entry struct {
	// Name is the candidate name, unique within a Snapshot.
	Name string `json:"name" yaml:"name"`

	// Status reports whether the candidate loaded.
	Status Status `json:"status" yaml:"status"`

	// FailureReason is set if and only if Status is StatusFailed.
	FailureReason string `json:"failureReason,omitempty" yaml:"failureReason,omitempty"`

	// Source names where the candidate was enumerated from,
	// "entrypoint" or "manifest:<path>".
	Source string `json:"source" yaml:"source"`

	// Spec is the loaded declaration. Nil for failed entries.
	Spec *plugin.Spec `json:"spec,omitempty" yaml:"spec,omitempty"`

	// Err is the classified load error for failed entries.
	Err error `json:"-" yaml:"-"`
}

// IsDiscovered reports whether the entry loaded successfully.
func (e Entry) IsDiscovered() bool {
	return e.Status == StatusDiscovered
}

func (e Entry) clone() Entry {
	e.Spec = e.Spec.Clone()
	return e
}

// LoadError records why a single candidate could not be loaded.
type LoadError struct {
	Name  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load plugin %q: %v", e.Name, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
