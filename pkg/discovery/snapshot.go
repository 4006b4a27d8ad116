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
	"time"

	"github.com/google/uuid"
)

// Snapshot is the immutable result of one discovery run. Accessors return
// copies, so callers cannot alter what later callers observe.
type Snapshot struct {
	id        string
	createdAt time.Time
	entries   []Entry
	index     map[string]int
}

func newSnapshot(entries []Entry) *Snapshot {
	s := &Snapshot{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
		entries:   entries,
		index:     make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		s.index[e.Name] = i
	}
	return s
}

// ID uniquely identifies the discovery run.
func (s *Snapshot) ID() string { return s.id }

// CreatedAt is when the run finished.
func (s *Snapshot) CreatedAt() time.Time { return s.createdAt }

// Len returns the number of entries, discovered and failed.
func (s *Snapshot) Len() int { return len(s.entries) }

// Lookup returns the entry with the given name, discovered or failed.
func (s *Snapshot) Lookup(name string) (Entry, bool) {
	i, ok := s.index[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i].clone(), true
}

// Entries returns all entries in enumeration order.
func (s *Snapshot) Entries() []Entry {
	return s.filter(func(Entry) bool { return true })
}

// Discovered returns the loaded entries in enumeration order.
func (s *Snapshot) Discovered() []Entry {
	return s.filter(Entry.IsDiscovered)
}

// Failed returns the entries that could not be loaded in enumeration order.
func (s *Snapshot) Failed() []Entry {
	return s.filter(func(e Entry) bool { return !e.IsDiscovered() })
}

// Names returns the names of discovered plugins in enumeration order.
func (s *Snapshot) Names() []string {
	return names(s.Discovered())
}

// FailedNames returns the names of failed plugins in enumeration order.
func (s *Snapshot) FailedNames() []string {
	return names(s.Failed())
}

// PluginInfo returns discovered entries keyed by name and failure reasons
// keyed by name.
func (s *Snapshot) PluginInfo() (map[string]Entry, map[string]string) {
	discovered := make(map[string]Entry)
	failed := make(map[string]string)
	for _, e := range s.entries {
		if e.IsDiscovered() {
			discovered[e.Name] = e.clone()
		} else {
			failed[e.Name] = e.FailureReason
		}
	}
	return discovered, failed
}

// Report is the serializable summary of a Snapshot.
type Report struct {
	ID         string            `json:"id" yaml:"id"`
	CreatedAt  time.Time         `json:"createdAt" yaml:"createdAt"`
	Discovered []ReportEntry     `json:"discovered" yaml:"discovered"`
	Failed     []FailedEntry     `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// FailedEntry records why one plugin could not be loaded.
type FailedEntry struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// ReportEntry summarizes one discovered plugin.
type ReportEntry struct {
	Name       string `json:"name" yaml:"name"`
	Namespace  string `json:"namespace" yaml:"namespace"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	Source     string `json:"source" yaml:"source"`
	Components int    `json:"components" yaml:"components"`
}

// Report summarizes the snapshot for output. Both lists keep enumeration
// order.
func (s *Snapshot) Report() Report {
	r := Report{
		ID:         s.id,
		CreatedAt:  s.createdAt,
		Discovered: make([]ReportEntry, 0, len(s.entries)),
	}
	for _, e := range s.Failed() {
		r.Failed = append(r.Failed, FailedEntry{Name: e.Name, Reason: e.FailureReason})
	}
	for _, e := range s.Discovered() {
		r.Discovered = append(r.Discovered, ReportEntry{
			Name:       e.Name,
			Namespace:  e.Spec.Namespace,
			Version:    e.Spec.Version,
			Source:     e.Source,
			Components: len(e.Spec.Components),
		})
	}
	return r
}

func (s *Snapshot) filter(keep func(Entry) bool) []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, e.clone())
		}
	}
	return out
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
