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
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/version"
)

// Discoverer loads every candidate its sources enumerate.
type Discoverer struct {
	// Sources are consulted in order. When two sources name the same
	// candidate, the first one enumerated wins.
	Sources []CandidateSource

	// Concurrency caps the number of loaders running at once.
	// Values below 1 use defaults.DiscoveryConcurrency.
	Concurrency int
}

// Option is a functional option for configuring Discoverer instances.
type Option func(*Discoverer)

// WithConcurrency returns an Option that bounds concurrent loads.
func WithConcurrency(n int) Option {
	return func(d *Discoverer) {
		d.Concurrency = n
	}
}

// WithSource returns an Option that appends a candidate source.
func WithSource(s CandidateSource) Option {
	return func(d *Discoverer) {
		d.Sources = append(d.Sources, s)
	}
}

// NewDiscoverer creates a Discoverer over src and the sources added by opts.
func NewDiscoverer(src CandidateSource, opts ...Option) *Discoverer {
	d := &Discoverer{
		Concurrency: defaults.DiscoveryConcurrency,
	}
	if src != nil {
		d.Sources = append(d.Sources, src)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover enumerates and loads all candidates. Individual load failures
// are recorded in the Snapshot; the returned error is non-nil only when
// ctx is done before loading finishes.
func (d *Discoverer) Discover(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, "discovery cancelled", err)
	}

	start := time.Now()
	defer func() {
		discoveryDuration.Observe(time.Since(start).Seconds())
	}()

	candidates := d.enumerate(ctx)
	slog.Debug("discovering plugins", "candidates", len(candidates))

	limit := d.Concurrency
	if limit < 1 {
		limit = defaults.DiscoveryConcurrency
	}

	// One slot per candidate keeps enumeration order regardless of which
	// load finishes first.
	entries := make([]Entry, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = load(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, "discovery cancelled", err)
	}

	snap := newSnapshot(entries)
	slog.Info("plugin discovery complete",
		"discovered", len(snap.Names()),
		"failed", len(snap.FailedNames()),
		"duration", time.Since(start).String(),
	)
	return snap, nil
}

// enumerate collects candidates from every source, dropping duplicate names.
func (d *Discoverer) enumerate(ctx context.Context) []Candidate {
	var out []Candidate
	seen := make(map[string]string)
	for _, src := range d.Sources {
		cs, err := src.Candidates(ctx)
		if err != nil {
			slog.Warn("skipping plugin source", "error", err)
			continue
		}
		for _, c := range cs {
			if prev, dup := seen[c.Name]; dup {
				slog.Warn("duplicate plugin name, keeping first",
					"name", c.Name, "kept", prev, "ignored", c.Source)
				continue
			}
			seen[c.Name] = c.Source
			out = append(out, c)
		}
	}
	return out
}

// load runs one candidate's loader, converting errors, invalid
// declarations and panics into a failed Entry.
func load(c Candidate) (e Entry) {
	e = Entry{Name: c.Name, Source: c.Source}

	defer func() {
		if r := recover(); r != nil {
			e = failed(e, fmt.Errorf("loader panicked: %v", r))
		}
		pluginLoadTotal.WithLabelValues(string(e.Status)).Inc()
	}()

	if c.Load == nil {
		return failed(e, fmt.Errorf("no loader"))
	}

	spec, err := c.Load()
	if err != nil {
		return failed(e, err)
	}
	if err := spec.Validate(); err != nil {
		return failed(e, fmt.Errorf("invalid declaration: %w", err))
	}

	if spec.Version != "" && !version.IsSemverLike(spec.Version) {
		slog.Warn("plugin version is not semver-like",
			"plugin", c.Name, "version", spec.Version)
	}

	e.Status = StatusDiscovered
	e.Spec = spec.Clone()
	slog.Debug("plugin loaded", "plugin", c.Name, "source", c.Source)
	return e
}

// failureReason is never empty, so a failed entry stays distinguishable from a
// discovered one when only the reason is kept.
func failureReason(name string, cause error) string {
	if cause != nil {
		if msg := strings.TrimSpace(cause.Error()); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("plugin %q failed to load without an error message", name)
}

func failed(e Entry, cause error) Entry {
	le := &LoadError{Name: e.Name, Cause: cause}
	e.Status = StatusFailed
	e.Spec = nil
	e.FailureReason = failureReason(e.Name, cause)
	e.Err = apperrors.WrapWithContext(apperrors.ErrCodePluginLoad, "plugin load failed", le,
		map[string]any{"plugin": e.Name, "source": e.Source})
	slog.Warn("plugin failed to load", "plugin", e.Name, "source", e.Source, "error", cause)
	return e
}
