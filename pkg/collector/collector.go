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

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/discovery"
	apperrors "github.com/open-world-agents/mkdocstrings-owa/pkg/errors"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/metadata"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/options"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/resolver"
)

// SnapshotProvider supplies the discovery snapshot consulted on every call.
// *discovery.Cache implements it.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*discovery.Snapshot, error)
}

// ExtractFunc builds metadata for a resolved target.
type ExtractFunc func(t *resolver.Target, opts options.Options) (*metadata.PluginMetadata, error)

// Collector resolves identifiers and extracts their metadata.
type Collector struct {
	snapshots  SnapshotProvider
	resolver   *resolver.Resolver
	extractors map[metadata.Kind]ExtractFunc
}

// New creates a Collector with the default extractor for every kind.
func New(sp SnapshotProvider, r *resolver.Resolver) *Collector {
	if r == nil {
		r = resolver.New(nil)
	}
	return &Collector{
		snapshots: sp,
		resolver:  r,
		extractors: map[metadata.Kind]ExtractFunc{
			metadata.KindPlugin: FromPlugin,
			metadata.KindModule: FromModule,
		},
	}
}

// CollectionError reports that an identifier could not be collected.
type CollectionError struct {
	Identifier string
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("failed to collect %q: %v", e.Identifier, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// Collect returns a fresh PluginMetadata for id. Calls with the same id and
// options against the same snapshot return equal values.
func (c *Collector) Collect(ctx context.Context, id string, opts options.Options) (*metadata.PluginMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, "collect cancelled", err)
	}

	start := time.Now()
	defer func() {
		collectDuration.Observe(time.Since(start).Seconds())
	}()

	var snap *discovery.Snapshot
	if c.snapshots != nil {
		var err error
		if snap, err = c.snapshots.Snapshot(ctx); err != nil {
			collectTotal.WithLabelValues(metadata.KindUnknown.String(), "error").Inc()
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "plugin discovery failed", err)
		}
	}

	target, err := c.resolver.Resolve(id, snap)
	if err != nil {
		collectTotal.WithLabelValues(metadata.KindUnknown.String(), "not_found").Inc()
		slog.Debug("identifier not resolvable", "identifier", id, "error", err)
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound, "identifier not found",
			&CollectionError{Identifier: id, Err: err}, map[string]any{"identifier": id})
	}

	extract, ok := c.extractors[target.Kind]
	if !ok {
		collectTotal.WithLabelValues(target.Kind.String(), "error").Inc()
		return nil, apperrors.New(apperrors.ErrCodeInternal, fmt.Sprintf("no extractor for kind %s", target.Kind))
	}

	md, err := extract(target, opts)
	if err != nil {
		collectTotal.WithLabelValues(target.Kind.String(), "error").Inc()
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "extraction failed", err)
	}

	if opts.SortComponents {
		md.Components = md.Components.Sorted()
	}

	if err := md.Validate(); err != nil {
		collectTotal.WithLabelValues(target.Kind.String(), "error").Inc()
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "incomplete metadata", err)
	}

	collectTotal.WithLabelValues(target.Kind.String(), "success").Inc()
	slog.Debug("collected metadata",
		"identifier", id,
		"kind", md.Kind,
		"components", md.Components.Len(),
	)
	return md, nil
}
