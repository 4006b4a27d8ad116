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
	"sync"
	"sync/atomic"
)

// Cache runs discovery once and serves the same Snapshot to every caller.
// Once a snapshot is stored, reads take no lock. A run that fails, which
// only happens when the caller's context ends first, is not stored, and the
// next caller discovers again.
type Cache struct {
	discoverer *Discoverer

	mu   sync.Mutex
	snap atomic.Pointer[Snapshot]
}

// NewCache wraps d.
func NewCache(d *Discoverer) *Cache {
	return &Cache{discoverer: d}
}

// Snapshot returns the cached snapshot, running discovery on first use.
// Concurrent first callers wait for a single run.
func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s := c.snap.Load(); s != nil {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s := c.snap.Load(); s != nil {
		return s, nil
	}

	s, err := c.discoverer.Discover(ctx)
	if err != nil {
		return nil, err
	}
	c.snap.Store(s)
	return s, nil
}

// Ready reports whether a snapshot has been stored.
func (c *Cache) Ready() bool {
	return c.snap.Load() != nil
}
