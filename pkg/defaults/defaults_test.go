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

package defaults

import "testing"

func TestHeadingLevelBounds(t *testing.T) {
	if HeadingLevel < MinHeadingLevel || HeadingLevel > MaxHeadingLevel {
		t.Errorf("HeadingLevel (%d) should be within [%d, %d]", HeadingLevel, MinHeadingLevel, MaxHeadingLevel)
	}
}

func TestDiscoveryConcurrency(t *testing.T) {
	if DiscoveryConcurrency <= 0 {
		t.Errorf("DiscoveryConcurrency should be positive, got %d", DiscoveryConcurrency)
	}
	if DiscoveryConcurrency > MaxDiscoveryConcurrency {
		t.Errorf("DiscoveryConcurrency (%d) should not exceed MaxDiscoveryConcurrency (%d)",
			DiscoveryConcurrency, MaxDiscoveryConcurrency)
	}
}

func TestSentinelsNotEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"UnknownVersion", UnknownVersion},
		{"UnknownNamespace", UnknownNamespace},
		{"Theme", Theme},
		{"TemplateExtension", TemplateExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == "" {
				t.Errorf("%s should not be empty", tt.name)
			}
		})
	}
}

func TestServerTimeouts(t *testing.T) {
	if ServerReadHeaderTimeout > ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should not exceed ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
	if DocsHandlerTimeout > ServerWriteTimeout {
		t.Errorf("DocsHandlerTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			DocsHandlerTimeout, ServerWriteTimeout)
	}
	if ServerRateLimitBurst < ServerRateLimit {
		t.Errorf("ServerRateLimitBurst (%d) should be at least ServerRateLimit (%d)",
			ServerRateLimitBurst, ServerRateLimit)
	}
}
