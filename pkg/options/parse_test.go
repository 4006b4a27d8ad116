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

package options

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"3", 3},
		{"false", false},
		{"material", "material"},
		{"", ""},
		{"[callables, listeners]", []any{"callables", "listeners"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseValue(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseValue("[unclosed")
	assert.Error(t, err)
}

func TestParsePairs(t *testing.T) {
	got, err := ParsePairs([]string{
		"heading_level=3",
		"show_components=false",
		" sort_components = true",
		"component_types=[runnables]",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"heading_level":   3,
		"show_components": false,
		"sort_components": true,
		"component_types": []any{"runnables"},
	}, got)

	for _, bad := range []string{"no-equals", "=value", "key=[unclosed"} {
		_, err := ParsePairs([]string{bad})
		var ce *ConfigurationError
		assert.True(t, errors.As(err, &ce), "ParsePairs(%q) should fail with ConfigurationError", bad)
	}
}

func TestParsePairs_FeedsMerge(t *testing.T) {
	local, err := ParsePairs([]string{"heading_level=4", "component_types=[listeners]"})
	require.NoError(t, err)

	opts, err := Merge(nil, local)
	require.NoError(t, err)
	assert.Equal(t, 4, opts.HeadingLevel)
	assert.Equal(t, []string{"listeners"}, opts.ComponentTypes)
}

func TestFromValues(t *testing.T) {
	values := url.Values{
		"id":              {"desktop"},
		"heading_level":   {"3"},
		"component_types": {"callables", "listeners"},
		"empty":           {},
	}

	got, err := FromValues(values, "id")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"heading_level":   3,
		"component_types": []any{"callables", "listeners"},
	}, got)

	_, err = FromValues(url.Values{"heading_level": {"[bad"}})
	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"heading_level"}, ce.Keys)
}
