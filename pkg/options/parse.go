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
	"fmt"
	"net/url"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseValue interprets raw as a YAML scalar or flow collection, so
// "3", "false" and "[a, b]" become an int, a bool and a list. Empty input
// stays an empty string.
func ParseValue(raw string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	if v == nil {
		return raw, nil
	}
	return v, nil
}

// ParsePairs turns key=value strings into a local options map.
func ParsePairs(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, raw, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid option %q, expected key=value", p)}
		}
		v, err := ParseValue(raw)
		if err != nil {
			return nil, &ConfigurationError{Keys: []string{key}, Reason: fmt.Sprintf("invalid value: %v", err)}
		}
		out[key] = v
	}
	return out, nil
}

// FromValues builds a local options map from URL query values, skipping
// the reserved keys. A key given more than once becomes a list.
func FromValues(values url.Values, reserved ...string) (map[string]any, error) {
	out := make(map[string]any, len(values))
	for key, raws := range values {
		if slices.Contains(reserved, key) || len(raws) == 0 {
			continue
		}
		parsed := make([]any, 0, len(raws))
		for _, raw := range raws {
			v, err := ParseValue(raw)
			if err != nil {
				return nil, &ConfigurationError{Keys: []string{key}, Reason: fmt.Sprintf("invalid value: %v", err)}
			}
			parsed = append(parsed, v)
		}
		if len(parsed) == 1 {
			out[key] = parsed[0]
		} else {
			out[key] = parsed
		}
	}
	return out, nil
}
