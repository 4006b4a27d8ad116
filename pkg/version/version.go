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

// Package version checks the shape of versions that plugins declare.
package version

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// IsSemverLike reports whether a declared plugin version has the
// Major.Minor.Patch form, with or without a "v" prefix and a "-pre" or
// "+build" suffix. Discovery logs plugins whose version fails this check but
// still loads them.
func IsSemverLike(s string) bool {
	core, _, err := split(strings.TrimSpace(s))
	return err == nil && len(core) == 3
}

// split separates a version into its dotted numeric components and the
// suffix that starts at the first '-' or '+' following a digit.
func split(s string) ([]string, string, error) {
	if s == "" {
		return nil, "", ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	core, suffix := s, ""
	if i := strings.IndexAny(s, "-+"); i > 0 && isDigit(s[i-1]) {
		core, suffix = s[:i], s[i:]
	}

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return nil, "", ErrTooManyComponents
	}
	for _, p := range parts {
		if p == "" || strings.IndexFunc(p, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			return nil, "", fmt.Errorf("%w: %q", ErrNonNumeric, p)
		}
	}
	return parts, suffix, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
