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

package render

import (
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/open-world-agents/mkdocstrings-owa/pkg/defaults"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"heading": heading,
		"title":   title,
		"anchor":  anchor,
		"join":    join,
		"add":     func(a, b int) int { return a + b },
	}
}

// heading returns a Markdown ATX heading, clamping level to 1-6.
func heading(level int, text string) string {
	level = max(defaults.MinHeadingLevel, min(level, defaults.MaxHeadingLevel))
	return strings.Repeat("#", level) + " " + text
}

// title converts "callables" or "window_publisher" to title case words.
// A Caser is stateful, so each call gets its own.
func title(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return cases.Title(language.English).String(s)
}

// anchor derives an HTML id from s: lower case, with every run of
// characters other than letters and digits collapsed to one "-".
func anchor(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func join(sep string, items []string) string {
	return strings.Join(items, sep)
}
