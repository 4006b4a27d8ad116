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

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const defaultValueKey = "value"

// Writer handles serialization of documentation data to various formats.
// Close must be called to release file handles when using NewFileWriterOrStdout.
type Writer struct {
	format  Format
	output  io.Writer
	closer  io.Closer
	compact bool
}

// NewWriter creates a new Writer with the specified format and output destination.
// If output is nil, os.Stdout will be used.
// If format is unknown, defaults to JSON format.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// NewFileWriterOrStdout creates a new Writer that outputs to the specified file path in the given format.
// If the file cannot be created or path is empty, it falls back to stdout.
// Remember to call Close() on the returned Writer to ensure the file is properly closed.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewWriter(format, os.Stdout)
	}

	file, err := os.Create(trimmed)
	if err != nil {
		slog.Error("failed to create output file", "error", err, "path", trimmed)
		return NewWriter(format, os.Stdout)
	}

	w := NewWriter(format, file)
	w.closer = file
	return w
}

// Format returns the format the Writer encodes with.
func (w *Writer) Format() Format {
	return w.format
}

// Close releases any resources associated with the Writer.
// It's safe to call Close multiple times or on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		err := w.closer.Close()
		w.closer = nil
		return err
	}
	return nil
}

// Serialize writes v in the configured format.
// Context is provided for consistency with the Serializer interface;
// file and stdout writes are not cancellable.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch w.format {
	case FormatJSON:
		return w.serializeJSON(v)
	case FormatYAML:
		return w.serializeYAML(v)
	case FormatTable:
		return w.serializeTable(v)
	case FormatMarkdown:
		return w.serializeMarkdown(v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) serializeJSON(v any) error {
	encoder := json.NewEncoder(w.output)
	if !w.compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(v any) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return encoder.Close()
}

func (w *Writer) serializeMarkdown(v any) error {
	var text string
	switch t := v.(type) {
	case string:
		text = t
	case []byte:
		text = string(t)
	case fmt.Stringer:
		text = t.String()
	default:
		return fmt.Errorf("markdown format requires text, got %T", v)
	}
	if _, err := io.WriteString(w.output, text); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

func (w *Writer) serializeTable(v any) error {
	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(v), "")
	if len(flat) == 0 {
		fmt.Fprintln(w.output, "<empty>")
		return nil
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", key, flat[key])
	}
	return tw.Flush()
}

func flattenValue(out map[string]any, val reflect.Value, prefix string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if prefix != "" {
				out[prefix] = nil
			}
			return
		}
		val = val.Elem()
	}

	//nolint:exhaustive // We handle the common cases explicitly; all others go to default
	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			key := joinKey(prefix, field.Name)
			flattenValue(out, val.Field(i), key)
		}
	case reflect.Map:
		for _, mapKey := range val.MapKeys() {
			key := joinKey(prefix, fmt.Sprintf("%v", mapKey.Interface()))
			flattenValue(out, val.MapIndex(mapKey), key)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			key := joinKey(prefix, fmt.Sprintf("[%d]", i))
			flattenValue(out, val.Index(i), key)
		}
	default:
		if prefix == "" {
			prefix = defaultValueKey
		}
		out[prefix] = val.Interface()
	}
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	return prefix + "." + suffix
}
