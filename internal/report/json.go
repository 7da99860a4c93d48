package report

import (
	"encoding/json"
	"io"

	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// JSONWriter renders results as JSON for tool integration and
// programmatic processing. The output is a direct, lossless
// serialization of the AuditResult; the struct tags on the model
// define the wire shape, so no separate view type is needed.
//
// Design decision: We use standard encoding/json rather than a
// third-party JSON library because:
//  1. It's part of the standard library (no extra dependencies)
//  2. Struct tags on the model already define the wire shape
//  3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// prefix is prepended to each line of indented output.
	prefix string

	// indent is the per-level indentation string. Empty means compact
	// output with no extra whitespace.
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent selects pretty-printed output using the given line prefix
// and per-level indent string.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.prefix = prefix
		w.indent = indent
	}
}

// WithPrettyPrint selects pretty-printed output with two-space
// indentation, the form shown to humans on stdout.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Without options the output is compact.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write serializes the result as JSON followed by a newline.
func (w *JSONWriter) Write(result *model.AuditResult) (int, error) {
	data, err := w.marshal(result)
	if err != nil {
		return 0, err
	}
	return w.output.Write(append(data, '\n'))
}

// marshal applies the configured indentation.
func (w *JSONWriter) marshal(result *model.AuditResult) ([]byte, error) {
	if w.indent == "" && w.prefix == "" {
		return json.Marshal(result)
	}
	return json.MarshalIndent(result, w.prefix, w.indent)
}
