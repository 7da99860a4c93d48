package report

import (
	"io"

	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// Writer renders one audit result per call in a concrete format.
//
// Design decision: An interface rather than format flags on a single
// struct, so text, JSON, and Markdown renderers stay independent and a
// destination (stdout, file, network) is chosen at construction time.
type Writer interface {
	// Write renders the result to the configured destination and
	// returns the number of bytes written.
	Write(result *model.AuditResult) (int, error)
}

// MultiWriter fans one result out to several Writers, e.g. terminal
// plus file. io.MultiWriter cannot serve here since report Writers
// take results, not bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the result through every writer in order, stopping at
// the first failure. The count covers all bytes written, including by
// the failing writer.
func (m *MultiWriter) Write(result *model.AuditResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter holds the output destination shared by the renderers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
