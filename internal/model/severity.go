package model

// Severity represents the classification level of a single finding.
// Every finding is fixed to one level at creation; checks never reclassify
// findings produced by other checks.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and counting. The String() method provides
// the canonical lowercase name used in serialized output. Human-readable
// decoration (icons, section headers) belongs to the renderers, never here.
type Severity int

const (
	// SeverityPassed indicates a check that found nothing wrong.
	// Examples: a title between 30 and 60 characters, a single H1 heading.
	SeverityPassed Severity = iota

	// SeverityWarning indicates an issue that degrades SEO quality but does
	// not block indexing. Examples: a short meta description, missing
	// Open Graph tags, render-blocking scripts.
	SeverityWarning

	// SeverityCritical indicates an issue search engines penalize directly.
	// Examples: a missing title, a missing H1, images without alt attributes.
	// A failed fetch is also recorded at this level.
	SeverityCritical
)

// String returns the canonical lowercase name of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityPassed:
		return "passed"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so findings serialize with
// the severity name instead of a bare integer.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
