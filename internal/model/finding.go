package model

// Finding is one classified observation produced by a check.
// Findings are immutable once created; the severity is fixed at creation.
type Finding struct {
	// Severity is the classification level of this observation.
	Severity Severity `json:"severity"`

	// Message is the human-readable observation, without severity
	// decoration. Renderers add icons or prefixes as they see fit.
	Message string `json:"message"`
}

// Accumulator collects findings for a single audit run, bucketed by
// severity. It is append-only during the run and read-only afterward;
// insertion order is preserved within each bucket so reports render
// deterministically. An Accumulator is never reused across audits.
//
// Design decision: checks return their findings and the orchestrator merges
// them into the Accumulator in a fixed order. That keeps checks pure and
// independently testable, and gives the Accumulator a single writer, so no
// locking is needed even when checks execute concurrently.
type Accumulator struct {
	critical []Finding
	warning  []Finding
	passed   []Finding
}

// NewAccumulator returns an empty Accumulator for one audit run.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Record appends one finding with the given severity. Unknown severity
// values are recorded as critical so they are never silently dropped.
func (a *Accumulator) Record(severity Severity, message string) {
	f := Finding{Severity: severity, Message: message}
	switch severity {
	case SeverityPassed:
		a.passed = append(a.passed, f)
	case SeverityWarning:
		a.warning = append(a.warning, f)
	default:
		a.critical = append(a.critical, f)
	}
}

// CriticalCount returns the number of critical findings recorded so far.
func (a *Accumulator) CriticalCount() int { return len(a.critical) }

// WarningCount returns the number of warning findings recorded so far.
func (a *Accumulator) WarningCount() int { return len(a.warning) }

// PassedCount returns the number of passed findings recorded so far.
func (a *Accumulator) PassedCount() int { return len(a.passed) }

// Snapshot returns a read-only copy of the accumulated findings. The
// returned set holds non-nil slices so empty buckets serialize as empty
// arrays, and later writes to the Accumulator cannot leak into it.
func (a *Accumulator) Snapshot() FindingSet {
	return FindingSet{
		Critical: copyFindings(a.critical),
		Warning:  copyFindings(a.warning),
		Passed:   copyFindings(a.passed),
	}
}

func copyFindings(src []Finding) []Finding {
	dst := make([]Finding, len(src))
	copy(dst, src)
	return dst
}

// FindingSet is the immutable snapshot of one audit's findings, embedded in
// the AuditResult. Buckets keep insertion order.
type FindingSet struct {
	// Critical holds findings search engines penalize directly.
	Critical []Finding `json:"critical"`

	// Warning holds findings that degrade quality without blocking indexing.
	Warning []Finding `json:"warning"`

	// Passed holds the checks that found nothing wrong.
	Passed []Finding `json:"passed"`
}

// Total returns the number of findings across all severity buckets.
func (fs FindingSet) Total() int {
	return len(fs.Critical) + len(fs.Warning) + len(fs.Passed)
}
