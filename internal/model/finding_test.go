package model

import (
	"encoding/json"
	"testing"
)

// TestAccumulatorRecord tests that findings land in the right bucket in
// insertion order.
func TestAccumulatorRecord(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator()
	acc.Record(SeverityCritical, "missing title")
	acc.Record(SeverityWarning, "short description")
	acc.Record(SeverityPassed, "single H1")
	acc.Record(SeverityCritical, "missing H1")

	if got := acc.CriticalCount(); got != 2 {
		t.Errorf("critical count: got %d, expected 2", got)
	}
	if got := acc.WarningCount(); got != 1 {
		t.Errorf("warning count: got %d, expected 1", got)
	}
	if got := acc.PassedCount(); got != 1 {
		t.Errorf("passed count: got %d, expected 1", got)
	}

	fs := acc.Snapshot()
	if fs.Critical[0].Message != "missing title" || fs.Critical[1].Message != "missing H1" {
		t.Errorf("critical findings out of insertion order: %+v", fs.Critical)
	}
}

// TestAccumulatorRecordUnknownSeverity tests that an unknown severity value
// is kept rather than dropped.
func TestAccumulatorRecordUnknownSeverity(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator()
	acc.Record(Severity(42), "strange finding")

	if got := acc.CriticalCount(); got != 1 {
		t.Errorf("got %d critical findings, expected 1", got)
	}
}

// TestAccumulatorSnapshotIsolation tests that a snapshot does not observe
// later writes.
func TestAccumulatorSnapshotIsolation(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator()
	acc.Record(SeverityWarning, "first")

	fs := acc.Snapshot()
	acc.Record(SeverityWarning, "second")

	if got := len(fs.Warning); got != 1 {
		t.Errorf("snapshot grew after Record: got %d findings, expected 1", got)
	}
	if fs.Critical == nil || fs.Passed == nil {
		t.Error("empty buckets should be non-nil slices")
	}
}

// TestFindingSetTotal tests the total across all buckets.
func TestFindingSetTotal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		set      FindingSet
		expected int
	}{
		{
			name:     "empty set",
			set:      FindingSet{},
			expected: 0,
		},
		{
			name: "mixed severities",
			set: FindingSet{
				Critical: []Finding{{Severity: SeverityCritical, Message: "a"}},
				Warning:  []Finding{{Severity: SeverityWarning, Message: "b"}, {Severity: SeverityWarning, Message: "c"}},
				Passed:   []Finding{{Severity: SeverityPassed, Message: "d"}},
			},
			expected: 4,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.set.Total(); got != tc.expected {
				t.Errorf("got %d, expected %d", got, tc.expected)
			}
		})
	}
}

// TestFindingSetJSON tests that empty buckets serialize as arrays and
// severities as names.
func TestFindingSetJSON(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator()
	acc.Record(SeverityCritical, "missing title")

	data, err := json.Marshal(acc.Snapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"critical":[{"severity":"critical","message":"missing title"}],"warning":[],"passed":[]}`
	if string(data) != want {
		t.Errorf("got %s, expected %s", string(data), want)
	}
}
