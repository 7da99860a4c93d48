package audit

import "testing"

// TestScore verifies the scoring formula: 100 minus 15 per critical
// finding and 5 per warning, clamped to the 0-100 range.
func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		critical int
		warning  int
		expected int
	}{
		{name: "clean page scores 100", critical: 0, warning: 0, expected: 100},
		{name: "one critical costs 15", critical: 1, warning: 0, expected: 85},
		{name: "one warning costs 5", critical: 0, warning: 1, expected: 95},
		{name: "mixed findings accumulate", critical: 2, warning: 3, expected: 55},
		{name: "penalties exactly reach zero", critical: 6, warning: 2, expected: 0},
		{name: "score never goes below zero", critical: 7, warning: 0, expected: 0},
		{name: "many warnings clamp to zero", critical: 0, warning: 25, expected: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Score(tt.critical, tt.warning)
			if got != tt.expected {
				t.Errorf("Score(%d, %d) = %d, expected %d", tt.critical, tt.warning, got, tt.expected)
			}
		})
	}
}

// TestScoreBounds sweeps a grid of counts and verifies that the score
// always stays inside [0, 100] and that 100 is reached only by a page
// with zero critical findings and zero warnings.
func TestScoreBounds(t *testing.T) {
	t.Parallel()

	for critical := 0; critical <= 30; critical++ {
		for warning := 0; warning <= 30; warning++ {
			got := Score(critical, warning)

			if got < 0 || got > 100 {
				t.Fatalf("Score(%d, %d) = %d, expected value in [0, 100]", critical, warning, got)
			}
			if got == 100 && (critical != 0 || warning != 0) {
				t.Fatalf("Score(%d, %d) = 100, expected perfect score only for zero findings", critical, warning)
			}
			if critical == 0 && warning == 0 && got != 100 {
				t.Fatalf("Score(0, 0) = %d, expected 100", got)
			}
		}
	}
}
