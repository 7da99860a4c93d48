package checks

import (
	"strings"
	"testing"

	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// TestTitleCheckMissing tests that an absent or empty title is critical
// with a null payload.
func TestTitleCheckMissing(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		markup string
	}{
		{"no title element", `<html><head></head><body></body></html>`},
		{"empty title", `<html><head><title></title></head></html>`},
		{"whitespace title", "<html><head><title> \n\t </title></head></html>"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := mustDocument(t, "https://example.com", tc.markup)
			payload, findings := (&TitleCheck{}).Run(doc)

			if !hasMessage(findings, "Missing page title") {
				t.Errorf("expected missing title finding, got %+v", findings)
			}
			if got := severityCount(findings, model.SeverityCritical); got != 1 {
				t.Errorf("got %d critical findings, expected 1", got)
			}

			result, ok := payload.(model.TitleResult)
			if !ok {
				t.Fatalf("payload has type %T, expected TitleResult", payload)
			}
			if result.Text != nil {
				t.Errorf("got text %q, expected nil", *result.Text)
			}
			if result.Length != 0 {
				t.Errorf("got length %d, expected 0", result.Length)
			}
		})
	}
}

// TestTitleCheckLength tests the length classification boundaries.
func TestTitleCheckLength(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		length   int
		severity model.Severity
	}{
		{"too short", 29, model.SeverityWarning},
		{"lower bound", 30, model.SeverityPassed},
		{"typical good title", 45, model.SeverityPassed},
		{"upper bound", 60, model.SeverityPassed},
		{"too long", 61, model.SeverityWarning},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			title := strings.Repeat("a", tc.length)
			doc := mustDocument(t, "https://example.com",
				"<html><head><title>"+title+"</title></head></html>")
			payload, findings := (&TitleCheck{}).Run(doc)

			if got := len(findings); got != 1 {
				t.Fatalf("got %d findings, expected 1", got)
			}
			if findings[0].Severity != tc.severity {
				t.Errorf("got severity %s, expected %s", findings[0].Severity, tc.severity)
			}
			if got := severityCount(findings, model.SeverityCritical); got != 0 {
				t.Errorf("got %d critical findings, expected 0", got)
			}

			result := payload.(model.TitleResult)
			if result.Text == nil || *result.Text != title {
				t.Errorf("payload text does not round-trip the title")
			}
			if result.Length != tc.length {
				t.Errorf("got length %d, expected %d", result.Length, tc.length)
			}
		})
	}
}

// TestTitleCheckTrimsAndCountsRunes tests that length counts characters of
// the trimmed text, not bytes.
func TestTitleCheckTrimsAndCountsRunes(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, "https://example.com",
		"<html><head><title>  Ünïcödé Tîtlé Wïth Äccents Èvérywhère Nøw  </title></head></html>")
	payload, _ := (&TitleCheck{}).Run(doc)

	result := payload.(model.TitleResult)
	if result.Text == nil {
		t.Fatal("expected a title text")
	}
	if strings.HasPrefix(*result.Text, " ") || strings.HasSuffix(*result.Text, " ") {
		t.Errorf("title text not trimmed: %q", *result.Text)
	}
	if result.Length >= len(*result.Text) {
		t.Errorf("length %d should count runes, not the %d bytes", result.Length, len(*result.Text))
	}
}
