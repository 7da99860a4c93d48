package checks

import (
	"testing"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// mustDocument parses markup into a Document or fails the test.
func mustDocument(t *testing.T, pageURL, markup string) *document.Document {
	t.Helper()
	doc, err := document.New(pageURL, []byte(markup))
	if err != nil {
		t.Fatalf("failed to build document: %v", err)
	}
	return doc
}

// severityCount counts findings with the given severity.
func severityCount(findings []model.Finding, severity model.Severity) int {
	count := 0
	for _, f := range findings {
		if f.Severity == severity {
			count++
		}
	}
	return count
}

// hasMessage reports whether any finding carries the exact message.
func hasMessage(findings []model.Finding, message string) bool {
	for _, f := range findings {
		if f.Message == message {
			return true
		}
	}
	return false
}

// TestAllMatchesCheckOrder tests that the registry returns the checks in
// the same fixed order the result model declares.
func TestAllMatchesCheckOrder(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) != len(model.CheckOrder) {
		t.Fatalf("got %d checks, expected %d", len(all), len(model.CheckOrder))
	}

	for i, check := range all {
		if check.Name() != model.CheckOrder[i] {
			t.Errorf("check %d: got %q, expected %q", i, check.Name(), model.CheckOrder[i])
		}
	}
}

// TestChecksNeverFindingsNil tests that every check returns a payload and a
// non-nil findings slice even on an empty page.
func TestChecksNeverFindingsNil(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, "https://example.com", "<html></html>")
	for _, check := range All() {
		payload, findings := check.Run(doc)
		if payload == nil {
			t.Errorf("%s: payload is nil", check.Name())
		}
		if findings == nil {
			t.Errorf("%s: findings slice is nil", check.Name())
		}
	}
}
