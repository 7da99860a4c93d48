package checks

import (
	"fmt"
	"unicode/utf8"

	"github.com/andybalholm/cascadia"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// Title length bounds in characters. Search results typically display
// 50-60 characters; anything shorter than 30 wastes the slot.
const (
	titleMinLength = 30
	titleMaxLength = 60
)

var titleMatcher = cascadia.MustCompile("title")

// TitleCheck evaluates the page <title> element. A missing or
// whitespace-only title is critical: it is the strongest single on-page
// ranking signal and the headline of the search snippet.
type TitleCheck struct{}

// Name returns the check's key.
func (c *TitleCheck) Name() string { return model.CheckTitle }

// Run checks presence and length of the first title element.
func (c *TitleCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 1)

	text := document.Text(doc.FindMatcher(titleMatcher))
	if text == "" {
		findings = append(findings, model.Finding{
			Severity: model.SeverityCritical,
			Message:  "Missing page title",
		})
		return model.TitleResult{}, findings
	}

	length := utf8.RuneCountInString(text)
	switch {
	case length < titleMinLength:
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("Title too short (%d chars) - aim for 50-60", length),
		})
	case length > titleMaxLength:
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("Title too long (%d chars) - may be truncated in search results", length),
		})
	default:
		findings = append(findings, model.Finding{
			Severity: model.SeverityPassed,
			Message:  fmt.Sprintf("Title length good (%d chars)", length),
		})
	}

	return model.TitleResult{Text: &text, Length: length}, findings
}

// Ensure TitleCheck implements Check.
var _ Check = (*TitleCheck)(nil)
