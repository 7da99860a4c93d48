package checks

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/andybalholm/cascadia"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// Meta description length bounds in characters. Snippets cut off around
// 160 characters; under 120 leaves the snippet half empty.
const (
	metaDescMinLength = 120
	metaDescMaxLength = 160
)

var metaDescMatcher = cascadia.MustCompile(`meta[name="description"]`)

// MetaDescriptionCheck evaluates the description meta tag, which supplies
// the search snippet text. Absence or an empty content attribute is
// critical; off-range length is a warning.
type MetaDescriptionCheck struct{}

// Name returns the check's key.
func (c *MetaDescriptionCheck) Name() string { return model.CheckMetaDescription }

// Run checks presence and length of the meta description content.
func (c *MetaDescriptionCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 1)

	content, _ := doc.FindMatcher(metaDescMatcher).First().Attr("content")
	text := strings.TrimSpace(content)
	if text == "" {
		findings = append(findings, model.Finding{
			Severity: model.SeverityCritical,
			Message:  "Missing meta description",
		})
		return model.MetaDescriptionResult{}, findings
	}

	length := utf8.RuneCountInString(text)
	switch {
	case length < metaDescMinLength:
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("Meta description too short (%d chars) - aim for 150-160", length),
		})
	case length > metaDescMaxLength:
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("Meta description too long (%d chars) - will be truncated", length),
		})
	default:
		findings = append(findings, model.Finding{
			Severity: model.SeverityPassed,
			Message:  fmt.Sprintf("Meta description length good (%d chars)", length),
		})
	}

	return model.MetaDescriptionResult{Text: &text, Length: length}, findings
}

// Ensure MetaDescriptionCheck implements Check.
var _ Check = (*MetaDescriptionCheck)(nil)
