package checks

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// headingLevels are the tags collected into the payload, in level order.
var headingLevels = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// HeadingsCheck evaluates the heading structure. Exactly one H1 is the
// contract search engines expect; the hierarchy rule only looks one level
// deep (H3 without any H2), deeper gaps are left alone.
type HeadingsCheck struct{}

// Name returns the check's key.
func (c *HeadingsCheck) Name() string { return model.CheckHeadings }

// Run collects all heading texts and classifies the H1 count and the
// H2/H3 hierarchy.
func (c *HeadingsCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 2)

	payload := make(model.HeadingsResult, len(headingLevels))
	for _, level := range headingLevels {
		texts := make([]string, 0)
		doc.Find(level).Each(func(_ int, s *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(s.Text()))
		})
		payload[level] = texts
	}

	switch h1Count := len(payload["h1"]); {
	case h1Count == 0:
		findings = append(findings, model.Finding{
			Severity: model.SeverityCritical,
			Message:  "Missing H1 heading",
		})
	case h1Count > 1:
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("Multiple H1 tags (%d) - use only one per page", h1Count),
		})
	default:
		findings = append(findings, model.Finding{
			Severity: model.SeverityPassed,
			Message:  "Single H1 heading present",
		})
	}

	if len(payload["h3"]) > 0 && len(payload["h2"]) == 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  "H3 present without H2 - maintain heading hierarchy",
		})
	}

	return payload, findings
}

// Ensure HeadingsCheck implements Check.
var _ Check = (*HeadingsCheck)(nil)
