package checks

import (
	"fmt"
	"regexp"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// Open Graph tags live in the property attribute, Twitter Card tags in the
// name attribute. The two families are evaluated independently: a page can
// pass one and miss the other.
var (
	ogPattern      = regexp.MustCompile(`^og:`)
	twitterPattern = regexp.MustCompile(`^twitter:`)
)

// SocialCheck counts Open Graph and Twitter Card meta tags, the metadata
// that controls how shared links render on social platforms.
type SocialCheck struct{}

// Name returns the check's key.
func (c *SocialCheck) Name() string { return model.CheckSocial }

// Run counts og:* and twitter:* meta tags and classifies each family.
func (c *SocialCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 2)

	og := doc.FindAttrPattern("meta", "property", ogPattern).Length()
	twitter := doc.FindAttrPattern("meta", "name", twitterPattern).Length()

	if og == 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  "Missing Open Graph tags - social shares won't look good",
		})
	} else {
		findings = append(findings, model.Finding{
			Severity: model.SeverityPassed,
			Message:  fmt.Sprintf("Found %d Open Graph tags", og),
		})
	}

	if twitter == 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  "Missing Twitter Card tags",
		})
	} else {
		findings = append(findings, model.Finding{
			Severity: model.SeverityPassed,
			Message:  fmt.Sprintf("Found %d Twitter Card tags", twitter),
		})
	}

	return model.SocialResult{OpenGraph: og, Twitter: twitter}, findings
}

// Ensure SocialCheck implements Check.
var _ Check = (*SocialCheck)(nil)
