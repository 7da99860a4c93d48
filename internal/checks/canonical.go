package checks

import (
	"github.com/andybalholm/cascadia"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// canonicalMatcher matches rel as a token list, so rel="canonical prefetch"
// still counts.
var canonicalMatcher = cascadia.MustCompile(`link[rel~="canonical"]`)

// CanonicalCheck looks for the canonical link element that tells search
// engines which URL is authoritative for this content. Missing canonical
// is a warning: it risks duplicate-content dilution but does not block
// indexing.
type CanonicalCheck struct{}

// Name returns the check's key.
func (c *CanonicalCheck) Name() string { return model.CheckCanonical }

// Run checks for a canonical link element.
func (c *CanonicalCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 1)

	canonical := doc.FindMatcher(canonicalMatcher).First()
	if canonical.Length() == 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  "No canonical URL set - may cause duplicate content issues",
		})
		return model.CanonicalResult{}, findings
	}

	href, _ := canonical.Attr("href")
	findings = append(findings, model.Finding{
		Severity: model.SeverityPassed,
		Message:  "Canonical URL present",
	})
	return model.CanonicalResult{Found: true, URL: href}, findings
}

// Ensure CanonicalCheck implements Check.
var _ Check = (*CanonicalCheck)(nil)
