package checks

import (
	"fmt"

	"github.com/andybalholm/cascadia"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

var jsonLDMatcher = cascadia.MustCompile(`script[type="application/ld+json"]`)

// StructuredDataCheck counts JSON-LD blocks. Structured data feeds rich
// results; its absence is a warning, never critical.
type StructuredDataCheck struct{}

// Name returns the check's key.
func (c *StructuredDataCheck) Name() string { return model.CheckStructuredData }

// Run counts application/ld+json script blocks.
func (c *StructuredDataCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 1)

	count := doc.FindMatcher(jsonLDMatcher).Length()
	if count == 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  "No structured data (JSON-LD) found - consider adding for rich results",
		})
		return model.StructuredDataResult{}, findings
	}

	findings = append(findings, model.Finding{
		Severity: model.SeverityPassed,
		Message:  fmt.Sprintf("Found %d structured data blocks", count),
	})
	return model.StructuredDataResult{Found: true, Count: count}, findings
}

// Ensure StructuredDataCheck implements Check.
var _ Check = (*StructuredDataCheck)(nil)
