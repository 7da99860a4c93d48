package checks

import (
	"strings"

	"github.com/andybalholm/cascadia"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

var viewportMatcher = cascadia.MustCompile(`meta[name="viewport"]`)

// MobileCheck evaluates the viewport meta tag, the minimum signal of a
// mobile-ready page. No tag at all is critical; a tag whose content lacks
// width=device-width is only a warning.
type MobileCheck struct{}

// Name returns the check's key.
func (c *MobileCheck) Name() string { return model.CheckMobile }

// Run checks viewport presence and configuration.
func (c *MobileCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 1)

	viewport := doc.FindMatcher(viewportMatcher).First()
	if viewport.Length() == 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityCritical,
			Message:  "Missing viewport meta tag - page may not be mobile-friendly",
		})
		return model.MobileResult{}, findings
	}

	content, _ := viewport.Attr("content")
	if strings.Contains(content, "width=device-width") {
		findings = append(findings, model.Finding{
			Severity: model.SeverityPassed,
			Message:  "Viewport configured for mobile",
		})
	} else {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  "Viewport may not be optimally configured",
		})
	}

	return model.MobileResult{Viewport: true, Content: content}, findings
}

// Ensure MobileCheck implements Check.
var _ Check = (*MobileCheck)(nil)
