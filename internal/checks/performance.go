package checks

import (
	"fmt"
	"math"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// Thresholds beyond which performance hints fire. A handful of blocking
// scripts or inline styles is normal; past these counts they start to
// dominate render time.
const (
	maxBlockingScripts = 3
	maxInlineStyles    = 10
	maxHTMLSizeKB      = 100.0
)

var (
	externalScriptMatcher = cascadia.MustCompile("script[src]")
	inlineStyleMatcher    = cascadia.MustCompile("[style]")
)

// PerformanceCheck surfaces common render-speed problems visible from the
// markup alone: render-blocking external scripts, inline style sprawl, and
// oversized HTML. All of its findings are warnings; only the size rule has
// a passed case.
type PerformanceCheck struct{}

// Name returns the check's key.
func (c *PerformanceCheck) Name() string { return model.CheckPerformance }

// Run counts blocking scripts and inline styles and measures the raw size.
func (c *PerformanceCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 2)

	var blocking int
	doc.FindMatcher(externalScriptMatcher).Each(func(_ int, s *goquery.Selection) {
		_, hasAsync := s.Attr("async")
		_, hasDefer := s.Attr("defer")
		if !hasAsync && !hasDefer {
			blocking++
		}
	})
	if blocking > maxBlockingScripts {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("%d render-blocking scripts - consider async/defer", blocking),
		})
	}

	if inline := doc.FindMatcher(inlineStyleMatcher).Length(); inline > maxInlineStyles {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("%d inline styles - consider external CSS", inline),
		})
	}

	sizeKB := float64(doc.Size()) / 1024
	if sizeKB > maxHTMLSizeKB {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("Large HTML size (%.1fKB) - consider optimization", sizeKB),
		})
	} else {
		findings = append(findings, model.Finding{
			Severity: model.SeverityPassed,
			Message:  fmt.Sprintf("HTML size reasonable (%.1fKB)", sizeKB),
		})
	}

	payload := model.PerformanceResult{
		BlockingScripts: blocking,
		HTMLSizeKB:      math.Round(sizeKB*10) / 10,
	}
	return payload, findings
}

// Ensure PerformanceCheck implements Check.
var _ Check = (*PerformanceCheck)(nil)
