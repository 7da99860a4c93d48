package checks

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

var imgMatcher = cascadia.MustCompile("img")

// ImagesCheck evaluates image accessibility. An image with no alt
// attribute at all is critical (screen readers and crawlers get nothing);
// an alt attribute that is present but blank is only a warning, since it
// can be a legitimate marker for decorative images.
type ImagesCheck struct{}

// Name returns the check's key.
func (c *ImagesCheck) Name() string { return model.CheckImages }

// Run counts images by alt attribute state. A page without images records
// no finding at all.
func (c *ImagesCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 2)

	var total, missingAlt, emptyAlt int
	doc.FindMatcher(imgMatcher).Each(func(_ int, s *goquery.Selection) {
		total++
		alt, ok := s.Attr("alt")
		switch {
		case !ok:
			missingAlt++
		case strings.TrimSpace(alt) == "":
			emptyAlt++
		}
	})

	if missingAlt > 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityCritical,
			Message:  fmt.Sprintf("%d images missing alt attribute", missingAlt),
		})
	}
	if emptyAlt > 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("%d images have empty alt text", emptyAlt),
		})
	}
	if missingAlt == 0 && emptyAlt == 0 && total > 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityPassed,
			Message:  fmt.Sprintf("All %d images have alt text", total),
		})
	}

	return model.ImagesResult{Total: total, MissingAlt: missingAlt, EmptyAlt: emptyAlt}, findings
}

// Ensure ImagesCheck implements Check.
var _ Check = (*ImagesCheck)(nil)
