package checks

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

var anchorMatcher = cascadia.MustCompile("a[href]")

// LinksCheck classifies every anchor href into internal, external, or
// unusual format. Pure in-page fragments and javascript: pseudo-URLs are
// skipped outright; mailto: and tel: links are recognized and not counted
// against any bucket.
//
// Classification is a substring heuristic, not full URL-authority parsing:
// a link counts as internal when it is root-relative, starts with the
// page's own URL, or contains the page's host anywhere in the href. That
// over-matches hrefs that merely mention the host (for example in a query
// parameter), which is an accepted approximation.
type LinksCheck struct{}

// Name returns the check's key.
func (c *LinksCheck) Name() string { return model.CheckLinks }

// Run classifies all anchors and always records a summary finding.
func (c *LinksCheck) Run(doc *document.Document) (model.CheckResult, []model.Finding) {
	findings := make([]model.Finding, 0, 2)

	var internal, external, unusual int
	doc.FindMatcher(anchorMatcher).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		switch classifyHref(href, doc.URL(), doc.Host()) {
		case linkInternal:
			internal++
		case linkExternal:
			external++
		case linkUnusual:
			unusual++
		}
	})

	if unusual > 0 {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("%d links with unusual format", unusual),
		})
	}
	findings = append(findings, model.Finding{
		Severity: model.SeverityPassed,
		Message:  fmt.Sprintf("Found %d internal, %d external links", internal, external),
	})

	return model.LinksResult{Internal: internal, External: external, Unusual: unusual}, findings
}

// linkKind is the classification bucket of one href.
type linkKind int

const (
	linkSkipped linkKind = iota
	linkInternal
	linkExternal
	linkUnusual
)

// classifyHref buckets a single href against the page URL and host.
func classifyHref(href, pageURL, host string) linkKind {
	switch {
	case strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:"):
		return linkSkipped
	case strings.HasPrefix(href, "/") || strings.HasPrefix(href, pageURL) || strings.Contains(href, host):
		return linkInternal
	case strings.HasPrefix(href, "http"):
		return linkExternal
	case strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:"):
		return linkSkipped
	default:
		return linkUnusual
	}
}

// Ensure LinksCheck implements Check.
var _ Check = (*LinksCheck)(nil)
