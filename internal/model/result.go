package model

// Check name keys. These identify each check's payload in
// AuditResult.Checks and never change between runs.
const (
	CheckTitle           = "title"
	CheckMetaDescription = "meta_description"
	CheckHeadings        = "headings"
	CheckImages          = "images"
	CheckLinks           = "links"
	CheckMobile          = "mobile"
	CheckPerformance     = "performance"
	CheckStructuredData  = "structured_data"
	CheckCanonical       = "canonical"
	CheckSocial          = "social"
)

// CheckOrder lists the check keys in their fixed execution order. Renderers
// use it to lay out per-check payloads deterministically.
var CheckOrder = []string{
	CheckTitle,
	CheckMetaDescription,
	CheckHeadings,
	CheckImages,
	CheckLinks,
	CheckMobile,
	CheckPerformance,
	CheckStructuredData,
	CheckCanonical,
	CheckSocial,
}

// CheckResult is implemented by every per-check payload type. Payloads are
// pure data keyed by check name in the AuditResult; they carry no behavior
// beyond this marker.
type CheckResult interface {
	checkResult()
}

// TitleResult is the payload of the page title check.
// Text is nil when the page has no title or only a whitespace one.
type TitleResult struct {
	Text   *string `json:"title"`
	Length int     `json:"length"`
}

// MetaDescriptionResult is the payload of the meta description check.
// Text is nil when the description meta tag is absent or its content empty.
type MetaDescriptionResult struct {
	Text   *string `json:"description"`
	Length int     `json:"length"`
}

// HeadingsResult maps each heading level (h1 through h6, always all six
// keys) to the trimmed texts of its elements in document order.
type HeadingsResult map[string][]string

// ImagesResult is the payload of the image accessibility check.
// MissingAlt counts images with no alt attribute at all; EmptyAlt counts
// images whose alt attribute is present but blank.
type ImagesResult struct {
	Total      int `json:"total"`
	MissingAlt int `json:"missing_alt"`
	EmptyAlt   int `json:"empty_alt"`
}

// LinksResult is the payload of the link classification check.
type LinksResult struct {
	Internal int `json:"internal"`
	External int `json:"external"`
	Unusual  int `json:"unusual"`
}

// MobileResult is the payload of the viewport check. Content holds the raw
// viewport content attribute and is empty when no viewport tag exists.
type MobileResult struct {
	Viewport bool   `json:"viewport"`
	Content  string `json:"content"`
}

// PerformanceResult is the payload of the performance hints check.
// HTMLSizeKB is the raw page size in kilobytes, rounded to one decimal.
type PerformanceResult struct {
	BlockingScripts int     `json:"blocking_scripts"`
	HTMLSizeKB      float64 `json:"html_size_kb"`
}

// StructuredDataResult is the payload of the JSON-LD structured data check.
type StructuredDataResult struct {
	Found bool `json:"found"`
	Count int  `json:"count"`
}

// CanonicalResult is the payload of the canonical link check. URL is the
// canonical href and is omitted when the element or attribute is absent.
type CanonicalResult struct {
	Found bool   `json:"found"`
	URL   string `json:"url,omitempty"`
}

// SocialResult is the payload of the social metadata check, counting
// Open Graph property tags and Twitter Card name tags independently.
type SocialResult struct {
	OpenGraph int `json:"og"`
	Twitter   int `json:"twitter"`
}

func (TitleResult) checkResult()           {}
func (MetaDescriptionResult) checkResult() {}
func (HeadingsResult) checkResult()        {}
func (ImagesResult) checkResult()          {}
func (LinksResult) checkResult()           {}
func (MobileResult) checkResult()          {}
func (PerformanceResult) checkResult()     {}
func (StructuredDataResult) checkResult()  {}
func (CanonicalResult) checkResult()       {}
func (SocialResult) checkResult()          {}

// AuditResult is the complete outcome of one audit invocation. It is
// created once per audit and never mutated afterward; nothing in it is
// shared across audits.
//
// When the fetch or parse fails the result holds only Success=false and a
// FindingSet with exactly one critical entry. URL and Checks stay zero so
// they are omitted from serialized output, and no per-check payload exists
// for renderers to read.
type AuditResult struct {
	// URL is the normalized target that was audited.
	URL string `json:"url,omitempty"`

	// Success reports whether the fetch and parse succeeded and the checks
	// ran. It does not mean the page scored well.
	Success bool `json:"success"`

	// Score is the aggregate SEO score in [0,100].
	Score int `json:"score"`

	// Checks maps each check name to its payload.
	Checks map[string]CheckResult `json:"checks,omitempty"`

	// Findings holds every recorded finding, bucketed by severity.
	Findings FindingSet `json:"findings"`
}
