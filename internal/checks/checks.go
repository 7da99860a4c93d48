package checks

import (
	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// Check defines the interface for individual SEO checks.
// Each check focuses on a single on-page concern.
//
// Design decision: We use an interface rather than concrete types because:
//  1. The orchestrator can run any slice of checks without knowing them
//  2. Tests can substitute fake checks to exercise merge behavior
//  3. New checks slot in without touching the audit loop
type Check interface {
	// Name returns the check's key as used in the audit result.
	Name() string

	// Run inspects the document and returns the check's payload together
	// with its classified findings. Run never fails: absent elements are
	// classification outcomes, not errors.
	Run(doc *document.Document) (model.CheckResult, []model.Finding)
}

// All returns the built-in checks in their fixed execution order. The
// orchestrator merges findings in this order, so reports render identically
// from run to run regardless of how the checks are scheduled.
func All() []Check {
	return []Check{
		&TitleCheck{},
		&MetaDescriptionCheck{},
		&HeadingsCheck{},
		&ImagesCheck{},
		&LinksCheck{},
		&MobileCheck{},
		&PerformanceCheck{},
		&StructuredDataCheck{},
		&CanonicalCheck{},
		&SocialCheck{},
	}
}
