// Package audit orchestrates a full page audit: fetch, parse, checks,
// score, result assembly.
//
// # Architecture
//
// Auditor coordinates the collaborators without owning their logic: the
// fetcher retrieves raw HTML, the document package parses it, each check
// classifies one concern, and the scorer reduces the accumulated findings
// to a single number. Checks run concurrently but their findings merge in
// a fixed order, so a given page always produces the same result.
//
// # Usage
//
//	auditor := audit.New()
//	result, err := auditor.Run(ctx, "https://example.com")
//	if err != nil {
//		// context cancelled
//	}
//	if !result.Success {
//		// the page could not be fetched; the result carries exactly
//		// one critical finding describing why
//	}
package audit
