// Package fetch retrieves HTML documents for auditing.
//
// The fetcher performs exactly one HTTP GET per audited URL with an
// identifying User-Agent, a bounded timeout, and a capped body size.
// There are no retries and no crawling: one audit means one request.
//
// Design decision: Fetching is isolated in its own package rather than
// embedded in the audit orchestrator because:
//  1. The orchestrator can accept any page source through an interface
//  2. HTTP concerns (headers, limits, status handling) stay in one place
//  3. Tests can audit local fixtures without a network
package fetch
