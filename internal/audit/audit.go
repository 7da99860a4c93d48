package audit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Bandit-AI/seo-auditor/internal/checks"
	"github.com/Bandit-AI/seo-auditor/internal/document"
	"github.com/Bandit-AI/seo-auditor/internal/fetch"
	"github.com/Bandit-AI/seo-auditor/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the maximum number of targets audited in
// parallel by RunAll when no other limit is configured.
const DefaultConcurrency = 4

// Fetcher retrieves the raw HTML of one page.
//
// Design decision: The auditor consumes an interface rather than
// *fetch.Client directly because:
//  1. Tests can audit in-memory fixtures without a network
//  2. Callers can wrap the fetcher (caching, recording) without
//     touching the audit logic
//  3. The audit package owns what it needs, not how pages arrive
type Fetcher interface {
	// Fetch returns the body of the page at url, or an error describing
	// why the page could not be retrieved.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// The production fetcher must keep satisfying the interface.
var _ Fetcher = (*fetch.Client)(nil)

// Auditor runs the audit pipeline for one or more pages: fetch, parse,
// checks, score. A single Auditor is safe for concurrent use; all
// per-run state lives in the run itself.
type Auditor struct {
	// fetcher retrieves page bodies. Defaults to a fetch.Client with
	// standard options.
	fetcher Fetcher

	// checks is the ordered list of checks executed per page.
	checks []checks.Check

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// concurrency bounds parallel target audits in RunAll.
	concurrency int
}

// Option is a function that configures an Auditor.
// This follows the functional options pattern for clean API design.
type Option func(*Auditor)

// WithFetcher sets the page fetcher. If not set, a default fetch.Client
// is created.
func WithFetcher(f Fetcher) Option {
	return func(a *Auditor) {
		a.fetcher = f
	}
}

// WithLogger sets a custom logger for the auditor.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Auditor) {
		a.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent target audits
// in RunAll. Non-positive values keep the default.
func WithConcurrency(n int) Option {
	return func(a *Auditor) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithChecks replaces the default check list. Useful for tests and for
// callers that audit a subset of concerns.
func WithChecks(cs ...checks.Check) Option {
	return func(a *Auditor) {
		if len(cs) > 0 {
			a.checks = cs
		}
	}
}

// New creates an Auditor with the given options applied on top of the
// defaults: the full check list, a standard fetcher, and slog.Default().
func New(opts ...Option) *Auditor {
	a := &Auditor{
		checks:      checks.All(),
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.fetcher == nil {
		a.fetcher = fetch.NewClient()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// NormalizeTarget prepends https:// to targets that carry no scheme, so
// "example.com" audits the same page a browser address bar would open.
func NormalizeTarget(target string) string {
	if !strings.HasPrefix(target, "http") {
		return "https://" + target
	}
	return target
}

// checkOutcome is the private result slot one check writes during a run.
type checkOutcome struct {
	payload  model.CheckResult
	findings []model.Finding
}

// Run audits a single target and returns its result.
//
// A page that cannot be fetched or parsed is not an error: the result
// comes back with Success=false and exactly one critical finding, and no
// checks run. The returned error is non-nil only when ctx is cancelled.
func (a *Auditor) Run(ctx context.Context, target string) (*model.AuditResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	url := NormalizeTarget(target)

	a.logger.Info("starting audit", "url", url)

	body, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		a.logger.Warn("fetch failed", "url", url, "error", err)
		return failedResult(err), nil
	}

	doc, err := document.New(url, body)
	if err != nil {
		a.logger.Warn("parse failed", "url", url, "error", err)
		return failedResult(err), nil
	}

	// Each check writes only its own slot, and the accumulator below has
	// a single writer, so the merge needs no locking and the output is
	// deterministic for a fixed page.
	outcomes := make([]checkOutcome, len(a.checks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chk := range a.checks {
		i, chk := i, chk
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			payload, findings := chk.Run(doc)
			outcomes[i] = checkOutcome{payload: payload, findings: findings}

			a.logger.Debug("check completed",
				"check", chk.Name(),
				"url", url,
				"findings", len(findings),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	acc := model.NewAccumulator()
	results := make(map[string]model.CheckResult, len(a.checks))
	for i, chk := range a.checks {
		results[chk.Name()] = outcomes[i].payload
		for _, f := range outcomes[i].findings {
			acc.Record(f.Severity, f.Message)
		}
	}

	score := Score(acc.CriticalCount(), acc.WarningCount())

	a.logger.Info("audit complete",
		"url", url,
		"score", score,
		"critical", acc.CriticalCount(),
		"warning", acc.WarningCount(),
		"passed", acc.PassedCount(),
	)

	return &model.AuditResult{
		URL:      url,
		Success:  true,
		Score:    score,
		Checks:   results,
		Findings: acc.Snapshot(),
	}, nil
}

// RunAll audits several targets concurrently, at most concurrency at a
// time. Each target gets its own document, accumulator, and result, and
// one unreachable target never stops the others. Results come back in
// input order.
func (a *Auditor) RunAll(ctx context.Context, targets []string) ([]*model.AuditResult, error) {
	a.logger.Info("starting batch audit",
		"targets", len(targets),
		"concurrency", a.concurrency,
	)

	// Pre-allocate so each audit writes its own index and order is kept.
	results := make([]*model.AuditResult, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			result, err := a.Run(gctx, target)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// failedResult encodes a fetch or parse failure as an audit outcome:
// exactly one critical finding, score zero, and no check payloads.
func failedResult(err error) *model.AuditResult {
	acc := model.NewAccumulator()
	acc.Record(model.SeverityCritical, fmt.Sprintf("Could not fetch page: %v", err))

	return &model.AuditResult{
		Success:  false,
		Findings: acc.Snapshot(),
	}
}
