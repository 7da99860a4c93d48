package config

import "errors"

// Validation errors returned by Config.Validate().
//
// Design decision: Validate() returns package-level sentinel errors
// instead of building fresh ones because:
//  1. Callers can branch on errors.Is() without string matching
//  2. The messages stay consistent across every validation site
//  3. None of them needs dynamic values, so errors.New() suffices
var (
	// ErrNoTarget reports that nothing was given to audit, neither as a
	// positional argument nor through the configuration file.
	ErrNoTarget = errors.New("no target specified: provide at least one URL to audit")

	// ErrInvalidTimeout reports a zero or negative fetch timeout, which
	// would fail every request before it starts.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency reports a zero or negative worker count,
	// under which no audit would ever run.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats reports that --json and --markdown were
	// both requested; a report renders in exactly one format.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize reports a negative response size cap. Zero
	// selects the default limit, so only negatives are rejected.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")
)
