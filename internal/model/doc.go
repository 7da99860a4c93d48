// Package model defines the core data structures used throughout seo-auditor.
//
// This package contains the following main types:
//   - Severity: Classification level of a single finding
//   - Finding: One classified observation produced by a check
//   - Accumulator: The per-audit, append-only finding store
//   - AuditResult: The complete, immutable outcome of one audit
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (checks, audit, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
