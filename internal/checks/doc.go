// Package checks implements the ten on-page SEO checks.
//
// Each check inspects one concern of a parsed page (title hygiene, heading
// structure, image accessibility, and so on) and classifies what it finds
// as critical, warning, or passed. Checks are pure over the document: they
// read the page, return a payload plus findings, and never touch shared
// state, so any subset can run in any order or concurrently.
//
// Design decision: checks never return errors. A missing title or absent
// canonical link is a classification outcome, not a failure; only a fetch
// or parse problem aborts an audit, and that happens before any check runs.
//
// Selector strings are compiled once at package level with cascadia so
// repeated audits do not re-parse them.
package checks
