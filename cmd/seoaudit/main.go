// Package main provides the entry point for the seoaudit CLI.
//
// seoaudit analyzes web pages for common SEO issues and produces scored
// reports with actionable findings.
//
// Usage:
//
//	seoaudit audit <url>
//	seoaudit audit --json <url>
//
// See --help for all available options.
package main

// main is the entry point for seoaudit.
func main() {
	Execute()
}
