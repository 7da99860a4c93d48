// Package report renders audit results for people and tools.
//
// This package contains writers for different output formats:
//   - TextWriter: human-readable text for terminal display
//   - JSONWriter: structured JSON for tool integration
//   - MarkdownWriter: Markdown for documentation and sharing
//
// Design decision: Rendering is separated from the result types in the
// model package so new output formats never touch the core data
// structures. Severity decoration (icons, section headers) lives entirely
// here; the model stores plain messages.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-destination output.
package report
