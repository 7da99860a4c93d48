package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// Layout widths of the text report.
const (
	// headerRuleWidth is the width of the = rules framing the header.
	headerRuleWidth = 60

	// sectionRuleWidth is the width of the - rules under section headers.
	sectionRuleWidth = 40

	// summaryTitleLength caps the title snippet in the summary block.
	summaryTitleLength = 50
)

// TextWriter outputs human-readable text reports.
// This format is designed for terminal display: a framed header with the
// score, findings grouped by severity, and a short summary block.
//
// Design decision: We use plain text with ASCII rules rather than ANSI
// colors because:
//  1. It works in all terminals without compatibility issues
//  2. It's easy to pipe to files or other tools
//  3. Severity is already visible through the finding indicators
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the result in human-readable form.
//
// A failed audit prints only the failure findings: there are no payloads
// to summarize, so the header and summary blocks are skipped.
func (w *TextWriter) Write(result *model.AuditResult) (int, error) {
	var sb strings.Builder

	if !result.Success {
		w.writeFailure(&sb, result)
		return w.output.Write([]byte(sb.String()))
	}

	w.writeHeader(&sb, result)
	w.writeFindings(&sb, result)
	w.writeSummary(&sb, result)

	return w.output.Write([]byte(sb.String()))
}

// writeFailure writes the short failure form. A failed audit carries
// only critical findings.
func (w *TextWriter) writeFailure(sb *strings.Builder, result *model.AuditResult) {
	sb.WriteString("❌ Audit failed\n")
	for _, f := range result.Findings.Critical {
		sb.WriteString(fmt.Sprintf("  %s %s\n", severityIndicator(f.Severity), f.Message))
	}
}

// writeHeader writes the framed report header with URL and score.
func (w *TextWriter) writeHeader(sb *strings.Builder, result *model.AuditResult) {
	rule := strings.Repeat("=", headerRuleWidth)

	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n")
	sb.WriteString("🔍 SEO AUDIT REPORT\n")
	sb.WriteString(rule)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("URL: %s\n", result.URL))
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", result.Score))
	sb.WriteString(rule)
	sb.WriteString("\n\n")
}

// writeFindings writes the three severity sections, skipping empty ones.
func (w *TextWriter) writeFindings(sb *strings.Builder, result *model.AuditResult) {
	w.writeSection(sb, "❌ CRITICAL ISSUES", result.Findings.Critical)
	w.writeSection(sb, "⚠️  WARNINGS", result.Findings.Warning)
	w.writeSection(sb, "✅ PASSED CHECKS", result.Findings.Passed)
}

// writeSection writes one severity section with its findings.
func (w *TextWriter) writeSection(sb *strings.Builder, header string, findings []model.Finding) {
	if len(findings) == 0 {
		return
	}

	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", sectionRuleWidth))
	sb.WriteString("\n")
	for _, f := range findings {
		sb.WriteString(fmt.Sprintf("  %s %s\n", severityIndicator(f.Severity), f.Message))
	}
	sb.WriteString("\n")
}

// writeSummary writes the summary block from the check payloads.
func (w *TextWriter) writeSummary(sb *strings.Builder, result *model.AuditResult) {
	sb.WriteString("📊 SUMMARY\n")
	sb.WriteString(strings.Repeat("-", sectionRuleWidth))
	sb.WriteString("\n")

	if title, ok := result.Checks[model.CheckTitle].(model.TitleResult); ok && title.Text != nil {
		sb.WriteString(fmt.Sprintf("  Title: %s\n", titleSnippet(*title.Text)))
	} else {
		sb.WriteString("  Title: None\n")
	}

	if headings, ok := result.Checks[model.CheckHeadings].(model.HeadingsResult); ok {
		sb.WriteString(fmt.Sprintf("  H1 tags: %d\n", len(headings["h1"])))
	}

	if images, ok := result.Checks[model.CheckImages].(model.ImagesResult); ok {
		sb.WriteString(fmt.Sprintf("  Images: %d (%d missing alt)\n", images.Total, images.MissingAlt))
	}

	if links, ok := result.Checks[model.CheckLinks].(model.LinksResult); ok {
		sb.WriteString(fmt.Sprintf("  Links: %d internal, %d external\n", links.Internal, links.External))
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", headerRuleWidth))
	sb.WriteString("\n\n")
}

// titleSnippet returns at most summaryTitleLength characters of the
// title, always followed by an ellipsis.
func titleSnippet(title string) string {
	runes := []rune(title)
	if len(runes) > summaryTitleLength {
		runes = runes[:summaryTitleLength]
	}
	return string(runes) + "..."
}

// severityIndicator returns the visual prefix for a severity level.
// The warning indicator carries a trailing space because the emoji
// renders one cell narrower than the others in most terminals.
func severityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityCritical:
		return "❌"
	case model.SeverityWarning:
		return "⚠️ "
	case model.SeverityPassed:
		return "✅"
	default:
		return "?"
	}
}
