package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for documentation, issues, and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the result in Markdown format.
func (w *MarkdownWriter) Write(result *model.AuditResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeSummary(md, result)
	if result.Success {
		w.writeChecks(md, result)
	}
	w.writeFindings(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and the audit info table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.AuditResult) {
	md.H1("SEO Audit Report")
	md.PlainText("")

	url := "-"
	if result.URL != "" {
		url = "`" + result.URL + "`"
	}

	status := "✅ Complete"
	if !result.Success {
		status = "❌ Failed"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", url},
			{"Status", status},
			{"Score", fmt.Sprintf("%d/100", result.Score)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the severity summary table, distribution chart,
// and an alert matching the worst severity present.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, result *model.AuditResult) {
	md.H2("Severity Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 Critical", strconv.Itoa(len(result.Findings.Critical))},
			{"🟡 Warning", strconv.Itoa(len(result.Findings.Warning))},
			{"🟢 Passed", strconv.Itoa(len(result.Findings.Passed))},
			{"**Total**", "**" + strconv.Itoa(result.Findings.Total()) + "**"},
		},
	})
	md.PlainText("")

	if result.Findings.Total() > 0 {
		w.writePieChart(md, result)
	}

	w.writeAlert(md, result)
}

// writePieChart writes a mermaid pie chart of the severity distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, result *model.AuditResult) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Finding Severity Distribution"),
		piechart.WithShowData(true),
	)

	if n := len(result.Findings.Critical); n > 0 {
		chart.LabelAndIntValue("Critical", uint64(n))
	}
	if n := len(result.Findings.Warning); n > 0 {
		chart.LabelAndIntValue("Warning", uint64(n))
	}
	if n := len(result.Findings.Passed); n > 0 {
		chart.LabelAndIntValue("Passed", uint64(n))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert block matching the audit outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.AuditResult) {
	switch {
	case !result.Success && len(result.Findings.Critical) > 0:
		md.Cautionf("Audit failed: %s", result.Findings.Critical[0].Message)
	case !result.Success:
		md.Caution("Audit failed.")
	case len(result.Findings.Critical) > 0:
		md.Cautionf(
			"%d critical issue(s) found. Fix these first - they carry the heaviest score penalty.",
			len(result.Findings.Critical),
		)
	case len(result.Findings.Warning) > 0:
		md.Warningf(
			"%d warning(s) found. Addressing them will lift the score.",
			len(result.Findings.Warning),
		)
	default:
		md.Tip("No SEO issues detected.")
	}
	md.PlainText("")
}

// writeChecks writes the per-check result table in fixed check order.
func (w *MarkdownWriter) writeChecks(md *markdown.Markdown, result *model.AuditResult) {
	md.H2("Check Results")
	md.PlainText("")

	rows := make([][]string, 0, len(model.CheckOrder))
	for _, name := range model.CheckOrder {
		payload, ok := result.Checks[name]
		if !ok {
			continue
		}
		rows = append(rows, []string{checkTitle(name), summarizePayload(payload)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Check", "Result"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFindings writes the severity sections with their messages.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, result *model.AuditResult) {
	md.H2("Findings")
	md.PlainText("")

	if result.Findings.Total() == 0 {
		md.PlainText("No findings recorded.")
		md.PlainText("")
		return
	}

	sections := []struct {
		header   string
		findings []model.Finding
	}{
		{"### 🔴 Critical Issues", result.Findings.Critical},
		{"### 🟡 Warnings", result.Findings.Warning},
		{"### 🟢 Passed Checks", result.Findings.Passed},
	}

	for _, section := range sections {
		if len(section.findings) == 0 {
			continue
		}

		md.PlainText(section.header)
		md.PlainText("")

		messages := make([]string, len(section.findings))
		for i, f := range section.findings {
			messages[i] = f.Message
		}
		md.BulletList(messages...)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [seo-auditor](https://github.com/Bandit-AI/seo-auditor)*")
}

// checkTitle renders a check key as a human heading, so
// "meta_description" becomes "Meta Description".
//
// The caser is created per call: a cases.Caser carries internal state
// and must not be shared between goroutines.
func checkTitle(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// summarizePayload renders one check payload as a short table cell.
func summarizePayload(payload model.CheckResult) string {
	switch p := payload.(type) {
	case model.TitleResult:
		if p.Text == nil {
			return "missing"
		}
		return fmt.Sprintf("%s (%d chars)", truncateString(*p.Text, 50), p.Length)
	case model.MetaDescriptionResult:
		if p.Text == nil {
			return "missing"
		}
		return fmt.Sprintf("%d chars", p.Length)
	case model.HeadingsResult:
		parts := make([]string, 0, len(p))
		for _, level := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
			if n := len(p[level]); n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToUpper(level)))
			}
		}
		if len(parts) == 0 {
			return "none"
		}
		return strings.Join(parts, ", ")
	case model.ImagesResult:
		return fmt.Sprintf("%d total, %d missing alt, %d empty alt", p.Total, p.MissingAlt, p.EmptyAlt)
	case model.LinksResult:
		return fmt.Sprintf("%d internal, %d external, %d unusual", p.Internal, p.External, p.Unusual)
	case model.MobileResult:
		if !p.Viewport {
			return "viewport missing"
		}
		return "viewport `" + p.Content + "`"
	case model.PerformanceResult:
		return fmt.Sprintf("%d blocking scripts, %.1fKB HTML", p.BlockingScripts, p.HTMLSizeKB)
	case model.StructuredDataResult:
		if !p.Found {
			return "none"
		}
		return fmt.Sprintf("%d JSON-LD block(s)", p.Count)
	case model.CanonicalResult:
		if !p.Found {
			return "not set"
		}
		return "`" + p.URL + "`"
	case model.SocialResult:
		return fmt.Sprintf("%d Open Graph, %d Twitter", p.OpenGraph, p.Twitter)
	default:
		return fmt.Sprintf("%v", payload)
	}
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
