package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Defaults, chosen so that a bare `seoaudit audit <url>` behaves
// sensibly without a configuration file or extra flags.
const (
	// DefaultTimeout is set to 10 seconds because an audit fetches exactly
	// one page over the clearnet. Pages that take longer than this to
	// respond have a performance problem the report should surface as a
	// failure rather than wait out.
	DefaultTimeout = 10 * time.Second

	// DefaultConcurrency of 4 concurrent audits balances throughput with
	// politeness when auditing multiple URLs. Each audit issues a single
	// HTTP request, so higher values mainly matter for large target lists.
	DefaultConcurrency = 4

	// AppName names the tool in XDG directory paths.
	AppName = "seoaudit"

	// DefaultUserAgent identifies the auditor in HTTP requests.
	// Using a descriptive User-Agent is good practice and allows site
	// operators to identify audit traffic in their logs.
	DefaultUserAgent = "SEO-Auditor/1.0 (+https://github.com/Bandit-AI/seo-auditor)"

	// DefaultMaxBodySize caps how much of a response body is read.
	// 10MB is generous for HTML documents while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// Config carries every auditor option. It is populated from CLI flags
// and an optional YAML file, then handed down by injection; nothing
// reads configuration from global state.
//
// Design decision: One flat struct rather than nested FetchConfig and
// ReportConfig pieces. The option count stays small enough to scan at
// a glance, and splitting would only add indirection. Revisit if the
// surface grows past that point.
type Config struct {
	// Targets is the list of page URLs to audit.
	// Each target is audited independently with its own HTTP fetch.
	// URLs without a scheme are normalized to https:// before fetching.
	Targets []string

	// UserAgent is sent as the User-Agent header on every page request
	// so site operators can recognize audit traffic.
	UserAgent string

	// Timeout bounds the whole fetch of one page, connection through
	// body read.
	Timeout time.Duration

	// Concurrency is the number of concurrent audits when processing
	// multiple targets. Each audit issues exactly one HTTP request.
	Concurrency int

	// MaxBodySize caps the response body in bytes. Oversized responses
	// fail the audit rather than silently truncating the document.
	// Zero selects DefaultMaxBodySize.
	MaxBodySize int64

	// Headers are additional HTTP headers to include in page requests.
	// Useful for auditing pages behind authentication or custom routing.
	Headers map[string]string

	// JSONReport selects machine-readable JSON output. At most one of
	// JSONReport and MarkdownReport may be set; with neither, the report
	// renders as human-readable text.
	JSONReport bool

	// MarkdownReport selects GitHub Flavored Markdown output with
	// tables, alerts, and a severity pie chart. At most one of
	// JSONReport and MarkdownReport may be set.
	MarkdownReport bool

	// ReportFile, when set, receives the rendered report instead of
	// stdout. Missing parent directories are created.
	ReportFile string

	// ConfigFilePath points at an explicit configuration file. When
	// empty, seoaudit.yaml is searched for in the current directory and
	// then the XDG config directory.
	ConfigFilePath string

	// Verbose lowers the log level to slog.LevelDebug. Otherwise only
	// warnings and errors are logged.
	Verbose bool
}

// NewConfig returns a Config preloaded with the package defaults.
// Callers override individual fields afterwards.
//
// Design decision: A constructor instead of zero values, because the
// useful defaults (timeout, concurrency, body cap) are non-zero, and
// the function doubles as the list of what those defaults are.
func NewConfig() *Config {
	return &Config{
		UserAgent:   DefaultUserAgent,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// XDGConfigDir returns the per-user configuration directory following
// the XDG Base Directory Specification.
// Linux: ~/.config/seoaudit
// macOS: ~/Library/Application Support/seoaudit
// Windows: %APPDATA%\seoaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate reports the first problem with the configuration as one of
// the package sentinel errors.
//
// Design decision: Validation happens here, once, right after CLI
// parsing, instead of at each point of use. Failing before any fetch
// starts gives the user one clear message. Only the first error is
// returned; fixing it usually changes the picture for the rest.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	return nil
}
