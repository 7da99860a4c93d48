package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFormat is returned when the config file specifies an unknown
// report format. Valid values are "text", "json", and "markdown".
var ErrInvalidFormat = errors.New("invalid report format")

// File represents the structure of the seoaudit.yaml configuration file.
// All fields are optional; unset fields leave the corresponding Config
// value untouched so that defaults and CLI flags still apply.
type File struct {
	// Targets are the page URLs to audit when none are given on the
	// command line. Useful for pinning a site's URL list in CI.
	Targets []string `yaml:"targets,omitempty"`

	// UserAgent overrides the User-Agent header sent with page requests.
	UserAgent string `yaml:"userAgent,omitempty"`

	// TimeoutSeconds overrides the HTTP timeout for fetching each page.
	// Expressed in whole seconds to keep the YAML readable.
	TimeoutSeconds int `yaml:"timeoutSeconds,omitempty"`

	// Concurrency overrides the number of concurrent audits when
	// processing multiple targets.
	Concurrency int `yaml:"concurrency,omitempty"`

	// MaxBodySize overrides the maximum response body size in bytes.
	MaxBodySize int64 `yaml:"maxBodySize,omitempty"`

	// Headers are additional HTTP headers to include in page requests.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Format selects the report output format: "text", "json", or "markdown".
	// An empty value keeps the default text format.
	Format string `yaml:"format,omitempty"`

	// Output is the report file path. When set, reports are written to
	// this file instead of stdout.
	Output string `yaml:"output,omitempty"`
}

// ApplyFile merges settings from a loaded configuration file into the Config.
// Only fields that are set in the file override the current values, so CLI
// flags applied after this call still win over the file.
//
// Design decision: The merge is "file fills gaps, flags override" rather
// than the reverse because a config file expresses a project's standing
// preferences while flags express a one-off invocation.
func (c *Config) ApplyFile(f *File) error {
	if f == nil {
		return nil
	}

	if len(f.Targets) > 0 && len(c.Targets) == 0 {
		c.Targets = f.Targets
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(f.TimeoutSeconds) * time.Second
	}
	if f.Concurrency > 0 {
		c.Concurrency = f.Concurrency
	}
	if f.MaxBodySize > 0 {
		c.MaxBodySize = f.MaxBodySize
	}
	if len(f.Headers) > 0 {
		if c.Headers == nil {
			c.Headers = make(map[string]string, len(f.Headers))
		}
		for k, v := range f.Headers {
			c.Headers[k] = v
		}
	}
	if f.Output != "" {
		c.ReportFile = f.Output
	}

	switch f.Format {
	case "", "text":
		// Text is the default; nothing to set.
	case "json":
		c.JSONReport = true
	case "markdown", "md":
		c.MarkdownReport = true
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, f.Format)
	}

	return nil
}
