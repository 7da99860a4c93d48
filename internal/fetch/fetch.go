package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Defaults applied by NewClient. All of them can be overridden with
// options or through the configuration file.
const (
	// DefaultTimeout bounds the whole request, from dialing to the last
	// body byte. Pages slower than this are reported as failures.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodySize limits the response body size to prevent memory
	// exhaustion. 10MB is far beyond any reasonable HTML page.
	DefaultMaxBodySize = 10 * 1024 * 1024

	// DefaultUserAgent identifies the auditor to the audited server.
	// An auditor announces itself honestly so site owners can recognize
	// the traffic in their logs.
	DefaultUserAgent = "SEO-Auditor/1.0 (+https://github.com/Bandit-AI/seo-auditor)"
)

// Client fetches a single HTML page over HTTP or HTTPS.
// It issues exactly one GET per audited URL: no retries, no caching,
// no crawling beyond the page itself.
//
// Design decision: We build the http.Client internally rather than
// accepting one from the caller because:
//  1. No proxy or custom transport layering is required
//  2. The timeout option maps directly onto http.Client.Timeout
//  3. Tests can use httptest servers without touching the transport
type Client struct {
	// client is the underlying HTTP client. Redirects follow the
	// standard library default of at most ten hops.
	client *http.Client

	// userAgent is the User-Agent header sent with every request.
	userAgent string

	// headers holds extra header key/value pairs set on every request,
	// for audits that need cookies, auth tokens, or language hints.
	headers map[string]string

	// maxBodySize limits the response body size in bytes.
	maxBodySize int64

	// timeout is the per-request timeout.
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values keep
// the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom User-Agent header.
//
// Design decision: We allow customizing the User-Agent because:
//  1. Some sites serve different markup based on User-Agent
//  2. Site owners may require an agreed identifier for audit traffic
//  3. The default should stay an honest auditor string, not a browser
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHeaders sets extra headers sent with every request. The map is
// copied, so later mutation by the caller does not affect the client.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		if len(headers) == 0 {
			return
		}
		c.headers = make(map[string]string, len(headers))
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
// Non-positive values keep the default.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}

// NewClient creates a page fetcher with the given options applied on
// top of the defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
		timeout:     DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{Timeout: c.timeout}

	return c
}

// Fetch retrieves the page at target and returns the raw HTML body.
//
// Any transport error, non-2xx status, timeout, or oversized body comes
// back as a single descriptive error; Fetch never returns partial
// content. The audit layer turns that error into one critical finding.
func (c *Client) Fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	// Read one byte past the limit so an oversized body surfaces as an
	// error instead of a silently truncated document.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrResponseTooLarge, c.maxBodySize)
	}

	return body, nil
}
