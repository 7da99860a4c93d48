// Package log builds the auditor's loggers on top of standard slog:
// text or JSON output, a verbose switch, and automatic masking of
// credentials.
//
// # Why redaction
//
// Audits can target pages behind authentication, so fetch requests may
// carry Authorization or Cookie headers supplied through configuration.
// RedactingHandler masks such values before they reach any output,
// whether recognized by attribute name (cookie, token, api_key) or by
// value shape (JWTs, bearer and basic schemes, long opaque strings).
// The masking holds in verbose mode too, so debug logs pasted into bug
// reports or CI output do not leak credentials.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Info("request sent",
//	    "cookie", "session=abc123",  // logged as "***REDACTED***"
//	    "url", "https://example.com",
//	)
//
// The returned value is a plain *slog.Logger and can be installed with
// slog.SetDefault or passed to components directly.
package log
