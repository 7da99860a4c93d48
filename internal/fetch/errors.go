package fetch

import "errors"

// Fetch failure modes that callers may want to distinguish from plain
// transport errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Fetch(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrUnexpectedStatus is returned when the server answers with a
	// non-2xx status code. The wrapped message carries the exact status line.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrResponseTooLarge is returned when the response body exceeds the
	// configured maximum size. The body is discarded, never truncated.
	ErrResponseTooLarge = errors.New("response body too large")
)
