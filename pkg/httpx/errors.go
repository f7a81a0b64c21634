// Package httpx wraps outbound HTTP with per-call timeouts, bounded retry,
// and a circuit breaker per downstream dependency.
package httpx

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrServiceUnavailable indicates the downstream did not respond after
	// retries, or its circuit breaker is open
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrTimeout indicates the per-call timeout elapsed
	ErrTimeout = errors.New("request timed out")
)

// RemoteError is a non-2xx response from the downstream. The body is
// truncated for logging.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote returned status %d: %s", e.Status, e.Body)
}

// Temporary reports whether the status is worth retrying.
func (e *RemoteError) Temporary() bool {
	return e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}
