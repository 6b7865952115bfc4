package crawler

import (
	"context"
	"errors"
	"net/http"
)

// Retry policy for the transport layer only; the pagination engine itself
// never re-issues a request.

func ShouldRetryError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

func ShouldRetryStatus(code int) bool {
	return code == http.StatusTooManyRequests || (code >= 500 && code <= 599)
}
