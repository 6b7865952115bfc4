package crawler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

type ErrorKind string

const (
	ErrorKindUnknown         ErrorKind = "unknown"
	ErrorKindTransport       ErrorKind = "transport"
	ErrorKindHTTP            ErrorKind = "http"
	ErrorKindRateLimited     ErrorKind = "rate_limited"
	ErrorKindForbidden       ErrorKind = "forbidden"
	ErrorKindBootstrap       ErrorKind = "bootstrap"
	ErrorKindUnexpectedShape ErrorKind = "unexpected_shape"
	ErrorKindInvalidInput    ErrorKind = "invalid_input"
	ErrorKindCanceled        ErrorKind = "canceled"
	ErrorKindTimeout         ErrorKind = "timeout"
)

type Error struct {
	Kind     ErrorKind
	Platform string
	URL      string
	Msg      string
	Err      error
}

func (e Error) Error() string {
	base := e.Msg
	if base == "" && e.Err != nil {
		base = e.Err.Error()
	}
	if base == "" {
		base = string(e.Kind)
	}
	if e.Platform != "" && e.URL != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Platform, base, e.URL)
	}
	if e.Platform != "" {
		return fmt.Sprintf("%s: %s", e.Platform, base)
	}
	return base
}

func (e Error) Unwrap() error { return e.Err }

func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return ErrorKindCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTimeout
	}
	var ce Error
	if errors.As(err, &ce) && ce.Kind != "" {
		return ce.Kind
	}
	var ne net.Error
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return ErrorKindTimeout
		}
		return ErrorKindTransport
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return ErrorKindTransport
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "http status=429"):
		return ErrorKindRateLimited
	case strings.Contains(msg, "http status=401"), strings.Contains(msg, "http status=403"):
		return ErrorKindForbidden
	case strings.Contains(msg, "http status="):
		return ErrorKindHTTP
	}
	return ErrorKindUnknown
}

// IsNetwork reports whether the kind belongs to the transport collaborator:
// the fetch itself failed rather than anything we did with its payload.
func IsNetwork(kind ErrorKind) bool {
	switch kind {
	case ErrorKindTransport, ErrorKindHTTP, ErrorKindRateLimited, ErrorKindForbidden, ErrorKindTimeout:
		return true
	}
	return false
}

func MergeFailureKinds(dst map[string]int, src map[string]int) map[string]int {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]int, len(src))
	}
	for k, v := range src {
		dst[k] += v
	}
	return dst
}
