package crawler

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"
)

func TestKindOf(t *testing.T) {
	{
		if got := KindOf(context.Canceled); got != ErrorKindCanceled {
			t.Fatalf("canceled got=%s", got)
		}
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
		defer cancel()
		<-ctx.Done()
		if got := KindOf(ctx.Err()); got != ErrorKindTimeout {
			t.Fatalf("deadline got=%s", got)
		}
	}
	{
		err := Error{Kind: ErrorKindBootstrap, Platform: "youtube", Msg: "missing ytInitialData"}
		if got := KindOf(err); got != ErrorKindBootstrap {
			t.Fatalf("custom kind got=%s", got)
		}
	}
	{
		err := &url.Error{Op: "Post", URL: "https://www.youtube.com/youtubei/v1/browse", Err: errors.New("connection refused")}
		if got := KindOf(err); got != ErrorKindTransport {
			t.Fatalf("url error got=%s", got)
		}
	}
	{
		err := errors.New("http status=429 body=xxx")
		if got := KindOf(err); got != ErrorKindRateLimited {
			t.Fatalf("429 got=%s", got)
		}
	}
	{
		err := errors.New("http status=403 body=xxx")
		if got := KindOf(err); got != ErrorKindForbidden {
			t.Fatalf("403 got=%s", got)
		}
	}
	{
		err := errors.New("http status=500 body=xxx")
		if got := KindOf(err); got != ErrorKindHTTP {
			t.Fatalf("500 got=%s", got)
		}
	}
	{
		err := NewHTTPStatusError("youtube", "u", 429, "nope")
		if got := KindOf(err); got != ErrorKindRateLimited {
			t.Fatalf("wrapped 429 got=%s", got)
		}
	}
	{
		err := errors.New("something else")
		if got := KindOf(err); got != ErrorKindUnknown {
			t.Fatalf("unknown got=%s", got)
		}
	}
}

func TestIsNetwork(t *testing.T) {
	for kind, want := range map[ErrorKind]bool{
		ErrorKindTransport:       true,
		ErrorKindHTTP:            true,
		ErrorKindRateLimited:     true,
		ErrorKindForbidden:       true,
		ErrorKindTimeout:         true,
		ErrorKindBootstrap:       false,
		ErrorKindUnexpectedShape: false,
		ErrorKindInvalidInput:    false,
		ErrorKindUnknown:         false,
	} {
		if got := IsNetwork(kind); got != want {
			t.Fatalf("IsNetwork(%s)=%v want %v", kind, got, want)
		}
	}
}

func TestErrorString(t *testing.T) {
	e := Error{Kind: ErrorKindUnexpectedShape, Platform: "youtube", URL: "https://www.youtube.com/@x/videos", Msg: "grid renderer not found"}
	want := "youtube: grid renderer not found (https://www.youtube.com/@x/videos)"
	if e.Error() != want {
		t.Fatalf("Error()=%q want %q", e.Error(), want)
	}
	wrapped := Error{Kind: ErrorKindTransport, Err: errors.New("dial tcp: timeout")}
	if wrapped.Error() != "dial tcp: timeout" {
		t.Fatalf("Error()=%q", wrapped.Error())
	}
	if !errors.Is(wrapped, wrapped.Err) {
		t.Fatalf("Unwrap broken")
	}
}
