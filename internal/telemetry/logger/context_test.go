package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, Config{Level: "info", Format: "json"}, &buf)

	ctx := WithLogger(context.Background(), l)
	FromContext(ctx).Info("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Fatalf("context logger not used: %s", buf.String())
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext on empty context returned nil")
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")

	if got := RequestIDFromContext(ctx); got != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Fatalf("RequestIDFromContext() = %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("RequestIDFromContext(empty) = %q, want empty", got)
	}
}

func TestL_EnrichesWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, Config{Level: "info", Format: "json"}, &buf)

	ctx := WithLogger(context.Background(), l)
	ctx = WithRequestID(ctx, "req-123")

	L(ctx).Info("handling")

	if !strings.Contains(buf.String(), "req-123") {
		t.Fatalf("request_id missing from log entry: %s", buf.String())
	}
}
