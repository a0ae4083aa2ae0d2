package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestStartHandlerSpan_WithoutParentIsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startHandlerSpan(ctx, "Page")
	defer span.End()

	if got != ctx {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected noop span without a parent")
	}
}

func TestStartHandlerSpan_WithParentKeepsTrace(t *testing.T) {
	parentCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), parentCtx)

	got, span := startHandlerSpan(ctx, "Page")
	defer span.End()

	if trace.SpanContextFromContext(got).TraceID() != parentCtx.TraceID() {
		t.Fatalf("expected the handler span to stay on the request trace")
	}
}
