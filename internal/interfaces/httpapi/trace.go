package httpapi

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("league-site/internal/interfaces/httpapi")

// startHandlerSpan opens "httpapi.Handler.<name>" under the request span.
// Routes excluded from RequestTracing carry no parent and get a noop span.
func startHandlerSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return apiTracer.Start(ctx, "httpapi.Handler."+name)
}
