package observability

import "context"

// StartTrace attaches a fresh trace ID to the context unless one is already present.
func StartTrace(ctx context.Context) context.Context {
	if GetTraceID(ctx) != "" {
		return ctx
	}
	return WithTraceID(ctx, GenerateTraceID())
}

// StartSpan attaches a new span ID and request ID to the context.
// The console starts one span per line of input.
func StartSpan(ctx context.Context) context.Context {
	ctx = StartTrace(ctx)
	ctx = WithSpanID(ctx, GenerateSpanID())
	return WithRequestID(ctx, GenerateRequestID())
}
