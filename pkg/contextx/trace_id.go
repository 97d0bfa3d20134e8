package contextx

import "context"

// TraceID ties together the log lines of one inbound request.
type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	return valueFromContext[TraceID](ctx, contextKeyTraceID{}, "trace id")
}
