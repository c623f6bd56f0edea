package ports

import "context"

// Span is one traced phase of a bisection step.
type Span interface {
	// SetAttribute attaches a key/value pair.
	SetAttribute(key string, value any)
	// RecordError marks the span as failed.
	RecordError(err error)
	// End completes the span.
	End()
}

// Tracer starts spans.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}
