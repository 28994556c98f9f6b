package ports

import "context"

// Tracer is the entry point for creating pipeline stage spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents one pipeline stage.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Add potential future configuration fields here.
	// For now, it's a placeholder to support the option pattern.
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)
