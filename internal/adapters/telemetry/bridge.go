package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/genreqs/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor, reporting completed pipeline
// stages to the logger at debug level.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends. It emits one debug line with the
// stage name, duration, and failure description if the span errored.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	if !s.SpanContext().IsValid() {
		return
	}

	duration := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "stage failed"
		}
		b.logger.Debug(fmt.Sprintf("stage %s failed after %s: %s", s.Name(), duration, desc))
		return
	}

	b.logger.Debug(fmt.Sprintf("stage %s completed in %s", s.Name(), duration))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// Setup installs a global tracer provider that routes every span through
// the bridge. Spans started by OTelTracer after this call are reported to
// the given logger.
func Setup(logger ports.Logger) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)
}
