package telemetry

import (
	"context"
	"sync"
)

// Tracer provides distributed tracing capabilities. This interface allows
// plugging in different tracing backends (OpenTelemetry, or any other).
type Tracer interface {
	// StartSpan starts a new span with the given name. Returns a context
	// containing the span and a function to end it.
	StartSpan(ctx context.Context, name string, attrs Fields) (context.Context, SpanEnder)
}

// SpanEnder ends a span. Call with nil error for success, or pass an
// error to mark the span as failed.
type SpanEnder func(err error)

// --- NoOp Tracer ---

// NoOpTracer is a tracer that does nothing. The default when tracing is
// not configured.
type NoOpTracer struct{}

// StartSpan returns the context unchanged and a no-op end function.
func (NoOpTracer) StartSpan(ctx context.Context, name string, attrs Fields) (context.Context, SpanEnder) {
	return ctx, func(err error) {}
}

// --- Global Tracer ---

var (
	globalTracer   Tracer = NoOpTracer{}
	globalTracerMu sync.RWMutex
)

// SetTracer sets the global tracer.
func SetTracer(t Tracer) {
	globalTracerMu.Lock()
	defer globalTracerMu.Unlock()
	globalTracer = t
}

// GetTracer returns the global tracer.
func GetTracer() Tracer {
	globalTracerMu.RLock()
	defer globalTracerMu.RUnlock()
	return globalTracer
}

// StartSpan starts a span using the global tracer.
func StartSpan(ctx context.Context, name string, attrs Fields) (context.Context, SpanEnder) {
	return GetTracer().StartSpan(ctx, name, attrs)
}

// Standard span names for envcrypt core operations.
const (
	SpanSeal = "envcrypt.seal"
	SpanOpen = "envcrypt.open"
)
