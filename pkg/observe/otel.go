package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/passage-dev/passage/pkg/nav"
)

// Default tracer name for Passage applications.
const defaultTracerName = "passage"

// OTelConfig configures the OpenTelemetry navigation listener.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "passage").
	TracerName string

	// IncludePath includes the navigated path in spans. Enabled by
	// default; disable when paths may carry sensitive values.
	IncludePath bool

	// Filter determines which navigations to trace. Return true to
	// trace, false to skip. If nil, all navigations are traced.
	Filter func(path string) bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry navigation listener.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludePath enables/disables including the path in spans.
func WithIncludePath(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludePath = include
	}
}

// WithFilter sets a filter function for navigations.
func WithFilter(filter func(path string) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName:  defaultTracerName,
		IncludePath: true,
	}
}

// OTelListener emits one span per completed navigation cycle.
//
// The span covers the resolve-and-mount portion of the cycle and carries
// the outcome as an attribute. Handler and render failures set the span
// status to Error.
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before starting the engine:
//
//	otel.SetTracerProvider(tp)
type OTelListener struct {
	config OTelConfig
}

// Tracing creates an OpenTelemetry navigation listener.
func Tracing(opts ...OTelOption) *OTelListener {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &OTelListener{config: config}
}

// NavigationStarted implements nav.Listener.
func (o *OTelListener) NavigationStarted(path string) {}

// NavigationFinished implements nav.Listener. The span is created with
// explicit timestamps so navigations racing at suspension points never
// share mutable listener state.
func (o *OTelListener) NavigationFinished(path string, outcome nav.Outcome, elapsed time.Duration) {
	if o.config.Filter != nil && !o.config.Filter(path) {
		return
	}

	end := time.Now()
	attrs := []attribute.KeyValue{
		attribute.String("passage.outcome", string(outcome)),
	}
	if o.config.IncludePath {
		attrs = append(attrs, attribute.String("passage.path", path))
	}

	_, span := o.config.tracer.Start(context.Background(), "passage.navigate",
		trace.WithTimestamp(end.Add(-elapsed)),
		trace.WithAttributes(attrs...),
	)
	switch outcome {
	case nav.OutcomeHandlerError, nav.OutcomeRenderError:
		span.SetStatus(codes.Error, string(outcome))
	default:
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(end))
}
