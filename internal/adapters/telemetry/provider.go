package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/mist/internal/core/ports"
)

// InstrumentationName names the tracer of mist.
const InstrumentationName = "go.trai.ch/mist"

// OTelTracer implements ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	logger   ports.Logger
}

// NewOTelTracer creates a tracer whose finished spans are reported to logger
// and registers its provider as the global OpenTelemetry tracer provider.
func NewOTelTracer(logger ports.Logger) *OTelTracer {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(logger)))
	otel.SetTracerProvider(tp)

	return &OTelTracer{
		provider: tp,
		tracer:   otel.Tracer(InstrumentationName),
		logger:   logger,
	}
}

// Shutdown flushes and stops the tracer provider.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)
	s := &OTelSpan{span: span}
	for k, v := range cfg.Attributes {
		s.SetAttribute(k, v)
	}
	s.lines = NewLineWriter(s.log)

	return ctx, s
}

// EmitPlan records the planned task names on the current span.
func (t *OTelTracer) EmitPlan(ctx context.Context, taskNames []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("tasks", taskNames),
		))
	}
	if t.logger != nil {
		t.logger.Debug("planned tasks: " + strings.Join(taskNames, ", "))
	}
}

// OTelSpan implements ports.Span using OpenTelemetry.
type OTelSpan struct {
	span  trace.Span
	lines *LineWriter
}

// End records a pending partial line and completes the span.
func (s *OTelSpan) End() {
	s.lines.Close()
	s.span.End()
}

// RecordError records err and marks the span as failed.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case uint64:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%016x", v)))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write records each line of p as a log event of the span.
func (s *OTelSpan) Write(p []byte) (int, error) {
	return s.lines.Write(p)
}

func (s *OTelSpan) log(line string) {
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", line)))
}
