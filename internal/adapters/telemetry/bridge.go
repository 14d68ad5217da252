package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/mist/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor by reporting finished spans to a logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge. A nil logger disables reporting.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the name and duration of the span, and its log events.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	for _, ev := range s.Events() {
		if ev.Name != "log" {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == "message" {
				b.logger.Debug(fmt.Sprintf("%s: %s", s.Name(), attr.Value.AsString()))
			}
		}
	}

	msg := fmt.Sprintf("%s finished in %s", s.Name(), s.EndTime().Sub(s.StartTime()))
	if s.Status().Code == codes.Error {
		msg = fmt.Sprintf("%s failed in %s: %s", s.Name(), s.EndTime().Sub(s.StartTime()), s.Status().Description)
	}
	b.logger.Debug(msg)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}
