package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/mist/internal/adapters/telemetry"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/mist/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type debugLog struct {
	mu   sync.Mutex
	msgs []string
}

func (d *debugLog) record(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.msgs = append(d.msgs, msg)
}

func (d *debugLog) all() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.msgs...)
}

func newDebugLogger(ctrl *gomock.Controller) (*mocks.MockLogger, *debugLog) {
	log := &debugLog{}
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().Debug(gomock.Any()).Do(log.record).AnyTimes()
	return l, log
}

func TestOTelTracer_ReportsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	l, log := newDebugLogger(ctrl)

	tracer := telemetry.NewOTelTracer(l)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	ctx, span := tracer.Start(t.Context(), "compute paged document", ports.WithAttribute("task", "pdf"))
	require.NotNil(t, ctx)
	_, err := span.Write([]byte("wrote 10 bytes"))
	require.NoError(t, err)
	span.End()

	msgs := log.all()
	require.Len(t, msgs, 2)
	assert.Equal(t, "compute paged document: wrote 10 bytes", msgs[0])
	assert.True(t, strings.HasPrefix(msgs[1], "compute paged document finished in "), msgs[1])
}

func TestOTelTracer_RecordError(t *testing.T) {
	ctrl := gomock.NewController(t)
	l, log := newDebugLogger(ctrl)

	tracer := telemetry.NewOTelTracer(l)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	_, span := tracer.Start(t.Context(), "project export")
	span.SetAttribute("size", 12)
	span.SetAttribute("fingerprint", uint64(0xbeef))
	span.SetAttribute("written", true)
	span.RecordError(errors.New("disk full"))
	span.End()

	msgs := log.all()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "project export failed in ")
	assert.Contains(t, msgs[0], "disk full")
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	l, log := newDebugLogger(ctrl)

	tracer := telemetry.NewOTelTracer(l)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	ctx, span := tracer.Start(t.Context(), "export")
	tracer.EmitPlan(ctx, []string{"pdf", "text"})
	span.End()

	assert.Contains(t, log.all(), "planned tasks: pdf, text")
}

func TestBridge_NilLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(t.Context(), "span")
	span.SetStatus(codes.Error, "boom")
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "anything", ports.WithAttribute("k", "v"))
	assert.Equal(t, t.Context(), ctx)

	n, err := span.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	span.SetAttribute("k", 1)
	span.RecordError(errors.New("ignored"))
	span.End()
	tracer.EmitPlan(ctx, []string{"pdf"})
}

func TestOTelTracer_SplitsSpanOutputIntoLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	l, log := newDebugLogger(ctrl)

	tracer := telemetry.NewOTelTracer(l)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	_, span := tracer.Start(t.Context(), "export")
	_, err := span.Write([]byte("wrote out/a.pdf\nwrote out/"))
	require.NoError(t, err)
	_, err = span.Write([]byte("b.txt\r\n"))
	require.NoError(t, err)
	span.End()

	msgs := log.all()
	require.Len(t, msgs, 3)
	assert.Equal(t, "export: wrote out/a.pdf", msgs[0])
	assert.Equal(t, "export: wrote out/b.txt", msgs[1])
}

func TestLineWriter(t *testing.T) {
	var got []string
	w := telemetry.NewLineWriter(func(line string) { got = append(got, line) })

	n, err := w.Write([]byte("one\ntw"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, []string{"one"}, got)

	_, err = w.Write([]byte("o\n\nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", ""}, got)

	w.Close()
	w.Close()
	assert.Equal(t, []string{"one", "two", "", "three"}, got)

	n, err = w.Write([]byte("late\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Len(t, got, 4)
}

func TestLineWriter_SplitsLongLines(t *testing.T) {
	var got []string
	w := telemetry.NewLineWriter(func(line string) { got = append(got, line) })

	_, err := w.Write([]byte(strings.Repeat("x", telemetry.MaxLineLength+3)))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0], telemetry.MaxLineLength)

	w.Close()
	assert.Equal(t, "xxx", got[1])
}
