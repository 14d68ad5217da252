// Package telemetry implements ports.Tracer on OpenTelemetry.
package telemetry

import (
	"bytes"
	"sync"
)

// MaxLineLength bounds a pending line. Longer lines are emitted in pieces.
const MaxLineLength = 4096

// LineWriter splits span output into lines and hands each to emit without its
// line ending. A trailing partial line is held until Close. It is safe for
// concurrent use.
type LineWriter struct {
	emit func(string)

	mu      sync.Mutex
	pending []byte
	closed  bool
}

// NewLineWriter returns a writer calling emit once per line.
func NewLineWriter(emit func(string)) *LineWriter {
	return &LineWriter{emit: emit}
}

// Write emits every complete line in p. Writes after Close are dropped.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return len(p), nil
	}

	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		w.emitLocked(w.pending[:i])
		w.pending = w.pending[i+1:]
	}
	for len(w.pending) >= MaxLineLength {
		w.emitLocked(w.pending[:MaxLineLength])
		w.pending = w.pending[MaxLineLength:]
	}
	if len(w.pending) == 0 {
		w.pending = nil
	}
	return len(p), nil
}

// Close emits the partial line, if any. Closing twice has no effect.
func (w *LineWriter) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	if len(w.pending) > 0 {
		w.emitLocked(w.pending)
	}
	w.pending = nil
}

// emitLocked must be called with mu held.
func (w *LineWriter) emitLocked(line []byte) {
	line = bytes.TrimSuffix(line, []byte("\r"))
	if w.emit != nil {
		w.emit(string(line))
	}
}
