package preview

import (
	"context"
	"sync"
)

// Mailbox is an unbounded FIFO queue with many senders and a single receiver.
//
// Sends never block. The mailbox terminates once every Sender has been closed
// and the queued values have been received.
type Mailbox[T any] struct {
	mu      sync.Mutex
	items   []T
	senders int
	signal  chan struct{} // buffered, size 1
}

// Sender is a handle for sending to a Mailbox. Clone it to add producers.
type Sender[T any] struct {
	m      *Mailbox[T]
	closed bool // guarded by m.mu
}

// NewMailbox creates a mailbox and its first sender.
func NewMailbox[T any]() (*Sender[T], *Mailbox[T]) {
	m := &Mailbox[T]{
		senders: 1,
		signal:  make(chan struct{}, 1),
	}
	return &Sender[T]{m: m}, m
}

// Send enqueues v. It returns false when this sender is closed or the
// mailbox has terminated.
func (s *Sender[T]) Send(v T) bool {
	m := s.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.closed || m.senders == 0 {
		return false
	}
	m.items = append(m.items, v)
	m.notify()
	return true
}

// Clone returns a new sender for the same mailbox.
// Cloning a sender of a terminated mailbox returns a sender that cannot send.
func (s *Sender[T]) Clone() *Sender[T] {
	m := s.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.senders > 0 {
		m.senders++
		return &Sender[T]{m: m}
	}
	return &Sender[T]{m: m, closed: true}
}

// Close releases the sender. Closing twice has no effect.
func (s *Sender[T]) Close() {
	m := s.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	m.senders--
	m.notify()
}

// Recv blocks until a value is available. It returns false once the mailbox
// is drained with no senders left, or when ctx is done.
func (m *Mailbox[T]) Recv(ctx context.Context) (T, bool) {
	for {
		if v, ok, done := m.tryRecv(); ok || done {
			return v, ok
		}

		select {
		case <-m.signal:
		case <-ctx.Done():
			var zero T
			return zero, false
		}
	}
}

// Len returns the number of queued values.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *Mailbox[T]) tryRecv() (v T, ok, done bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) == 0 {
		return v, false, m.senders == 0
	}

	v = m.items[0]
	var zero T
	m.items[0] = zero
	m.items = m.items[1:]
	if len(m.items) == 0 {
		m.items = nil
	}
	return v, true, false
}

// notify must be called with mu held.
func (m *Mailbox[T]) notify() {
	select {
	case m.signal <- struct{}{}:
	default:
	}
}
