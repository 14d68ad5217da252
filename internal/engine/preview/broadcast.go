package preview

import (
	"sync"
	"sync/atomic"
)

// DefaultBroadcastCapacity is the number of values buffered per subscriber.
const DefaultBroadcastCapacity = 16

// Broadcast fans values out to every current subscriber.
//
// Publishing never blocks: a subscriber whose buffer is full loses its oldest
// value, and a value published with no subscribers is dropped.
type Broadcast[T any] struct {
	mu       sync.Mutex
	capacity int
	subs     map[*Subscription[T]]struct{}
}

// Subscription receives the values published after it was created.
type Subscription[T any] struct {
	b       *Broadcast[T]
	ch      chan T
	once    sync.Once
	dropped atomic.Uint64
}

// NewBroadcast creates a broadcast buffering up to capacity values per subscriber.
// A capacity below one is raised to one.
func NewBroadcast[T any](capacity int) *Broadcast[T] {
	return &Broadcast[T]{
		capacity: max(capacity, 1),
		subs:     make(map[*Subscription[T]]struct{}),
	}
}

// Subscribe registers a new subscriber.
func (b *Broadcast[T]) Subscribe() *Subscription[T] {
	s := &Subscription[T]{b: b, ch: make(chan T, b.capacity)}

	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()

	return s
}

// Publish delivers v to every subscriber and returns how many received it.
func (b *Broadcast[T]) Publish(v T) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	for s := range b.subs {
		for {
			select {
			case s.ch <- v:
			default:
				select {
				case <-s.ch:
					s.dropped.Add(1)
				default:
				}
				continue
			}
			break
		}
	}
	return len(b.subs)
}

// Subscribers returns the number of active subscribers.
func (b *Broadcast[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close unsubscribes every subscriber and closes their channels.
func (b *Broadcast[T]) Close() {
	b.mu.Lock()
	subs := make([]*Subscription[T], 0, len(b.subs))
	for s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
}

// C returns the channel values are delivered on. It is closed by Close.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Dropped returns how many values were discarded because the buffer was full.
func (s *Subscription[T]) Dropped() uint64 {
	return s.dropped.Load()
}

// Close unsubscribes and closes the channel. Closing twice has no effect.
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		s.b.mu.Lock()
		delete(s.b.subs, s)
		s.b.mu.Unlock()
		close(s.ch)
	})
}
