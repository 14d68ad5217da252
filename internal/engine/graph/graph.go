// Package graph implements a typed, memoized computation graph over one compilation snapshot.
package graph

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Snapshot is the immutable input a graph computes over.
type Snapshot struct {
	// World is the view of the project files for this compilation.
	World ports.World
	// Signal records which editing events caused the compilation.
	Signal domain.ExportSignal
	// LastExported is the fingerprint of the document exported last for the
	// selected task, or zero when unknown.
	LastExported uint64
}

// Key identifies one kind of task in a graph and its computation.
// Keys are compared by identity; declare each kind once at package level.
type Key[T any] struct {
	name    string
	compute func(ctx context.Context, g *Graph) (T, error)
}

// NewKey declares a task kind computed by fn.
func NewKey[T any](name string, fn func(ctx context.Context, g *Graph) (T, error)) *Key[T] {
	return &Key[T]{name: name, compute: fn}
}

// NewInput declares a task kind that has no computation and must be provided.
func NewInput[T any](name string) *Key[T] {
	return &Key[T]{name: name}
}

// String returns the name of the task kind.
func (k *Key[T]) String() string {
	return k.name
}

// cell is a single-assignment slot for one task kind.
// mu serializes the first callers; done is set once value and err are final.
type cell struct {
	mu    sync.Mutex
	done  atomic.Bool
	value any
	err   error
}

// Graph caches the result of each task kind computed over a Snapshot.
// It is safe for concurrent use.
type Graph struct {
	snap   Snapshot
	tracer ports.Tracer

	mu    sync.Mutex
	cells map[any]*cell
}

// New creates an empty graph over snap. The tracer may be nil.
func New(snap Snapshot, tracer ports.Tracer) *Graph {
	return &Graph{
		snap:   snap,
		tracer: tracer,
		cells:  make(map[any]*cell),
	}
}

// Snapshot returns the snapshot the graph computes over.
func (g *Graph) Snapshot() Snapshot {
	return g.snap
}

func (g *Graph) cell(key any) *cell {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.cells[key]
	if !ok {
		c = &cell{}
		g.cells[key] = c
	}
	return c
}

// Get returns the cached result of key without computing it.
// The boolean is false when the task has been neither computed nor provided.
func Get[T any](g *Graph, key *Key[T]) (T, bool, error) {
	c := g.cell(key)
	if !c.done.Load() {
		var zero T
		return zero, false, nil
	}
	v, err := result[T](c)
	return v, true, err
}

// MustGet returns the cached result of key, or ErrMissingTask when there is none.
func MustGet[T any](g *Graph, key *Key[T]) (T, error) {
	v, ok, err := Get(g, key)
	if !ok {
		return v, zerr.With(domain.ErrMissingTask, "task", key.name)
	}
	return v, err
}

// Compute returns the cached result of key, running its computation first if needed.
// The outcome, success or error, is cached: the computation runs at most once per graph.
// Concurrent first callers block until the single computation finishes.
func Compute[T any](ctx context.Context, g *Graph, key *Key[T]) (T, error) {
	c := g.cell(key)
	if c.done.Load() {
		return result[T](c)
	}

	chain := chainFrom(ctx)
	if chain.contains(key) {
		var zero T
		return zero, zerr.With(domain.ErrTaskCycle, "cycle", chain.describe(key.name))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done.Load() {
		return result[T](c)
	}

	if key.compute == nil {
		var zero T
		return zero, zerr.With(domain.ErrMissingTask, "task", key.name)
	}

	ctx = withChain(ctx, chain.push(key, key.name))

	var span ports.Span
	if g.tracer != nil {
		ctx, span = g.tracer.Start(ctx, "compute "+key.name)
		defer span.End()
	}

	v, err := key.compute(ctx, g)
	if err != nil && span != nil {
		span.RecordError(err)
	}

	c.value = v
	c.err = err
	c.done.Store(true)

	return v, err
}

// Provide stores value as the result of key without computing it.
// Providing a value equal to the cached one is a no-op; any other value fails
// with ErrTaskAlreadyProvided and leaves the cache unchanged.
func Provide[T any](g *Graph, key *Key[T], value T) error {
	c := g.cell(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done.Load() {
		if c.err == nil && reflect.DeepEqual(c.value, value) {
			return nil
		}
		return zerr.With(domain.ErrTaskAlreadyProvided, "task", key.name)
	}

	c.value = value
	c.done.Store(true)

	return nil
}

func result[T any](c *cell) (T, error) {
	v, _ := c.value.(T)
	return v, c.err
}

type chainKey struct{}

// chain is the list of task kinds currently being computed on one call path.
type chain struct {
	keys  []any
	names []string
}

func chainFrom(ctx context.Context) chain {
	if c, ok := ctx.Value(chainKey{}).(chain); ok {
		return c
	}
	return chain{}
}

func withChain(ctx context.Context, c chain) context.Context {
	return context.WithValue(ctx, chainKey{}, c)
}

func (c chain) contains(key any) bool {
	for _, k := range c.keys {
		if k == key {
			return true
		}
	}
	return false
}

func (c chain) push(key any, name string) chain {
	keys := make([]any, len(c.keys), len(c.keys)+1)
	copy(keys, c.keys)
	names := make([]string, len(c.names), len(c.names)+1)
	copy(names, c.names)
	return chain{keys: append(keys, key), names: append(names, name)}
}

// describe renders the cycle closed by name, starting at its first occurrence.
func (c chain) describe(name string) string {
	start := 0
	for i, n := range c.names {
		if n == name {
			start = i
			break
		}
	}
	parts := append(append([]string{}, c.names[start:]...), name)
	return strings.Join(parts, " -> ")
}
