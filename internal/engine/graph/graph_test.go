package graph_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/mist/internal/core/ports/mocks"
	"go.trai.ch/mist/internal/engine/graph"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func errMeta(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	return zErr.Metadata()
}

func newGraph() *graph.Graph {
	return graph.New(graph.Snapshot{}, nil)
}

func TestCompute_RunsOnce(t *testing.T) {
	var calls atomic.Int32
	key := graph.NewKey("answer", func(context.Context, *graph.Graph) (int, error) {
		calls.Add(1)
		return 42, nil
	})

	g := newGraph()

	first, err := graph.Compute(t.Context(), g, key)
	require.NoError(t, err)
	second, err := graph.Compute(t.Context(), g, key)
	require.NoError(t, err)

	assert.Equal(t, 42, first)
	assert.Equal(t, 42, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCompute_ConcurrentFirstCallersSerialize(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	key := graph.NewKey("slow", func(context.Context, *graph.Graph) (string, error) {
		calls.Add(1)
		<-release
		return "done", nil
	})

	g := newGraph()

	const callers = 16
	var wg sync.WaitGroup
	results := make([]string, callers)
	for i := range callers {
		wg.Go(func() {
			v, err := graph.Compute(context.Background(), g, key)
			assert.NoError(t, err)
			results[i] = v
		})
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "done", r)
	}
}

func TestCompute_CachesErrors(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("boom")
	key := graph.NewKey("failing", func(context.Context, *graph.Graph) (int, error) {
		calls.Add(1)
		return 0, boom
	})

	g := newGraph()

	_, err := graph.Compute(t.Context(), g, key)
	require.ErrorIs(t, err, boom)
	_, err = graph.Compute(t.Context(), g, key)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, int32(1), calls.Load())

	_, ok, err := graph.Get(g, key)
	assert.True(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestCompute_NestedKeys(t *testing.T) {
	base := graph.NewKey("base", func(context.Context, *graph.Graph) (int, error) {
		return 20, nil
	})
	double := graph.NewKey("double", func(ctx context.Context, g *graph.Graph) (int, error) {
		v, err := graph.Compute(ctx, g, base)
		return v * 2, err
	})

	g := newGraph()

	v, err := graph.Compute(t.Context(), g, double)
	require.NoError(t, err)
	assert.Equal(t, 40, v)

	cached, ok, err := graph.Get(g, base)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 20, cached)
}

func TestCompute_DetectsCycles(t *testing.T) {
	var a, b *graph.Key[int]
	a = graph.NewKey("a", func(ctx context.Context, g *graph.Graph) (int, error) {
		return graph.Compute(ctx, g, b)
	})
	b = graph.NewKey("b", func(ctx context.Context, g *graph.Graph) (int, error) {
		return graph.Compute(ctx, g, a)
	})

	g := newGraph()

	_, err := graph.Compute(t.Context(), g, a)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTaskCycle.Error())
	assert.Equal(t, "a -> b -> a", errMeta(t, err)["cycle"])
}

func TestCompute_UnprovidedInput(t *testing.T) {
	input := graph.NewInput[bool]("flag")

	_, err := graph.Compute(t.Context(), newGraph(), input)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingTask.Error())
}

func TestGet_DoesNotCompute(t *testing.T) {
	called := false
	key := graph.NewKey("lazy", func(context.Context, *graph.Graph) (int, error) {
		called = true
		return 1, nil
	})

	v, ok, err := graph.Get(newGraph(), key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.False(t, called)
}

func TestMustGet(t *testing.T) {
	key := graph.NewInput[string]("config")
	g := newGraph()

	_, err := graph.MustGet(g, key)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingTask.Error())
	assert.Equal(t, "config", errMeta(t, err)["task"])

	require.NoError(t, graph.Provide(g, key, "value"))

	v, err := graph.MustGet(g, key)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
}

func TestProvide(t *testing.T) {
	t.Run("compute returns provided value", func(t *testing.T) {
		called := false
		key := graph.NewKey("flag", func(context.Context, *graph.Graph) (bool, error) {
			called = true
			return false, nil
		})
		g := newGraph()

		require.NoError(t, graph.Provide(g, key, true))

		v, err := graph.Compute(t.Context(), g, key)
		require.NoError(t, err)
		assert.True(t, v)
		assert.False(t, called)
	})

	t.Run("same value twice is accepted", func(t *testing.T) {
		key := graph.NewInput[[]string]("names")
		g := newGraph()

		require.NoError(t, graph.Provide(g, key, []string{"a", "b"}))
		require.NoError(t, graph.Provide(g, key, []string{"a", "b"}))
	})

	t.Run("different value is rejected", func(t *testing.T) {
		key := graph.NewInput[bool]("flag")
		g := newGraph()

		require.NoError(t, graph.Provide(g, key, true))
		err := graph.Provide(g, key, false)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrTaskAlreadyProvided.Error())

		v, err := graph.MustGet(g, key)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("different value over computed result is rejected", func(t *testing.T) {
		key := graph.NewKey("computed", func(context.Context, *graph.Graph) (int, error) {
			return 1, nil
		})
		g := newGraph()

		_, err := graph.Compute(t.Context(), g, key)
		require.NoError(t, err)

		require.NoError(t, graph.Provide(g, key, 1))
		err = graph.Provide(g, key, 2)
		assert.ErrorContains(t, err, domain.ErrTaskAlreadyProvided.Error())
	})
}

func TestCompute_Tracing(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	boom := errors.New("boom")
	key := graph.NewKey("traced", func(context.Context, *graph.Graph) (int, error) {
		return 0, boom
	})

	tracer.EXPECT().Start(gomock.Any(), "compute traced").
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		}).Times(1)
	span.EXPECT().RecordError(boom).Times(1)
	span.EXPECT().End().Times(1)

	g := graph.New(graph.Snapshot{}, tracer)

	_, err := graph.Compute(t.Context(), g, key)
	require.ErrorIs(t, err, boom)

	// Cache hits are not traced.
	_, err = graph.Compute(t.Context(), g, key)
	require.ErrorIs(t, err, boom)
}

func TestSnapshot(t *testing.T) {
	snap := graph.Snapshot{
		Signal:       domain.ExportSignal{ByFsEvents: true},
		LastExported: 7,
	}
	g := graph.New(snap, nil)

	assert.Equal(t, snap, g.Snapshot())
}
