package preview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mist/internal/engine/preview"
)

func TestBroadcast_NoSubscribers(t *testing.T) {
	b := preview.NewBroadcast[int](1)
	assert.Zero(t, b.Publish(1))
	assert.Zero(t, b.Subscribers())

	// Values published before subscribing are not replayed.
	s := b.Subscribe()
	assert.Empty(t, s.C())
}

func TestBroadcast_FanOut(t *testing.T) {
	b := preview.NewBroadcast[string](4)
	s1 := b.Subscribe()
	s2 := b.Subscribe()

	assert.Equal(t, 2, b.Publish("hello"))

	assert.Equal(t, "hello", <-s1.C())
	assert.Equal(t, "hello", <-s2.C())
}

func TestBroadcast_DropsOldest(t *testing.T) {
	b := preview.NewBroadcast[int](2)
	s := b.Subscribe()

	for i := range 5 {
		b.Publish(i)
	}

	assert.Equal(t, uint64(3), s.Dropped())
	assert.Equal(t, 3, <-s.C())
	assert.Equal(t, 4, <-s.C())
}

func TestBroadcast_SlowSubscriberDoesNotAffectOthers(t *testing.T) {
	b := preview.NewBroadcast[int](1)
	slow := b.Subscribe()
	fast := b.Subscribe()

	for i := range 3 {
		b.Publish(i)
		assert.Equal(t, i, <-fast.C())
	}

	assert.Equal(t, 2, <-slow.C())
	assert.Zero(t, fast.Dropped())
}

func TestBroadcast_Close(t *testing.T) {
	b := preview.NewBroadcast[int](0)
	s := b.Subscribe()
	other := b.Subscribe()

	s.Close()
	s.Close()
	assert.Equal(t, 1, b.Subscribers())

	_, ok := <-s.C()
	assert.False(t, ok)

	b.Close()
	assert.Zero(t, b.Subscribers())
	_, ok = <-other.C()
	require.False(t, ok)
	assert.Zero(t, b.Publish(1))
}
