package fifoqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mu-tools/mu-sched/fifoqueue"
)

func TestQueue_PutGet_FIFO(t *testing.T) {
	q := fifoqueue.New[string](3)
	require.True(t, q.Put("a"))
	require.True(t, q.Put("b"))
	require.True(t, q.Put("c"))
	require.True(t, q.IsFull())

	v, ok := q.Get()
	require.True(t, ok)
	require.Equal(t, "a", v)

	require.True(t, q.Put("d"))

	for _, want := range []string{"b", "c", "d"} {
		v, ok := q.Get()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	require.True(t, q.IsEmpty())
}

func TestQueue_Put_FailsWhenFull(t *testing.T) {
	q := fifoqueue.New[int](1)
	require.True(t, q.Put(1))
	require.False(t, q.Put(2))
}

func TestQueue_Get_FailsWhenEmpty(t *testing.T) {
	q := fifoqueue.New[int](1)
	_, ok := q.Get()
	require.False(t, ok)
}

func TestQueue_New_PanicsOnNonPositiveCapacity(t *testing.T) {
	require.Panics(t, func() { fifoqueue.New[int](0) })
}

// TestQueue_WrapsAroundBackingArray exercises the circular-buffer index
// arithmetic across several fill/drain cycles, where head has wrapped
// past the end of the backing array.
func TestQueue_WrapsAroundBackingArray(t *testing.T) {
	q := fifoqueue.New[int](3)
	next := 0
	for cycle := 0; cycle < 5; cycle++ {
		require.True(t, q.Put(next))
		next++
		require.True(t, q.Put(next))
		next++
		v, ok := q.Get()
		require.True(t, ok)
		require.Equal(t, next-2, v)
		v, ok = q.Get()
		require.True(t, ok)
		require.Equal(t, next-1, v)
	}
}
