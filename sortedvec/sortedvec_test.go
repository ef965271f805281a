package sortedvec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mu-tools/mu-sched/sortedvec"
)

// descendingInt orders so the smallest value sorts last (toward the
// tail), matching the event queue's "earliest deadline at the tail"
// convention this package exists to serve.
func descendingInt(a, b int) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	default:
		return 0
	}
}

func TestVec_SortedInsert_MaintainsOrder(t *testing.T) {
	v := sortedvec.New[int](4)
	require.True(t, v.SortedInsert(10, descendingInt, sortedvec.InsertLast))
	require.True(t, v.SortedInsert(5, descendingInt, sortedvec.InsertLast))
	require.True(t, v.SortedInsert(20, descendingInt, sortedvec.InsertLast))

	got, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, 5, got) // smallest (earliest) pops first

	got, ok = v.Pop()
	require.True(t, ok)
	require.Equal(t, 10, got)

	got, ok = v.Pop()
	require.True(t, ok)
	require.Equal(t, 20, got)
}

func TestVec_SortedInsert_ReportsFalseWhenFull(t *testing.T) {
	v := sortedvec.New[int](2)
	require.True(t, v.SortedInsert(1, descendingInt, sortedvec.InsertLast))
	require.True(t, v.SortedInsert(2, descendingInt, sortedvec.InsertLast))
	require.False(t, v.SortedInsert(3, descendingInt, sortedvec.InsertLast))
	require.Equal(t, 2, v.Len())
}

// tiedItem carries a deadline plus an identity distinct from its
// deadline, so tie-break order is observable independent of value order.
type tiedItem struct {
	deadline int
	id       string
}

func compareTiedItems(a, b tiedItem) int {
	return descendingInt(a.deadline, b.deadline)
}

// TestVec_TiePolicy_InsertFirst reproduces the FIFO-on-tie scenario this
// package was built to express: the incumbent (first submitted) pops
// before a later-arriving item with the same deadline, even though the
// tie policy inserts the newcomer ahead of the incumbent in the backing
// slice.
func TestVec_TiePolicy_InsertFirst(t *testing.T) {
	v := sortedvec.New[tiedItem](4)
	require.True(t, v.SortedInsert(tiedItem{7, "incumbent"}, compareTiedItems, sortedvec.InsertFirst))
	require.True(t, v.SortedInsert(tiedItem{7, "newcomer"}, compareTiedItems, sortedvec.InsertFirst))

	got, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, "incumbent", got.id)

	got, ok = v.Pop()
	require.True(t, ok)
	require.Equal(t, "newcomer", got.id)
}

func TestVec_PeekDoesNotRemove(t *testing.T) {
	v := sortedvec.New[int](2)
	require.True(t, v.SortedInsert(1, descendingInt, sortedvec.InsertLast))

	got, ok := v.Peek()
	require.True(t, ok)
	require.Equal(t, 1, got)
	require.Equal(t, 1, v.Len())
}

func TestVec_PopEmpty_ReportsFalse(t *testing.T) {
	v := sortedvec.New[int](1)
	_, ok := v.Pop()
	require.False(t, ok)
}

func TestVec_New_PanicsOnNonPositiveCapacity(t *testing.T) {
	require.Panics(t, func() { sortedvec.New[int](0) })
}
