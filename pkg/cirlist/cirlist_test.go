package cirlist

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/i5heu/GoSeqLists/internal/arena"
)

// requireRing checks next.prev == node and prev.next == node for every node
// and that walking forward gets back to head after exactly Len() steps.
func requireRing[T any](t *testing.T, l *CirList[T]) {
	t.Helper()
	if l.head == arena.Nil {
		require.Equal(t, 0, l.len)
		return
	}
	i := l.head
	for step := 0; step < l.len; step++ {
		next := l.arena.Next(i)
		prev := l.arena.Prev(i)
		require.Equal(t, i, l.arena.Prev(next), "next.prev broken at node %d", i)
		require.Equal(t, i, l.arena.Next(prev), "prev.next broken at node %d", i)
		i = next
	}
	require.Equal(t, l.head, i, "ring does not close after %d steps", l.len)
}

func TestStackBehaviour(t *testing.T) {
	l := New[int]()
	l.Push(1)
	l.Push(2)
	l.Push(3)
	requireRing(t, l)

	v, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, 3, v)
	requireRing(t, l)

	for i := 1; i < 6; i++ {
		l.Pop()
	}
	_, ok = l.Pop()
	require.False(t, ok)

	l.Push(100)
	v, ok = l.Pop()
	require.True(t, ok)
	require.Equal(t, 100, v)
	require.Equal(t, 0, l.arena.Live())
}

func TestPeek(t *testing.T) {
	l := New[int]()
	_, ok := l.PeekBack()
	require.False(t, ok)
	_, ok = l.PeekFront()
	require.False(t, ok)

	l.Push(1)
	l.Push(2)
	back, _ := l.PeekBack()
	front, _ := l.PeekFront()
	require.Equal(t, 2, back)
	require.Equal(t, 1, front)
}

func TestIter(t *testing.T) {
	l := New[int]()
	for i := 1; i < 5; i++ {
		l.Push(i)
	}
	next, stop := iter.Pull(l.All())
	defer stop()
	for want := 1; want <= 3; want++ {
		v, ok := next()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(l.All()))

	require.Empty(t, slices.Collect(New[int]().All()))
}

func TestPushNodeOrder(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 3; i++ {
		l.pushNode(l.arena.Alloc(i))
	}
	require.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
	requireRing(t, l)
}

func TestConcatenate(t *testing.T) {
	a := arena.New[int]()
	l1 := NewIn(a)
	l2 := NewIn(a)
	for _, v := range []int{1, 2, 3} {
		l1.Push(v)
	}
	for _, v := range []int{4, 5} {
		l2.Push(v)
	}

	l1.Concatenate(l2)
	require.Equal(t, 5, l1.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(l1.All()))
	require.Equal(t, 0, l2.Len())
	require.Empty(t, slices.Collect(l2.All()))
	requireRing(t, l1)

	// Pops must follow the spliced prev links.
	v, _ := l1.Pop()
	require.Equal(t, 5, v)
	v, _ = l1.Pop()
	require.Equal(t, 4, v)
	v, _ = l1.Pop()
	require.Equal(t, 3, v)
	requireRing(t, l1)
}

func TestConcatenateEdgeCases(t *testing.T) {
	l := Of(1, 2)
	l.Concatenate(New[int]())
	l.Concatenate(nil)
	require.Equal(t, []int{1, 2}, slices.Collect(l.All()))

	empty := NewIn(l.Arena())
	empty.Concatenate(l)
	require.Equal(t, []int{1, 2}, slices.Collect(empty.All()))
	require.Equal(t, 0, l.Len())
	requireRing(t, empty)

	other := Of(3, 4)
	empty.Concatenate(other)
	require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(empty.All()))
	require.Equal(t, 0, other.Arena().Live())
	requireRing(t, empty)

	require.Panics(t, func() { empty.Concatenate(empty) })
}

func TestNewStartsEmpty(t *testing.T) {
	l := New[int]()
	require.Equal(t, arena.Nil, l.head)
	require.NotNil(t, l.Arena())
	_, ok := l.Pop()
	require.False(t, ok)
	requireRing(t, l)
}

func TestConcatenateIntoEmptyTakesOverArena(t *testing.T) {
	l1 := New[int]()
	l2 := Of(1, 2, 3)
	a := l2.Arena()
	allocs := a.Allocs()

	l1.Concatenate(l2)
	require.Same(t, a, l1.Arena())
	require.Equal(t, allocs, a.Allocs(), "no node may be reallocated")
	require.Zero(t, a.Frees())
	require.Equal(t, []int{1, 2, 3}, slices.Collect(l1.All()))
	require.Equal(t, 0, l2.Len())
	requireRing(t, l1)

	v, ok := l1.Pop()
	require.True(t, ok)
	require.Equal(t, 3, v)
	requireRing(t, l1)
}

func TestPartition(t *testing.T) {
	out := Partition(Of(5, 4, 3, 2, 1, 5))
	require.Equal(t, []int{4, 3, 2, 1, 5, 5}, slices.Collect(out.All()))
	requireRing(t, out)

	out = Partition(Of(3, 7, 1, 8, 2, 3, 9))
	require.Equal(t, []int{1, 2, 3, 7, 8, 3, 9}, slices.Collect(out.All()))
	requireRing(t, out)

	// Pivot is the smallest: the less ring is empty and geq keeps the head.
	out = Partition(Of(1, 2, 3))
	require.Equal(t, []int{1, 2, 3}, slices.Collect(out.All()))
	requireRing(t, out)
}

func TestPartitionEmptyAndSingleton(t *testing.T) {
	out := Partition(New[int]())
	require.Equal(t, 0, out.Len())

	out = Partition(Of(7))
	require.Equal(t, []int{7}, slices.Collect(out.All()))
	requireRing(t, out)
}

func TestPartitionLeavesReceiverEmpty(t *testing.T) {
	l := Of(2, 1, 3)
	a := l.Arena()
	out := Partition(l)
	require.Equal(t, 0, l.Len())
	require.Empty(t, slices.Collect(l.All()))
	require.Equal(t, 3, a.Live())
	require.Equal(t, 3, out.Len())
}

func TestRelease(t *testing.T) {
	l := New[int]()
	for i := 1; i < 500; i++ {
		l.Push(i)
	}
	a := l.Arena()
	l.Release()
	require.Equal(t, 0, a.Live())
	require.Equal(t, a.Allocs(), a.Frees())
	require.Equal(t, 0, l.Len())

	// Releasing twice is harmless.
	l.Release()
	require.Equal(t, a.Allocs(), a.Frees())
}
