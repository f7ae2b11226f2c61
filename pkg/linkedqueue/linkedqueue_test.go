package linkedqueue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	q := New[int]()
	for cycle := 0; cycle < 10; cycle++ {
		for i := 1; i <= 100; i++ {
			q.Push(i)
		}
		front, ok := q.PeekFront()
		require.True(t, ok)
		require.Equal(t, 1, front)
		for i := 1; i <= 100; i++ {
			v, ok := q.PopFront()
			require.True(t, ok)
			require.Equal(t, i, v)
		}
		_, ok = q.PopFront()
		require.False(t, ok)
	}
	// Drained nodes are recycled instead of growing the arena.
	require.Equal(t, 100, q.list.Arena().Slots())
}

func TestRelease(t *testing.T) {
	q := New[int]()
	for i := 0; i < 250; i++ {
		q.Push(i)
	}
	q.Release()
	require.Equal(t, 0, q.Len())
	require.Equal(t, 0, q.list.Arena().Live())
}
