package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocFree(t *testing.T) {
	a := New[string]()

	i := a.Alloc("a")
	j := a.Alloc("b")
	require.NotEqual(t, i, j)
	require.Equal(t, 2, a.Live())
	require.Equal(t, "a", *a.Elem(i))
	require.Equal(t, Nil, a.Next(i))
	require.Equal(t, Nil, a.Prev(j))

	require.Equal(t, "a", a.Free(i))
	require.Equal(t, 1, a.Live())
	require.Equal(t, uint64(2), a.Allocs())
	require.Equal(t, uint64(1), a.Frees())
}

func TestFreeListRecyclesSlots(t *testing.T) {
	a := New[int]()
	var idx []Index
	for i := 0; i < 8; i++ {
		idx = append(idx, a.Alloc(i))
	}
	for _, i := range idx {
		a.Free(i)
	}
	require.Equal(t, 0, a.Live())

	for i := 0; i < 8; i++ {
		a.Alloc(i)
	}
	require.Equal(t, 8, a.Slots(), "freed slots must be reused before growing")
	require.Equal(t, 8, a.Live())
}

func TestDoubleFreePanics(t *testing.T) {
	a := New[int]()
	i := a.Alloc(1)
	a.Free(i)
	require.Panics(t, func() { a.Free(i) })
}

func TestFreeDropsReferences(t *testing.T) {
	a := New[*int]()
	v := 42
	i := a.Alloc(&v)
	a.Free(i)
	require.Nil(t, a.Node(i).Elem)
}
