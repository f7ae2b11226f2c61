package arena

import (
	"fmt"

	"github.com/i5heu/GoSeqLists/pkg/seqlist"
)

// Index addresses a node slot inside an Arena.
type Index int32

// Nil is the absent link.
const Nil Index = -1

// Node is one slot of a linked layout. Prev is only maintained by doubly
// linked layouts.
type Node[T any] struct {
	Elem T
	Next Index
	Prev Index

	inUse bool
}

// Arena holds the nodes of any number of linked lists in a single growable
// vector and hands out indices instead of pointers. Released slots are
// threaded onto a free list through Next and recycled by later allocations.
//
// A node index is reachable from at most one live chain; the arena only does
// the bookkeeping, the lists enforce the ownership.
type Arena[T any] struct {
	nodes  *seqlist.SeqList[Node[T]]
	free   Index
	live   int
	allocs uint64
	frees  uint64
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{
		nodes: seqlist.New[Node[T]](),
		free:  Nil,
	}
}

// Alloc stores elem in a fresh unlinked node and returns its index.
func (a *Arena[T]) Alloc(elem T) Index {
	var i Index
	if a.free != Nil {
		i = a.free
		n := a.Node(i)
		a.free = n.Next
		*n = Node[T]{Elem: elem, Next: Nil, Prev: Nil, inUse: true}
	} else {
		a.nodes.Push(Node[T]{Elem: elem, Next: Nil, Prev: Nil, inUse: true})
		i = Index(a.nodes.Len() - 1)
	}
	a.live++
	a.allocs++
	return i
}

// Free releases the node at i and returns the element it held. Freeing a
// node twice panics.
func (a *Arena[T]) Free(i Index) T {
	n := a.Node(i)
	if !n.inUse {
		panic(fmt.Sprintf("arena: double free of node %d", i))
	}
	elem := n.Elem
	*n = Node[T]{Next: a.free, Prev: Nil}
	a.free = i
	a.live--
	a.frees++
	return elem
}

// Node returns the slot at i. The pointer is only valid until the next Alloc.
func (a *Arena[T]) Node(i Index) *Node[T] {
	return &a.nodes.Slice()[i]
}

// Elem returns a pointer to the element stored at i.
func (a *Arena[T]) Elem(i Index) *T {
	return &a.Node(i).Elem
}

// Next returns the forward link of i.
func (a *Arena[T]) Next(i Index) Index { return a.Node(i).Next }

// Prev returns the backward link of i.
func (a *Arena[T]) Prev(i Index) Index { return a.Node(i).Prev }

// Live returns how many nodes are currently allocated.
func (a *Arena[T]) Live() int { return a.live }

// Allocs returns the total number of allocations served.
func (a *Arena[T]) Allocs() uint64 { return a.allocs }

// Frees returns the total number of nodes released.
func (a *Arena[T]) Frees() uint64 { return a.frees }

// Slots returns how many node slots the arena has reserved, live or free.
func (a *Arena[T]) Slots() int { return a.nodes.Len() }
