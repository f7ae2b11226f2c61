package linkedlist

import (
	"cmp"
	"iter"
	"slices"

	"github.com/i5heu/GoSeqLists/internal/arena"
)

// LinkedList is a singly linked list with a tracked tail, giving O(1) push at
// the back and O(1) pop at the front. There is no pop from the back: the
// chain only links forward.
//
// Nodes live in an arena.Arena. Lists that share an arena can splice each
// other's nodes in O(1); see NewIn.
//
// The zero value is not usable; use New or NewIn.
type LinkedList[T any] struct {
	arena *arena.Arena[T]
	head  arena.Index
	tail  arena.Index
	len   int
}

// New returns an empty list with its own arena.
func New[T any]() *LinkedList[T] {
	return NewIn(arena.New[T]())
}

// NewIn returns an empty list allocating its nodes from a.
func NewIn[T any](a *arena.Arena[T]) *LinkedList[T] {
	return &LinkedList[T]{arena: a, head: arena.Nil, tail: arena.Nil}
}

// FromSeq builds a list holding every element of seq in order.
func FromSeq[T any](seq iter.Seq[T]) *LinkedList[T] {
	l := New[T]()
	for v := range seq {
		l.Push(v)
	}
	return l
}

// Of builds a list from its arguments.
func Of[T any](elems ...T) *LinkedList[T] {
	return FromSeq(slices.Values(elems))
}

// Arena returns the arena the list allocates from.
func (l *LinkedList[T]) Arena() *arena.Arena[T] { return l.arena }

// Len returns the number of elements.
func (l *LinkedList[T]) Len() int { return l.len }

// Push appends elem at the tail.
func (l *LinkedList[T]) Push(elem T) {
	l.appendNode(l.arena.Alloc(elem))
}

// PushFront inserts elem before the head.
func (l *LinkedList[T]) PushFront(elem T) {
	i := l.arena.Alloc(elem)
	l.arena.Node(i).Next = l.head
	l.head = i
	if l.tail == arena.Nil {
		l.tail = i
	}
	l.len++
}

// PopFront removes and returns the head element, or false if the list is
// empty.
func (l *LinkedList[T]) PopFront() (t T, ok bool) {
	if l.head == arena.Nil {
		return
	}
	i := l.head
	l.head = l.arena.Next(i)
	if l.head == arena.Nil {
		l.tail = arena.Nil
	}
	l.len--
	return l.arena.Free(i), true
}

// PeekFront returns the head element without removing it.
func (l *LinkedList[T]) PeekFront() (t T, ok bool) {
	if l.head == arena.Nil {
		return
	}
	return *l.arena.Elem(l.head), true
}

// All iterates from head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != arena.Nil; i = l.arena.Next(i) {
			if !yield(*l.arena.Elem(i)) {
				return
			}
		}
	}
}

// appendNode links the unlinked node i after the tail.
func (l *LinkedList[T]) appendNode(i arena.Index) {
	l.arena.Node(i).Next = arena.Nil
	if l.tail == arena.Nil {
		l.head = i
	} else {
		l.arena.Node(l.tail).Next = i
	}
	l.tail = i
	l.len++
}

// Concatenate moves other's chain after l's tail and leaves other empty.
// When both lists share an arena, or l is empty, this is an O(1) splice;
// otherwise the nodes are moved into l's arena one by one.
func (l *LinkedList[T]) Concatenate(other *LinkedList[T]) {
	if other == l {
		panic("linkedlist: concatenate with itself")
	}
	if other == nil || other.head == arena.Nil {
		return
	}
	if other.arena != l.arena && l.head == arena.Nil {
		// l has no nodes of its own, so it can take over other's arena.
		l.arena = other.arena
	}
	if other.arena != l.arena {
		for {
			v, ok := other.PopFront()
			if !ok {
				return
			}
			l.Push(v)
		}
	}

	if l.tail == arena.Nil {
		l.head = other.head
	} else {
		l.arena.Node(l.tail).Next = other.head
	}
	l.tail = other.tail
	l.len += other.len
	other.head, other.tail, other.len = arena.Nil, arena.Nil, 0
}

// PartitionFunc detaches the head as pivot and relinks every other node,
// in one pass, into a list of elements less than the pivot or a list of the
// rest. The result is less + pivot + rest, so encounter order is kept on both
// sides. No element is copied. l is left empty.
func (l *LinkedList[T]) PartitionFunc(cmp func(a, b T) int) *LinkedList[T] {
	less := NewIn(l.arena)
	if l.head == arena.Nil {
		return less
	}
	geq := NewIn(l.arena)

	pivot := l.head
	p := *l.arena.Elem(pivot)
	for i := l.arena.Next(pivot); i != arena.Nil; {
		next := l.arena.Next(i)
		if cmp(*l.arena.Elem(i), p) < 0 {
			less.appendNode(i)
		} else {
			geq.appendNode(i)
		}
		i = next
	}
	l.head, l.tail, l.len = arena.Nil, arena.Nil, 0

	less.appendNode(pivot)
	less.Concatenate(geq)
	return less
}

// Partition is PartitionFunc with the natural ordering.
func Partition[T cmp.Ordered](l *LinkedList[T]) *LinkedList[T] {
	return l.PartitionFunc(cmp.Compare[T])
}

// Release frees every node back to the arena.
func (l *LinkedList[T]) Release() {
	for i := l.head; i != arena.Nil; {
		next := l.arena.Next(i)
		l.arena.Free(i)
		i = next
	}
	l.head, l.tail, l.len = arena.Nil, arena.Nil, 0
}
