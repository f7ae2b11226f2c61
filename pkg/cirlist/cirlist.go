package cirlist

import (
	"cmp"
	"iter"
	"slices"

	"github.com/i5heu/GoSeqLists/internal/arena"
)

// CirList is a circular doubly linked list addressed by a single head node.
// The node before head is the tail. An empty list has no head; there is no
// sentinel node.
//
// Iteration runs forward from head and stops when it gets back to head.
// Reverse iteration is deliberately not provided by this layout.
//
// The zero value is not usable; use New or NewIn.
type CirList[T any] struct {
	arena *arena.Arena[T]
	head  arena.Index
	len   int
}

// New returns an empty list with its own arena.
func New[T any]() *CirList[T] {
	return NewIn(arena.New[T]())
}

// NewIn returns an empty list allocating its nodes from a.
func NewIn[T any](a *arena.Arena[T]) *CirList[T] {
	return &CirList[T]{arena: a, head: arena.Nil}
}

// FromSeq builds a list holding every element of seq in order.
func FromSeq[T any](seq iter.Seq[T]) *CirList[T] {
	l := New[T]()
	for v := range seq {
		l.Push(v)
	}
	return l
}

// Of builds a list from its arguments.
func Of[T any](elems ...T) *CirList[T] {
	return FromSeq(slices.Values(elems))
}

// Arena returns the arena the list allocates from.
func (l *CirList[T]) Arena() *arena.Arena[T] { return l.arena }

// Len returns the number of elements.
func (l *CirList[T]) Len() int { return l.len }

// Push inserts elem just before head, making it the new tail.
func (l *CirList[T]) Push(elem T) {
	l.pushNode(l.arena.Alloc(elem))
}

// pushNode links the detached node i in as the new tail.
func (l *CirList[T]) pushNode(i arena.Index) {
	n := l.arena.Node(i)
	if l.head == arena.Nil {
		n.Next, n.Prev = i, i
		l.head = i
	} else {
		tail := l.arena.Prev(l.head)
		n.Next, n.Prev = l.head, tail
		l.arena.Node(tail).Next = i
		l.arena.Node(l.head).Prev = i
	}
	l.len++
}

// Pop removes and returns the tail element, or false if the list is empty.
func (l *CirList[T]) Pop() (t T, ok bool) {
	if l.head == arena.Nil {
		return
	}
	tail := l.arena.Prev(l.head)
	if tail == l.head {
		l.head = arena.Nil
	} else {
		newTail := l.arena.Prev(tail)
		l.arena.Node(newTail).Next = l.head
		l.arena.Node(l.head).Prev = newTail
	}
	l.len--
	return l.arena.Free(tail), true
}

// PeekBack returns the tail element without removing it.
func (l *CirList[T]) PeekBack() (t T, ok bool) {
	if l.head == arena.Nil {
		return
	}
	return *l.arena.Elem(l.arena.Prev(l.head)), true
}

// PeekFront returns the head element without removing it.
func (l *CirList[T]) PeekFront() (t T, ok bool) {
	if l.head == arena.Nil {
		return
	}
	return *l.arena.Elem(l.head), true
}

// All iterates once around the ring starting at head.
func (l *CirList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == arena.Nil {
			return
		}
		i := l.head
		for {
			if !yield(*l.arena.Elem(i)) {
				return
			}
			i = l.arena.Next(i)
			if i == l.head {
				return
			}
		}
	}
}

// Concatenate splices other's ring in after l's tail and leaves other empty.
// With a shared arena only the four links at the two splice points change.
// An empty l takes over other's arena. Otherwise the nodes are moved into
// l's arena.
func (l *CirList[T]) Concatenate(other *CirList[T]) {
	if other == l {
		panic("cirlist: concatenate with itself")
	}
	if other == nil || other.head == arena.Nil {
		return
	}
	if other.arena != l.arena && l.head == arena.Nil {
		l.arena = other.arena
	}
	if other.arena != l.arena {
		for v := range other.All() {
			l.Push(v)
		}
		other.Release()
		return
	}

	if l.head == arena.Nil {
		l.head = other.head
	} else {
		tail := l.arena.Prev(l.head)
		otherTail := l.arena.Prev(other.head)
		l.arena.Node(tail).Next = other.head
		l.arena.Node(other.head).Prev = tail
		l.arena.Node(otherTail).Next = l.head
		l.arena.Node(l.head).Prev = otherTail
	}
	l.len += other.len
	other.head, other.len = arena.Nil, 0
}

// PartitionFunc walks the ring once and moves each node into one of two new
// rings: the pivot (head) and every node not less than it go to one, the
// smaller nodes to the other. The smaller ring is then spliced in front and
// its head becomes the result's head. l is left empty.
func (l *CirList[T]) PartitionFunc(cmp func(a, b T) int) *CirList[T] {
	less := NewIn(l.arena)
	if l.head == arena.Nil {
		return less
	}
	geq := NewIn(l.arena)

	head := l.head
	p := *l.arena.Elem(head)
	next := l.arena.Next(head)
	geq.pushNode(head)
	for i := next; i != head; i = next {
		next = l.arena.Next(i)
		if cmp(*l.arena.Elem(i), p) >= 0 {
			geq.pushNode(i)
		} else {
			less.pushNode(i)
		}
	}
	l.head, l.len = arena.Nil, 0

	less.Concatenate(geq)
	return less
}

// Partition is PartitionFunc with the natural ordering.
func Partition[T cmp.Ordered](l *CirList[T]) *CirList[T] {
	return l.PartitionFunc(cmp.Compare[T])
}

// Release walks the ring from head back to head and frees every node.
func (l *CirList[T]) Release() {
	if l.head == arena.Nil {
		return
	}
	i := l.head
	for {
		next := l.arena.Next(i)
		l.arena.Free(i)
		if next == l.head {
			break
		}
		i = next
	}
	l.head, l.len = arena.Nil, 0
}
