package seqqueue

import (
	"iter"
	"slices"

	"github.com/i5heu/GoSeqLists/internal/block"
)

// SeqQueue is an unbounded FIFO queue on a ring buffer. Live elements occupy
// the slots [head, tail) modulo the capacity, which is always a power of two
// so that indices can be reduced with a mask.
//
// head == tail means empty, so one slot is always kept free: the buffer
// doubles as soon as len+1 reaches the capacity. The zero value is an empty
// queue with no slots.
type SeqQueue[T any] struct {
	block block.Block[T]
	head  uint
	tail  uint
}

// New returns an empty queue with a single slot.
func New[T any]() *SeqQueue[T] {
	q := &SeqQueue[T]{}
	q.block.Grow()
	return q
}

// FromSeq builds a queue holding every element of seq, first element at the
// front.
func FromSeq[T any](seq iter.Seq[T]) *SeqQueue[T] {
	q := New[T]()
	for v := range seq {
		q.Push(v)
	}
	return q
}

// Of builds a queue from its arguments.
func Of[T any](elems ...T) *SeqQueue[T] {
	return FromSeq(slices.Values(elems))
}

func (q *SeqQueue[T]) mask() uint { return uint(q.block.Cap()) - 1 }

// Len returns the number of queued elements.
func (q *SeqQueue[T]) Len() int {
	if q.block.Cap() == 0 {
		return 0
	}
	return int((q.tail - q.head) & q.mask())
}

// Cap returns the number of slots in the ring.
func (q *SeqQueue[T]) Cap() int { return q.block.Cap() }

// Empty reports whether the queue holds no element.
func (q *SeqQueue[T]) Empty() bool { return q.head == q.tail }

func (q *SeqQueue[T]) full() bool {
	return q.Len()+1 >= q.block.Cap()
}

// Push enqueues elem at the tail in amortized O(1).
func (q *SeqQueue[T]) Push(elem T) {
	for q.full() {
		oldCap := uint(q.block.Cap())
		q.block.Grow()
		q.reorganise(oldCap)
	}
	q.block.Slots()[q.tail] = elem
	q.tail = (q.tail + 1) & q.mask()
}

// reorganise restores a single run after the ring doubled from oldCap slots.
// Growth keeps every slot below oldCap in place, so a wrapped run
// [head, oldCap) + [0, tail) is unwrapped by moving its upper part into the
// new upper half.
func (q *SeqQueue[T]) reorganise(oldCap uint) {
	if q.head <= q.tail {
		return
	}
	s := q.block.Slots()
	newHead := q.head + oldCap
	copy(s[newHead:newHead+(oldCap-q.head)], s[q.head:oldCap])
	q.block.Clear(int(q.head), int(oldCap))
	q.head = newHead
}

// PopFront dequeues the front element, or returns false if the queue is
// empty. The vacated slot is zeroed.
func (q *SeqQueue[T]) PopFront() (t T, ok bool) {
	if q.Empty() {
		return
	}
	s := q.block.Slots()
	t = s[q.head]
	var zero T
	s[q.head] = zero
	q.head = (q.head + 1) & q.mask()
	return t, true
}

// PeekFront returns the front element without removing it.
func (q *SeqQueue[T]) PeekFront() (t T, ok bool) {
	if q.Empty() {
		return
	}
	return q.block.Slots()[q.head], true
}

// PeekFrontMut returns a pointer to the front element. The pointer is
// invalidated by the next Push that grows the ring.
func (q *SeqQueue[T]) PeekFrontMut() (*T, bool) {
	if q.Empty() {
		return nil, false
	}
	return &q.block.Slots()[q.head], true
}

// All iterates from front to back without dequeuing.
func (q *SeqQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q.block.Cap() == 0 {
			return
		}
		s := q.block.Slots()
		for i := q.head; i != q.tail; i = (i + 1) & q.mask() {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Release drops every element and the ring. The queue stays usable.
func (q *SeqQueue[T]) Release() {
	q.block.Release()
	q.head, q.tail = 0, 0
}
