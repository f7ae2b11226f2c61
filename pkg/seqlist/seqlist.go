package seqlist

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/i5heu/GoSeqLists/internal/block"
)

// SeqList is a sequential list: a growable contiguous buffer with elements
// packed from offset 0. Pushing reallocates to twice the capacity when the
// buffer is full; the buffer never shrinks.
//
// A SeqList is not safe for concurrent use. Passing a list to Concatenate or
// InsertList, or calling PartitionFunc, hands its storage over and leaves it
// empty.
type SeqList[T any] struct {
	block block.Block[T]
	len   int
}

// New returns an empty list. No storage is allocated until the first push.
func New[T any]() *SeqList[T] {
	return &SeqList[T]{}
}

// FromSeq builds a list holding every element of seq in order.
func FromSeq[T any](seq iter.Seq[T]) *SeqList[T] {
	l := New[T]()
	for v := range seq {
		l.Push(v)
	}
	return l
}

// Of builds a list from its arguments.
func Of[T any](elems ...T) *SeqList[T] {
	return FromSeq(slices.Values(elems))
}

// Len returns the number of elements, 0 for a nil list.
func (l *SeqList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// Cap returns the number of slots currently allocated.
func (l *SeqList[T]) Cap() int { return l.block.Cap() }

// Push appends elem in amortized O(1).
func (l *SeqList[T]) Push(elem T) {
	if l.len == l.block.Cap() {
		l.block.Grow()
	}
	l.block.Slots()[l.len] = elem
	l.len++
}

// Pop removes and returns the last element, or false if the list is empty.
// The vacated slot is zeroed.
func (l *SeqList[T]) Pop() (t T, ok bool) {
	if l.len == 0 {
		return
	}
	l.len--
	s := l.block.Slots()
	t = s[l.len]
	var zero T
	s[l.len] = zero
	return t, true
}

// Peek returns the last element without removing it.
func (l *SeqList[T]) Peek() (t T, ok bool) {
	if l.len == 0 {
		return
	}
	return l.block.Slots()[l.len-1], true
}

// PeekMut returns a pointer to the last element. The pointer is invalidated
// by the next growth.
func (l *SeqList[T]) PeekMut() (*T, bool) {
	if l.len == 0 {
		return nil, false
	}
	return &l.block.Slots()[l.len-1], true
}

// Slice exposes the live range [0, Len()) without copying. Writes through the
// slice are visible to the list until the next growth.
func (l *SeqList[T]) Slice() []T {
	return l.block.Slots()[:l.len]
}

// At returns the i-th element. Panics if out of bounds.
func (l *SeqList[T]) At(i int) T {
	l.checkBounds(i)
	return l.block.Slots()[i]
}

// Set overwrites the i-th element. Panics if out of bounds.
func (l *SeqList[T]) Set(i int, t T) {
	l.checkBounds(i)
	l.block.Slots()[i] = t
}

// All iterates over the elements from first to last.
func (l *SeqList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for _, t := range l.Slice() {
			if !yield(t) {
				return
			}
		}
	}
}

// Backward iterates over the elements from last to first.
func (l *SeqList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		s := l.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Concatenate moves every element of other to the end of l. other is left
// empty with its storage released.
func (l *SeqList[T]) Concatenate(other *SeqList[T]) {
	if other == l {
		panic("seqlist: concatenate with itself")
	}
	if other == nil {
		return
	}
	l.block.GrowTo(l.len + other.len)
	copy(l.block.Slots()[l.len:], other.Slice())
	l.len += other.len
	other.Release()
}

// InsertList moves every element of other into l starting at pos, shifting
// the elements at and after pos to the right. other is left empty. Panics if
// pos is outside [0, Len()].
func (l *SeqList[T]) InsertList(other *SeqList[T], pos int) {
	if other == l {
		panic("seqlist: insert list into itself")
	}
	if pos < 0 || pos > l.len {
		panic(fmt.Sprintf("seqlist: insert position %d out of bounds with length %d", pos, l.len))
	}
	if other == nil {
		return
	}
	n := other.len
	l.block.GrowTo(l.len + n)
	s := l.block.Slots()
	copy(s[pos+n:l.len+n], s[pos:l.len])
	copy(s[pos:], other.Slice())
	l.len += n
	other.Release()
}

// PartitionFunc rearranges the list around its first element p so that every
// element comparing less than p precedes p and every other element follows
// it. It is the in-place Hoare step: relative order inside each side is not
// kept. The returned list owns the storage; l is left empty.
func (l *SeqList[T]) PartitionFunc(cmp func(a, b T) int) *SeqList[T] {
	out := &SeqList[T]{block: l.block, len: l.len}
	l.block = block.Block[T]{}
	l.len = 0
	hoare(out.Slice(), cmp)
	return out
}

// Partition is PartitionFunc with the natural ordering. It must not be a
// method, otherwise SeqList would be constrained to ordered elements.
func Partition[T cmp.Ordered](l *SeqList[T]) *SeqList[T] {
	return l.PartitionFunc(cmp.Compare[T])
}

func hoare[T any](s []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	pivot := s[0]
	less := func(t T) bool { return cmp(t, pivot) < 0 }

	l, r := 1, len(s)-1
	for {
		if l > r {
			// Everything after the pivot is smaller.
			s[0], s[r] = s[r], s[0]
			return
		}
		if !less(s[l]) {
			break
		}
		l++
	}
	for {
		if r <= 0 {
			return
		}
		if less(s[r]) {
			break
		}
		r--
	}
	for {
		for less(s[l]) {
			l++
		}
		for !less(s[r]) {
			r--
		}
		if l >= r {
			break
		}
		s[l], s[r] = s[r], s[l]
		l++
		r--
	}
	s[0], s[r] = s[r], s[0]
}

// Release drops every element and the backing storage.
func (l *SeqList[T]) Release() {
	l.block.Release()
	l.len = 0
}

// String formats the live elements like a slice.
func (l *SeqList[T]) String() string {
	return fmt.Sprint(l.Slice())
}

func (l *SeqList[T]) checkBounds(i int) {
	if i < 0 || i >= l.len {
		panic(fmt.Sprintf("seqlist: index %d out of bounds with length %d", i, l.len))
	}
}
