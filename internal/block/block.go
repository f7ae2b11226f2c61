package block

import (
	"errors"
	"math"
)

// maxSlots bounds the slot count so that doubling can never overflow int.
const maxSlots = math.MaxInt32

// ErrAllocationTooLarge is the panic value when a block would need more
// than maxSlots slots.
var ErrAllocationTooLarge = errors.New("block: allocation too large")

// Block is a reallocatable region of element slots owned by exactly one
// container. It starts with no slots, grows by doubling and never shrinks.
// The zero value is an empty block ready to grow.
type Block[T any] struct {
	buf []T
}

// Cap returns the number of slots.
func (b *Block[T]) Cap() int { return len(b.buf) }

// Slots exposes every slot, live or not.
func (b *Block[T]) Slots() []T { return b.buf }

// Grow doubles the slot count (1 for an empty block) and preserves the
// contents of every existing slot at the same offset.
func (b *Block[T]) Grow() {
	newCap := 1
	if len(b.buf) > 0 {
		newCap = len(b.buf) * 2
	}
	b.resize(newCap)
}

// GrowTo doubles until at least n slots are available.
func (b *Block[T]) GrowTo(n int) {
	for len(b.buf) < n {
		b.Grow()
	}
}

func (b *Block[T]) resize(newCap int) {
	if newCap > maxSlots {
		panic(ErrAllocationTooLarge)
	}
	buf := make([]T, newCap)
	copy(buf, b.buf)
	b.buf = buf
}

// Clear zeroes the slots in [from, to) so they no longer keep values alive.
func (b *Block[T]) Clear(from, to int) {
	clear(b.buf[from:to])
}

// Release drops every slot. The block may be grown again afterwards.
func (b *Block[T]) Release() {
	b.buf = nil
}
