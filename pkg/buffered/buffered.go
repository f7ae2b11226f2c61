// Package buffered is the baseline FIFO the other queues are measured
// against: a plain buffered Go channel.
package buffered

// BufferedQueue is an unbounded queue on a buffered channel. When the
// channel is full it is replaced by one of twice the size and the queued
// values are moved over, so Push never blocks. One value may sit in a
// lookahead slot so that PeekFront can work without a receive.
type BufferedQueue[T any] struct {
	ch        chan T
	head      T
	hasHead   bool
	minBuffer int
}

// New returns an empty queue whose channel starts with bufferSize slots.
func New[T any](bufferSize uint64) *BufferedQueue[T] {
	// A zero-capacity channel is unbuffered and would block the first Push.
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &BufferedQueue[T]{
		ch:        make(chan T, bufferSize),
		minBuffer: int(bufferSize),
	}
}

// Push enqueues val, growing the channel when it is full.
func (q *BufferedQueue[T]) Push(val T) {
	if len(q.ch) == cap(q.ch) {
		q.grow()
	}
	q.ch <- val
}

func (q *BufferedQueue[T]) grow() {
	bigger := make(chan T, 2*cap(q.ch))
	for len(q.ch) > 0 {
		bigger <- <-q.ch
	}
	q.ch = bigger
}

// PopFront dequeues the oldest value, or returns false if there is none.
func (q *BufferedQueue[T]) PopFront() (val T, ok bool) {
	if q.hasHead {
		val = q.head
		var zero T
		q.head, q.hasHead = zero, false
		return val, true
	}
	select {
	case val = <-q.ch:
		return val, true
	default:
		return val, false
	}
}

// PeekFront returns the oldest value without dequeuing it.
func (q *BufferedQueue[T]) PeekFront() (val T, ok bool) {
	if !q.hasHead {
		select {
		case q.head = <-q.ch:
			q.hasHead = true
		default:
			return val, false
		}
	}
	return q.head, true
}

// Len returns how many values are queued.
func (q *BufferedQueue[T]) Len() int {
	n := len(q.ch)
	if q.hasHead {
		n++
	}
	return n
}

// Cap returns the current channel capacity.
func (q *BufferedQueue[T]) Cap() int { return cap(q.ch) }

// Release drops every value and shrinks the channel back to its initial size.
func (q *BufferedQueue[T]) Release() {
	var zero T
	q.head, q.hasHead = zero, false
	q.ch = make(chan T, q.minBuffer)
}
