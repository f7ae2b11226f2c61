package queue

// QueueValidationInterface is a *type constraint* for the FIFO containers. It
// is only used at compile time to check signatures.
type QueueValidationInterface[T any] interface {
	// Push adds an element at the back. Queues here are unbounded, so it never blocks.
	Push(T)

	// PopFront removes and returns the oldest element.
	// If the queue is empty it returns an empty T and false, otherwise true.
	PopFront() (T, bool)

	// PeekFront returns the oldest element without removing it.
	PeekFront() (T, bool)

	// Len returns how many elements are currently queued.
	Len() int
}
