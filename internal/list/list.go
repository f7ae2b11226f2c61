package list

import "iter"

// ListValidationInterface is a *type constraint* shared by every list layout.
// L is the concrete list type so that PartitionFunc can hand back the same
// layout. We never store lists in this interface at runtime; it only checks
// signatures at compile time.
type ListValidationInterface[T any, L any] interface {
	// Push appends an element at the end in amortized O(1).
	Push(T)

	// Len returns the number of elements.
	Len() int

	// All returns a restartable forward iterator over the current elements.
	All() iter.Seq[T]

	// PartitionFunc consumes the list and returns a list holding the same
	// elements, those comparing less than the original first element before
	// all the others. The receiver is left empty.
	PartitionFunc(cmp func(a, b T) int) L

	// Concatenate moves every element of other after the receiver's last
	// element and leaves other empty.
	Concatenate(other L)

	// Release drops every element and all storage.
	Release()
}

// StackValidationInterface is the constraint for LIFO consumers.
type StackValidationInterface[T any] interface {
	Push(T)

	// Pop removes and returns the last pushed element, or false if empty.
	Pop() (T, bool)

	// Peek returns the last pushed element without removing it.
	Peek() (T, bool)

	Len() int
}

// IsPartitioned reports whether seq splits at some point k such that every
// element before k compares less than pivot and every element from k on does
// not.
func IsPartitioned[T any](seq iter.Seq[T], pivot T, cmp func(a, b T) int) bool {
	inUpper := false
	for v := range seq {
		less := cmp(v, pivot) < 0
		if inUpper && less {
			return false
		}
		if !less {
			inUpper = true
		}
	}
	return true
}
