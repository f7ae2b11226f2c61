package linkedqueue

import "github.com/i5heu/GoSeqLists/pkg/linkedlist"

// LinkedQueue is an unbounded FIFO queue on a singly linked list: pushes go
// to the tracked tail, pops come from the head.
type LinkedQueue[T any] struct {
	list *linkedlist.LinkedList[T]
}

// New returns an empty LinkedQueue.
func New[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{list: linkedlist.New[T]()}
}

func (q *LinkedQueue[T]) Push(elem T)          { q.list.Push(elem) }
func (q *LinkedQueue[T]) PopFront() (T, bool)  { return q.list.PopFront() }
func (q *LinkedQueue[T]) PeekFront() (T, bool) { return q.list.PeekFront() }
func (q *LinkedQueue[T]) Len() int             { return q.list.Len() }

// Release frees every queued node.
func (q *LinkedQueue[T]) Release() { q.list.Release() }
