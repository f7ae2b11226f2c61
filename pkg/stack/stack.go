package stack

import (
	"github.com/i5heu/GoSeqLists/pkg/cirlist"
	"github.com/i5heu/GoSeqLists/pkg/seqlist"
)

// SeqStack is a LIFO stack on a sequential list.
type SeqStack[T any] struct {
	list seqlist.SeqList[T]
}

// NewSeq returns an empty SeqStack.
func NewSeq[T any]() *SeqStack[T] {
	return &SeqStack[T]{}
}

func (s *SeqStack[T]) Push(elem T)         { s.list.Push(elem) }
func (s *SeqStack[T]) Pop() (T, bool)      { return s.list.Pop() }
func (s *SeqStack[T]) Peek() (T, bool)     { return s.list.Peek() }
func (s *SeqStack[T]) PeekMut() (*T, bool) { return s.list.PeekMut() }
func (s *SeqStack[T]) Len() int            { return s.list.Len() }

// List exposes the stack contents bottom first.
func (s *SeqStack[T]) List() *seqlist.SeqList[T] { return &s.list }

// LinkedStack is a LIFO stack on a circular doubly linked list: the top of
// the stack is the ring's tail. The zero value is not usable; use NewLinked.
type LinkedStack[T any] struct {
	list *cirlist.CirList[T]
}

// NewLinked returns an empty LinkedStack.
func NewLinked[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{list: cirlist.New[T]()}
}

func (s *LinkedStack[T]) Push(elem T)     { s.list.Push(elem) }
func (s *LinkedStack[T]) Pop() (T, bool)  { return s.list.Pop() }
func (s *LinkedStack[T]) Peek() (T, bool) { return s.list.PeekBack() }
func (s *LinkedStack[T]) Len() int        { return s.list.Len() }

// Release frees every node of the stack.
func (s *LinkedStack[T]) Release() { s.list.Release() }
