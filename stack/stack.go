// SPDX-License-Identifier: MIT

// Package stack provides a LIFO stack backed by dll.List.
//
// The top of the stack is the back of the underlying list, so Push, Pop
// and Peek are O(1). Pop and Peek on an empty stack return
// dll.ErrEmptyContainer.
package stack

import "github.com/katalvlaran/routegraph/dll"

// Stack is a LIFO stack. The zero value is an empty stack ready to use.
type Stack[T comparable] struct {
	data dll.List[T]
}

// New returns a stack with values pushed in order (the last value is on top).
func New[T comparable](values ...T) *Stack[T] {
	s := &Stack[T]{}
	var v T
	for _, v = range values {
		s.data.PushBack(v)
	}

	return s
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.data.Len() }

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.data.PushBack(v) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) { return s.data.PopBack() }

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) { return s.data.Back() }

// Clone returns an independent copy.
func (s *Stack[T]) Clone() *Stack[T] {
	out := &Stack[T]{}
	out.data.Assign(&s.data)

	return out
}

// Concat returns a new stack with other's elements stacked on top of s's.
func (s *Stack[T]) Concat(other *Stack[T]) *Stack[T] {
	out := s.Clone()
	out.Extend(other)

	return out
}

// Extend stacks copies of other's elements on top of s, bottom first.
func (s *Stack[T]) Extend(other *Stack[T]) {
	if other == nil {
		return
	}
	s.data.Extend(&other.data)
}

// Equal reports whether both stacks hold the same elements in the same order.
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	if other == nil {
		return s.Len() == 0
	}

	return s.data.Equal(&other.data)
}

// Slice returns the elements bottom to top.
func (s *Stack[T]) Slice() []T { return s.data.Slice() }
