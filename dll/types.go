// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: List, node and sentinel errors.

package dll

import "errors"

// Sentinel errors for list operations.
var (
	// ErrOutOfRange indicates an index outside [-Len(), Len()).
	ErrOutOfRange = errors.New("dll: index out of range")

	// ErrEmptyContainer indicates a pop or peek on an empty list.
	ErrEmptyContainer = errors.New("dll: container is empty")

	// ErrInvalidCursor indicates a cursor that does not address a live node of the list.
	ErrInvalidCursor = errors.New("dll: invalid cursor")
)

// node is a single storage cell. The list owns the chain through next;
// prev is a back-link into the same chain. list is cleared on unlink so
// stale cursors can be detected.
type node[T comparable] struct {
	value T
	next  *node[T]
	prev  *node[T]
	list  *List[T]
}

// List is a doubly linked list of comparable values.
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns a list holding values in order.
//
// Complexity: O(len(values)).
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	var v T
	for _, v = range values {
		l.PushBack(v)
	}

	return l
}

// Len returns the number of elements. A nil list has length zero.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.size
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.Len() == 0 }

// Clear unlinks every node. Outstanding cursors become invalid.
//
// Complexity: O(n); each node is detached exactly once.
func (l *List[T]) Clear() {
	var next *node[T]
	for n := l.head; n != nil; n = next {
		next = n.next
		n.next, n.prev, n.list = nil, nil, nil
	}
	l.head, l.tail, l.size = nil, nil, 0
}
