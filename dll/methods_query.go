// SPDX-License-Identifier: MIT
//
// File: methods_query.go
// Role: Read access: indexed lookup, boundary peeks, membership, snapshots.

package dll

import "fmt"

// At returns the element at index i (negative counts from the end).
//
// Errors:
//   - ErrOutOfRange: if i is outside [-Len(), Len()).
//
// Complexity: O(min(i, Len()-i)).
func (l *List[T]) At(i int) (T, error) {
	idx, err := l.resolve(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.nodeAt(idx).value, nil
}

// Set overwrites the element at index i in place.
//
// Errors:
//   - ErrOutOfRange: if i is outside [-Len(), Len()).
func (l *List[T]) Set(i int, v T) error {
	idx, err := l.resolve(i)
	if err != nil {
		return err
	}
	l.nodeAt(idx).value = v

	return nil
}

// Front returns the first element.
//
// Errors:
//   - ErrEmptyContainer: if the list is empty.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}

	return l.head.value, nil
}

// Back returns the last element.
//
// Errors:
//   - ErrEmptyContainer: if the list is empty.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyContainer
	}

	return l.tail.value, nil
}

// Contains reports whether some element equals v.
//
// Complexity: O(n), stops at the first match.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	if l == nil {
		return -1
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}

	return -1
}

// Slice returns the elements in order as a fresh slice (never nil).
func (l *List[T]) Slice() []T {
	if l == nil {
		return []T{}
	}
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// String formats the list like a slice, e.g. "[a b c]".
func (l *List[T]) String() string {
	return fmt.Sprint(l.Slice())
}
