// SPDX-License-Identifier: MIT
//
// File: iter.go
// Role: range-over-func iterators. Mutating the list while ranging is
// undefined; use cursors and RemoveCursor for loop-and-erase.

package dll

import "iter"

// All yields (index, value) pairs front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Backward yields (index, value) pairs back to front, indices descending.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		i := l.size - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.value) {
				return
			}
			i--
		}
	}
}

// Values yields the elements front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
