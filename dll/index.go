// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Index resolution and node lookup.

package dll

import "fmt"

// resolve maps a possibly negative index onto [0, Len()).
func (l *List[T]) resolve(i int) (int, error) {
	if i < 0 {
		i += l.size
	}
	if i < 0 || i >= l.size {
		return 0, outOfRange(i, l.size)
	}

	return i, nil
}

// resolveInsert maps a possibly negative insertion point onto [0, Len()].
// Len() itself means "append".
func (l *List[T]) resolveInsert(i int) (int, error) {
	if i < 0 {
		i += l.size
	}
	if i < 0 || i > l.size {
		return 0, outOfRange(i, l.size)
	}

	return i, nil
}

// nodeAt returns the node at resolved index i, walking from the closer end.
// Caller guarantees 0 <= i < l.size.
func (l *List[T]) nodeAt(i int) *node[T] {
	var n *node[T]
	if i < l.size/2 {
		n = l.head
		for k := 0; k < i; k++ {
			n = n.next
		}

		return n
	}

	n = l.tail
	for k := l.size - 1; k > i; k-- {
		n = n.prev
	}

	return n
}

func outOfRange(i, size int) error {
	return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, size)
}
