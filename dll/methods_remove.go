// SPDX-License-Identifier: MIT
//
// File: methods_remove.go
// Role: Removal by index, by cursor, by value, and at the boundaries.
// Invariants:
//   - Every unlinked node has next/prev/list cleared exactly once.
//   - head/tail are repaired whenever a boundary node is removed.

package dll

// unlink detaches n from l and returns its successor.
func (l *List[T]) unlink(n *node[T]) *node[T] {
	next := n.next
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next, n.prev, n.list = nil, nil, nil
	l.size--

	return next
}

// RemoveAt removes the element at index i (negative counts from the end).
//
// Errors:
//   - ErrOutOfRange: if i is outside [-Len(), Len()).
//
// Complexity: O(min(i, Len()-i)).
func (l *List[T]) RemoveAt(i int) error {
	idx, err := l.resolve(i)
	if err != nil {
		return err
	}
	l.unlink(l.nodeAt(idx))

	return nil
}

// RemoveCursor removes the element addressed by c and returns a cursor to
// the following element, or End() if c addressed the last one. This is the
// only removal that leaves the caller with a usable cursor, which makes
// loop-and-erase safe:
//
//	for c := l.Begin(); c.Valid(); {
//		if drop(c.Value()) {
//			c, _ = l.RemoveCursor(c)
//			continue
//		}
//		c = c.Next()
//	}
//
// Errors:
//   - ErrInvalidCursor: c is End(), belongs to another list, or its node was already removed.
//
// Complexity: O(1).
func (l *List[T]) RemoveCursor(c Cursor[T]) (Cursor[T], error) {
	if c.list != l || c.n == nil || c.n.list != l {
		return l.End(), ErrInvalidCursor
	}

	return Cursor[T]{list: l, n: l.unlink(c.n)}, nil
}

// Remove deletes elements equal to v, scanning front to back. With
// onlyFirst only the first match is removed. It returns the number of
// removed elements.
//
// Complexity: O(n).
func (l *List[T]) Remove(v T, onlyFirst bool) int {
	removed := 0
	for n := l.head; n != nil; {
		if n.value != v {
			n = n.next
			continue
		}
		n = l.unlink(n)
		removed++
		if onlyFirst {
			break
		}
	}

	return removed
}

// PopFront removes and returns the first element.
//
// Errors:
//   - ErrEmptyContainer: if the list is empty.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	v := l.head.value
	l.unlink(l.head)

	return v, nil
}

// PopBack removes and returns the last element.
//
// Errors:
//   - ErrEmptyContainer: if the list is empty.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	v := l.tail.value
	l.unlink(l.tail)

	return v, nil
}
