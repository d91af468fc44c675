// SPDX-License-Identifier: MIT
//
// File: methods_insert.go
// Role: Insertion at the boundaries and at arbitrary indices.

package dll

// PushFront inserts v as the first element.
//
// Complexity: O(1).
func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, list: l}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.size++
}

// PushBack inserts v as the last element.
//
// Complexity: O(1).
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v, list: l}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Insert places v so that it occupies index i afterwards.
//
// Implementation:
//   - Stage 1: Resolve i onto [0, Len()]; negative values count from the end.
//   - Stage 2: Delegate to PushFront/PushBack at the boundaries.
//   - Stage 3: Otherwise link the new node in front of the current holder of index i.
//
// Errors:
//   - ErrOutOfRange: if i is outside [-Len(), Len()].
//
// Complexity:
//   - Time O(min(i, Len()-i)), Space O(1).
func (l *List[T]) Insert(i int, v T) error {
	idx, err := l.resolveInsert(i)
	if err != nil {
		return err
	}

	switch idx {
	case 0:
		l.PushFront(v)
		return nil
	case l.size:
		l.PushBack(v)
		return nil
	}

	at := l.nodeAt(idx)
	n := &node[T]{value: v, list: l, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++

	return nil
}
