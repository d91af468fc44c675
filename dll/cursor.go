// SPDX-License-Identifier: MIT
//
// File: cursor.go
// Role: Position handles for traversal and position-addressed removal.

package dll

// Cursor addresses one element of a List. The end marker is a cursor that
// holds no node. Cursors are plain values and compare with ==.
//
// A cursor stays valid until its element is removed. Removing any other
// element through RemoveAt/Remove/Pop* or Clear may invalidate it; the only
// removal that hands back a usable cursor is RemoveCursor.
type Cursor[T comparable] struct {
	list *List[T]
	n    *node[T]
}

// Begin returns a cursor to the first element, or End() when empty.
func (l *List[T]) Begin() Cursor[T] { return Cursor[T]{list: l, n: l.head} }

// Last returns a cursor to the last element, or End() when empty.
func (l *List[T]) Last() Cursor[T] { return Cursor[T]{list: l, n: l.tail} }

// End returns the end marker of l.
func (l *List[T]) End() Cursor[T] { return Cursor[T]{list: l} }

// CursorAt returns a cursor to index i (negative counts from the end).
//
// Errors:
//   - ErrOutOfRange: if i is outside [-Len(), Len()).
func (l *List[T]) CursorAt(i int) (Cursor[T], error) {
	idx, err := l.resolve(i)
	if err != nil {
		return l.End(), err
	}

	return Cursor[T]{list: l, n: l.nodeAt(idx)}, nil
}

// Valid reports whether c addresses a live element.
func (c Cursor[T]) Valid() bool {
	return c.n != nil && c.list != nil && c.n.list == c.list
}

// Value returns the addressed element, or the zero value for an invalid cursor.
func (c Cursor[T]) Value() T {
	if !c.Valid() {
		var zero T
		return zero
	}

	return c.n.value
}

// Set overwrites the addressed element in place.
//
// Errors:
//   - ErrInvalidCursor: if c is not Valid().
func (c Cursor[T]) Set(v T) error {
	if !c.Valid() {
		return ErrInvalidCursor
	}
	c.n.value = v

	return nil
}

// Next steps forward. Stepping past the last element yields the end marker;
// stepping from the end marker or a stale cursor stays at the end marker.
func (c Cursor[T]) Next() Cursor[T] {
	if !c.Valid() {
		return Cursor[T]{list: c.list}
	}

	return Cursor[T]{list: c.list, n: c.n.next}
}

// Prev steps backward. Stepping from the end marker yields the last
// element, so backward loops can start at End().Prev().
func (c Cursor[T]) Prev() Cursor[T] {
	if c.list == nil {
		return c
	}
	if c.n == nil {
		return Cursor[T]{list: c.list, n: c.list.tail}
	}
	if c.n.list != c.list {
		return Cursor[T]{list: c.list}
	}

	return Cursor[T]{list: c.list, n: c.n.prev}
}
