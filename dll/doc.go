// SPDX-License-Identifier: MIT

// Package dll provides a generic doubly linked list with owned nodes,
// index addressing from either end, cursors that survive their own
// removal, and ordered/unordered structural equality.
//
// The list is the substrate for core.Graph: every adjacency entry is a
// *List[T] whose first element is the node and whose tail is its neighbors.
//
// Layout:
//
//	head ⇄ n1 ⇄ n2 ⇄ … ⇄ tail
//
//   - head.prev == nil, tail.next == nil
//   - Len()==0 ⇔ head==nil ⇔ tail==nil
//   - for adjacent a,b: a.next==b ⇔ b.prev==a
//
// Indexing:
//
//	At(0) is the first element, At(-1) the last. Valid indices are
//	[-Len(), Len()); anything else yields ErrOutOfRange. Lookups walk from
//	whichever end is closer, so they cost at most Len()/2 steps.
//
// Cursors:
//
//	A Cursor addresses one node. Cursors are invalidated by any removal
//	except RemoveCursor, which returns a cursor to the following element.
//	A cursor whose node was unlinked is rejected with ErrInvalidCursor.
//
// Concurrency:
//
//	List is not safe for concurrent use; callers synchronize externally
//	(core.Graph guards its lists with a single RWMutex).
//
// Errors:
//
//	ErrOutOfRange     - index outside [-Len(), Len()).
//	ErrEmptyContainer - pop/peek on an empty list.
//	ErrInvalidCursor  - cursor does not address a live node of this list.
package dll
