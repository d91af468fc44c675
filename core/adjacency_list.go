// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Lock-free internals over the outer list of inner lists.
// Callers hold g.mu (read or write as appropriate).

package core

import "github.com/katalvlaran/routegraph/dll"

// headOf returns the node value of an inner list. Inner lists are never empty.
func headOf[T comparable](entry *dll.List[T]) T {
	v, _ := entry.Front()
	return v
}

// entryCursor locates the inner list headed by v, or returns the end marker.
//
// Complexity: O(V).
func (g *Graph[T]) entryCursor(v T) dll.Cursor[*dll.List[T]] {
	c := g.data.Begin()
	for ; c.Valid(); c = c.Next() {
		if headOf(c.Value()) == v {
			break
		}
	}

	return c
}

// entry returns the inner list headed by v, or nil.
func (g *Graph[T]) entry(v T) *dll.List[T] {
	c := g.entryCursor(v)
	if !c.Valid() {
		return nil
	}

	return c.Value()
}

// newEntry appends a degree-zero inner list for v and returns it.
func (g *Graph[T]) newEntry(v T) *dll.List[T] {
	e := dll.New(v)
	g.data.PushBack(e)

	return e
}

// hasNeighbor reports whether v appears in the tail (index ≥ 1) of entry.
func hasNeighbor[T comparable](entry *dll.List[T], v T) bool {
	for c := entry.Begin().Next(); c.Valid(); c = c.Next() {
		if c.Value() == v {
			return true
		}
	}

	return false
}

// removeNeighbor deletes the first tail occurrence of v from entry.
// For a self-loop v is also the head, so the scan starts at index 1.
func removeNeighbor[T comparable](entry *dll.List[T], v T) bool {
	if headOf(entry) != v {
		return entry.Remove(v, true) == 1
	}
	for c := entry.Begin().Next(); c.Valid(); c = c.Next() {
		if c.Value() == v {
			_, err := entry.RemoveCursor(c)
			return err == nil
		}
	}

	return false
}

// neighborsOf copies the tail of entry.
func neighborsOf[T comparable](entry *dll.List[T]) *dll.List[T] {
	out := entry.Clone()
	_, _ = out.PopFront()

	return out
}

// link adds the edge {a,b}, creating missing endpoints, and repairs a
// half-present edge. Both inner lists are resolved before either is
// mutated. It reports whether anything changed.
func (g *Graph[T]) link(a, b T) bool {
	ea, eb := g.entry(a), g.entry(b)
	changed := false
	if ea == nil {
		ea, changed = g.newEntry(a), true
	}
	if a == b {
		eb = ea
	} else if eb == nil {
		eb, changed = g.newEntry(b), true
	}

	if !hasNeighbor(ea, b) {
		ea.PushBack(b)
		changed = true
	}
	if a != b && !hasNeighbor(eb, a) {
		eb.PushBack(a)
		changed = true
	}

	return changed
}

// cloneData deep-copies the outer and inner lists.
func (g *Graph[T]) cloneData() *dll.List[*dll.List[T]] {
	out := dll.New[*dll.List[T]]()
	for e := range g.data.Values() {
		out.PushBack(e.Clone())
	}

	return out
}
