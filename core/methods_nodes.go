// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns node values in insertion order.
//
// Concurrency:
//   - Mutations under g.mu write lock; queries under read lock.

package core

import "fmt"

// AddNode inserts v with degree zero if it is not already a node.
//
// Implementation:
//   - Stage 1: Under the write lock, scan inner-list heads for v.
//   - Stage 2: If absent, append a new inner list [v].
//
// Behavior highlights:
//   - Idempotent by default; with WithStrictNodes a duplicate reports
//     ErrDuplicateNode and leaves the graph untouched.
//
// Errors:
//   - ErrDuplicateNode: v exists and WithStrictNodes is enabled.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph[T]) AddNode(v T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.entry(v) != nil {
		if g.cfg.strictNodes {
			return fmt.Errorf("%w: %v", ErrDuplicateNode, v)
		}
		return nil
	}
	g.newEntry(v)
	g.log().Debug("core: node added", "node", v)

	return nil
}

// RemoveNode deletes v's inner list and strips v from every other tail.
//
// Implementation:
//   - Stage 1: Acquire the write lock and verify presence.
//   - Stage 2: Walk the outer list once with a cursor: erase v's own inner list
//     via RemoveCursor, and remove the first occurrence of v from every other.
//
// Errors:
//   - ErrNodeNotFound: v is not a node.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph[T]) RemoveNode(v T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.entry(v) == nil {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, v)
	}

	stripped := 0
	for c := g.data.Begin(); c.Valid(); {
		if headOf(c.Value()) == v {
			c, _ = g.data.RemoveCursor(c)
			continue
		}
		if removeNeighbor(c.Value(), v) {
			stripped++
		}
		c = c.Next()
	}
	g.log().Debug("core: node removed", "node", v, "edges", stripped)

	return nil
}

// Contains reports whether v is a node. Being someone's neighbor is not enough.
//
// Complexity: O(V).
func (g *Graph[T]) Contains(v T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.entry(v) != nil
}

// Nodes returns every node value in insertion order.
//
// Complexity: O(V).
func (g *Graph[T]) Nodes() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, 0, g.data.Len())
	for e := range g.data.Values() {
		out = append(out, headOf(e))
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[T]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.data.Len()
}

// Degree returns the number of neighbors of v. A self-loop counts once.
//
// Errors:
//   - ErrNodeNotFound: v is not a node.
func (g *Graph[T]) Degree(v T) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.entry(v)
	if e == nil {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, v)
	}

	return e.Len() - 1, nil
}
