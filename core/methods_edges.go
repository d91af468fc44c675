// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount/FilterEdges.
//
// Concurrency:
//   - Both endpoints are updated under one write lock, so no reader observes
//     a half-linked edge.

package core

import "fmt"

// AddEdge links a and b in both directions.
//
// Implementation:
//   - Stage 1: Reject a == b unless WithLoops is enabled.
//   - Stage 2: Under the write lock, resolve both inner lists, creating missing endpoints.
//   - Stage 3: Append b to a's tail and a to b's tail, each only if absent.
//
// Behavior highlights:
//   - Adding an existing edge is a no-op.
//   - An edge present on only one side is completed rather than ignored.
//   - A self-loop stores v once in its own tail.
//
// Errors:
//   - ErrLoopNotAllowed: a == b without WithLoops.
//
// Complexity:
//   - Time O(V + deg(a) + deg(b)), Space O(1).
func (g *Graph[T]) AddEdge(a, b T) error {
	if a == b && !g.cfg.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.link(a, b) {
		g.log().Debug("core: edge added", "a", a, "b", b)
	}

	return nil
}

// RemoveEdge unlinks a and b on both sides. A missing edge is a no-op.
//
// Errors:
//   - ErrNodeNotFound: a or b is not a node; nothing is modified.
//
// Complexity:
//   - Time O(V + deg(a) + deg(b)), Space O(1).
func (g *Graph[T]) RemoveEdge(a, b T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ea, eb := g.entry(a), g.entry(b)
	if ea == nil {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, a)
	}
	if eb == nil {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, b)
	}

	removed := removeNeighbor(ea, b)
	if a != b {
		removed = removeNeighbor(eb, a) || removed
	}
	if removed {
		g.log().Debug("core: edge removed", "a", a, "b", b)
	}

	return nil
}

// HasEdge reports whether b is a neighbor of a. Unknown nodes yield false.
//
// Complexity: O(V + deg(a)).
func (g *Graph[T]) HasEdge(a, b T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ea := g.entry(a)

	return ea != nil && hasNeighbor(ea, b)
}

// EdgeCount returns the number of undirected edges; a self-loop counts once.
//
// Complexity: O(V + E).
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, loops := g.countEdges()

	return edges + loops
}

// countEdges returns non-loop edges and loops. Caller holds g.mu.
func (g *Graph[T]) countEdges() (edges, loops int) {
	ends := 0
	for e := range g.data.Values() {
		n := e.Len() - 1
		if hasNeighbor(e, headOf(e)) {
			loops++
			n--
		}
		ends += n
	}

	return ends / 2, loops
}

// FilterEdges removes every edge {a,b} for which pred(a, b) is false, where
// a is the endpoint whose inner list comes first. Nodes are kept.
//
// Implementation:
//   - Stage 1: Collect rejected pairs in one pass over the inner lists.
//   - Stage 2: Unlink each pair on both sides.
//
// Complexity:
//   - Time O(E·deg), Space O(rejected).
func (g *Graph[T]) FilterEdges(pred func(a, b T) bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	type pair struct{ a, b T }
	var drop []pair
	seen := make([]T, 0, g.data.Len())
	for e := range g.data.Values() {
		h := headOf(e)
		for c := e.Begin().Next(); c.Valid(); c = c.Next() {
			n := c.Value()
			if containsValue(seen, n) {
				continue // pair already judged from n's side
			}
			if !pred(h, n) {
				drop = append(drop, pair{h, n})
			}
		}
		seen = append(seen, h)
	}

	var p pair
	for _, p = range drop {
		removeNeighbor(g.entry(p.a), p.b)
		if p.a != p.b {
			removeNeighbor(g.entry(p.b), p.a)
		}
		g.log().Debug("core: edge filtered", "a", p.a, "b", p.b)
	}
}

func containsValue[T comparable](xs []T, v T) bool {
	var x T
	for _, x = range xs {
		if x == v {
			return true
		}
	}

	return false
}
