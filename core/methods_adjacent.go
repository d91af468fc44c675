// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries. Every result is a fresh copy; callers may
// mutate it without affecting the graph.

package core

import "github.com/katalvlaran/routegraph/dll"

// ConnectedNodes returns v's neighbors in insertion order, excluding v itself
// unless v carries a self-loop. An unknown v yields an empty list.
//
// Complexity: O(V + deg(v)).
func (g *Graph[T]) ConnectedNodes(v T) *dll.List[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.entry(v)
	if e == nil {
		return dll.New[T]()
	}

	return neighborsOf(e)
}

// AdjacencyList returns a snapshot of every inner list as [node, neighbor...],
// in node insertion order.
//
// Complexity: O(V + E).
func (g *Graph[T]) AdjacencyList() [][]T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]T, 0, g.data.Len())
	for e := range g.data.Values() {
		out = append(out, e.Slice())
	}

	return out
}
