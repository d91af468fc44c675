// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.

package core

// Subgraph returns the induced subgraph on keep: the kept nodes that exist
// in g, plus every edge of g with both endpoints kept. Node order follows g.
// Values in keep that are not nodes of g are ignored. The input graph is
// not mutated.
//
// Complexity: O(V · (deg + |keep|)).
func (g *Graph[T]) Subgraph(keep ...T) *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph[T](g.options()...)
	for e := range g.data.Values() {
		h := headOf(e)
		if !containsValue(keep, h) {
			continue
		}
		sub := out.newEntry(h)
		for c := e.Begin().Next(); c.Valid(); c = c.Next() {
			if containsValue(keep, c.Value()) {
				sub.PushBack(c.Value())
			}
		}
	}

	return out
}
