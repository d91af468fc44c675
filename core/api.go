// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only policy getters and the Stats snapshot.

package core

// GraphStats is a read-only snapshot of policy flags and sizes.
type GraphStats struct {
	AllowsLoops bool
	StrictNodes bool

	NodeCount     int
	EdgeCount     int // undirected edges, loops included
	LoopCount     int
	IsolatedCount int // nodes with no neighbors
	MaxDegree     int
}

// Looped reports whether self-loops are permitted by policy.
//
// Complexity: O(1).
func (g *Graph[T]) Looped() bool { return g.cfg.allowLoops }

// StrictNodes reports whether duplicate AddNode calls return ErrDuplicateNode.
//
// Complexity: O(1).
func (g *Graph[T]) StrictNodes() bool { return g.cfg.strictNodes }

// Stats produces a consistent snapshot of policy flags and graph sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan every inner list once, accumulating degree statistics.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph[T]) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.cfg.allowLoops,
		StrictNodes: g.cfg.strictNodes,
		NodeCount:   g.data.Len(),
	}
	edges, loops := g.countEdges()
	stats.EdgeCount = edges + loops
	stats.LoopCount = loops

	var deg int
	for e := range g.data.Values() {
		deg = e.Len() - 1
		if deg == 0 {
			stats.IsolatedCount++
		}
		if deg > stats.MaxDegree {
			stats.MaxDegree = deg
		}
	}

	return &stats
}
