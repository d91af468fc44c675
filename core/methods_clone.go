// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration and every inner list.
//
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[T](g.options()...)
	clone.data.Assign(g.cloneData())

	return clone
}

// Clear removes every node and edge but preserves configuration.
//
// Complexity: O(V).
func (g *Graph[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.data.Clear()
	g.log().Debug("core: graph cleared")
}
