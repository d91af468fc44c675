// SPDX-License-Identifier: MIT
//
// File: methods_equal.go
// Role: Structural equality, independent of node and neighbor order.

package core

import "github.com/katalvlaran/routegraph/dll"

// sameEntry pairs inner lists with the same head and the same neighbor multiset.
// It is an equivalence relation, which makes first-fit matching exact.
func sameEntry[T comparable](x, y *dll.List[T]) bool {
	return headOf(x) == headOf(y) && x.UnorderedEqual(y)
}

// Equal reports whether g and other have the same node set and, per node,
// the same neighbor set.
//
// Implementation:
//   - Stage 1: Snapshot other under its read lock (no nested locking).
//   - Stage 2: Under g's read lock, greedily match each inner list of g to the
//     first unmatched inner list of the snapshot with the same head and an
//     unordered-equal tail, removing matches as they are found.
//
// Notes:
//   - Heads are unique within a graph, so each inner list has at most one
//     candidate; keying on the head also rules out false positives between
//     distinct nodes whose closed neighborhoods coincide.
//
// Complexity:
//   - Time O(V² · deg²) worst case, Space O(V + E) for the snapshot.
func (g *Graph[T]) Equal(other *Graph[T]) bool {
	if g == other {
		return true
	}
	if other == nil {
		return g.NodeCount() == 0
	}

	other.mu.RLock()
	snapshot := other.cloneData()
	other.mu.RUnlock()

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.data.UnorderedEqualFunc(snapshot, sameEntry[T])
}
