// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, generic adjacency-list Graph built on
// dll.List.
//
// The Graph G = (V,E) is undirected and stores, for every node, one inner
// list whose element 0 is the node itself and whose remaining elements are
// its neighbors:
//
//	outer: [ [A B C] ⇄ [B A] ⇄ [C A] ]
//
//	    B───A───C
//
// Invariants:
//
//   - Each node value is the head of at most one inner list.
//   - Edge {A,B} exists ⇔ B is in A's tail AND A is in B's tail.
//   - A neighbor appears at most once per inner list.
//   - Self-loops exist only with WithLoops(); a loop appears once in its
//     node's own tail.
//
// Node values are copied into neighbor lists; there are no back-pointers,
// so RemoveNode scans every inner list to strip the removed value.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits AddEdge(v, v); otherwise it returns ErrLoopNotAllowed.
//
//	– WithStrictNodes()
//	    Duplicate AddNode returns ErrDuplicateNode instead of a silent no-op.
//
//	– WithLogger(*slog.Logger)
//	    Receives Debug records for topology mutations. Default discards.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(v T) error                   // O(V)
//	RemoveNode(v T) error                // O(V+E), cascades into every tail
//	Contains(v T) bool                   // O(V), heads only
//
//	// Edge lifecycle
//	AddEdge(a, b T) error                // O(V+deg), creates missing endpoints
//	RemoveEdge(a, b T) error             // O(V+deg)
//	HasEdge(a, b T) bool                 // O(V+deg)
//
//	// Query
//	ConnectedNodes(v T) *dll.List[T]     // fresh copy of v's neighbors
//	Nodes() []T                          // insertion order
//	AdjacencyList() [][]T                // snapshot of every inner list
//	Degree(v T) (int, error)
//	NodeCount() int, EdgeCount() int, Stats() *GraphStats
//
//	// Whole-graph
//	Equal(other *Graph[T]) bool          // order-independent on both axes
//	Clone() *Graph[T], Clear(), Subgraph(keep ...T), FilterEdges(pred)
//
// Equality:
//
//	Two graphs are equal iff there is a bijection between their inner lists
//	pairing equal heads with equal neighbor multisets. It is computed by
//	greedy match-and-remove over a scratch copy; matching is keyed on the
//	head, so two distinct nodes with identical closed neighborhoods can never
//	be confused.
//
// Errors:
//
//	ErrNodeNotFound   – referenced node does not exist
//	ErrDuplicateNode  – AddNode of an existing node under WithStrictNodes
//	ErrLoopNotAllowed – self-loop when loops are disabled
//
//	RemoveNode and RemoveEdge report ErrNodeNotFound without touching the
//	graph, so callers that treat removal of an absent node as a no-op may
//	ignore the error.
package core
