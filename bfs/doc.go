// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node to its distance (hops) from start
//   - Parent: map from node to its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or "no limit" (d==0).
//
// Edges carry no weight, so Result.PathTo yields a fewest-hop route, not a
// cheapest or fastest one.
//
// Determinism
//
//	core.Graph.ConnectedNodes returns neighbors in insertion order and BFS
//	enqueues them in that order, so the visit sequence is reproducible for a
//	given construction sequence.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) neighbor visits, plus the O(V) head lookup core.Graph
//     performs per ConnectedNodes call.
//   - Memory: O(V) for the queue, Depth, Parent and visited set.
//
// Usage
//
//	res, err := bfs.BFS(ctx, g, start,
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "skip" }),
//	    bfs.WithOnVisit(func(node string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start node does not exist.
//   - ErrOptionViolation  for an invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo for an unreached node.
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
