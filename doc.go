// SPDX-License-Identifier: MIT

// Package routegraph is the container substrate of a flight-route planner:
// a generic doubly linked list, a stack built on it, and a thread-safe
// undirected adjacency-list graph whose nodes are arbitrary comparable values.
//
// Layout:
//
//	dll/      generic doubly linked list with index and cursor access
//	stack/    LIFO stack over dll.List
//	core/     undirected graph, list of lists, atomic edges, YAML encoding
//	bfs/      breadth-first traversal driven by core.Graph.ConnectedNodes
//	flight/   City node type and the Network queries a planner needs
//	metrics/  Prometheus collector for graph size
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdge("NYC", "LAX")
//	_ = g.AddEdge("LAX", "SFO")
//	fmt.Println(g.ConnectedNodes("LAX")) // [NYC SFO]
//
// Path-cost search, data-file parsing and result output belong to the
// planner and are not part of this module.
package routegraph
