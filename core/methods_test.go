// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/core"
)

// TestGraph_CityScenario walks the three-city example end to end.
func TestGraph_CityScenario(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(NodeNYC, NodeLAX))
	require.NoError(t, g.AddEdge(NodeLAX, NodeSFO))

	assert.True(t, g.Contains(NodeNYC))
	got := g.ConnectedNodes(NodeLAX).Slice()
	assert.ElementsMatch(t, []string{NodeNYC, NodeSFO}, got)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	RequireSymmetric(t, g)
}

// TestGraph_EqualIgnoresInsertionOrder checks equality across both axes of ordering.
func TestGraph_EqualIgnoresInsertionOrder(t *testing.T) {
	g1 := BuildGraph(t, [2]string{NodeA, NodeB}, [2]string{NodeA, NodeC})
	g2 := BuildGraph(t, [2]string{NodeA, NodeC}, [2]string{NodeA, NodeB})
	require.True(t, g1.Equal(g2))
	require.True(t, g2.Equal(g1))

	// Different node order on the outer list as well.
	g3 := BuildGraph(t, [2]string{NodeC, NodeA}, [2]string{NodeB, NodeA})
	require.True(t, g1.Equal(g3))
	require.True(t, g1.Equal(g1))
}

// TestGraph_EqualTriangle uses a triangle, where every closed neighborhood is
// the same multiset {A,B,C}, so matching must key on the node itself.
func TestGraph_EqualTriangle(t *testing.T) {
	g1 := BuildGraph(t, [2]string{NodeA, NodeB}, [2]string{NodeB, NodeC}, [2]string{NodeC, NodeA})
	g2 := BuildGraph(t, [2]string{NodeC, NodeB}, [2]string{NodeA, NodeC}, [2]string{NodeB, NodeA})

	adj := g1.AdjacencyList()
	require.Equal(t, []string{NodeA, NodeB, NodeC}, adj[0])
	require.Equal(t, []string{NodeB, NodeA, NodeC}, adj[1])
	require.Equal(t, []string{NodeC, NodeB, NodeA}, g2.AdjacencyList()[0])

	require.True(t, g1.Equal(g2))
	require.True(t, g2.Equal(g1))

	// Same shape on a different node set is not equal.
	g3 := BuildGraph(t, [2]string{NodeA, NodeB}, [2]string{NodeB, NodeD}, [2]string{NodeD, NodeA})
	require.False(t, g1.Equal(g3))
}

func TestGraph_EqualDetectsDifferences(t *testing.T) {
	base := BuildGraph(t, [2]string{NodeA, NodeB}, [2]string{NodeA, NodeC})

	cases := map[string]*core.Graph[string]{
		"extra edge":    BuildGraph(t, [2]string{NodeA, NodeB}, [2]string{NodeA, NodeC}, [2]string{NodeB, NodeC}),
		"moved edge":    BuildGraph(t, [2]string{NodeA, NodeB}, [2]string{NodeB, NodeC}),
		"renamed node":  BuildGraph(t, [2]string{NodeA, NodeB}, [2]string{NodeA, NodeD}),
		"empty":         core.NewGraph[string](),
		"isolated node": BuildGraph(t, [2]string{NodeA, NodeB}),
	}
	require.NoError(t, cases["isolated node"].AddNode(NodeC))

	for name, other := range cases {
		t.Run(name, func(t *testing.T) {
			require.False(t, base.Equal(other))
			require.False(t, other.Equal(base))
		})
	}

	require.True(t, core.NewGraph[string]().Equal(nil))
	require.False(t, base.Equal(nil))
}

// TestGraph_EqualTracksLoops checks that self-loops take part in equality.
func TestGraph_EqualTracksLoops(t *testing.T) {
	// g1: A–B plus loops on both. Inner lists {A,B,A} and {B,A,B}.
	g1 := core.NewGraph[string](core.WithLoops())
	require.NoError(t, g1.AddEdge(NodeA, NodeB))
	require.NoError(t, g1.AddEdge(NodeA, NodeA))
	require.NoError(t, g1.AddEdge(NodeB, NodeB))

	// g2: same nodes, only the A–B edge.
	g2 := core.NewGraph[string](core.WithLoops())
	require.NoError(t, g2.AddEdge(NodeA, NodeB))

	require.False(t, g1.Equal(g2))
	require.NoError(t, g2.AddEdge(NodeB, NodeB))
	require.NoError(t, g2.AddEdge(NodeA, NodeA))
	require.True(t, g1.Equal(g2))
}

func TestGraph_SelfLoopPolicy(t *testing.T) {
	g := core.NewGraph[string]()
	MustErrorIs(t, g.AddEdge(NodeA, NodeA), core.ErrLoopNotAllowed, "AddEdge(A,A) default")
	require.False(t, g.Contains(NodeA), "rejected loop must not create the node")

	lg := NewGraphFull()
	require.NoError(t, lg.AddEdge(NodeA, NodeA))
	require.NoError(t, lg.AddEdge(NodeA, NodeA))
	require.Equal(t, []string{NodeA}, lg.ConnectedNodes(NodeA).Slice(), "loop stored once")
	deg, err := lg.Degree(NodeA)
	require.NoError(t, err)
	require.Equal(t, 1, deg)
	require.True(t, lg.HasEdge(NodeA, NodeA))
	require.Equal(t, 1, lg.EdgeCount())

	require.NoError(t, lg.RemoveEdge(NodeA, NodeA))
	require.Equal(t, 0, lg.ConnectedNodes(NodeA).Len())
}

// TestGraph_RemoveLoopKeepsNode removes a self-loop next to an ordinary edge.
func TestGraph_RemoveLoopKeepsNode(t *testing.T) {
	g := NewGraphFull()
	require.NoError(t, g.AddEdge(NodeA, NodeA))
	require.NoError(t, g.AddEdge(NodeA, NodeB))

	require.NoError(t, g.RemoveEdge(NodeA, NodeA))
	require.True(t, g.Contains(NodeA))
	require.Equal(t, [][]string{{NodeA, NodeB}, {NodeB, NodeA}}, g.AdjacencyList())

	require.NoError(t, g.AddEdge(NodeA, NodeA))
	require.NoError(t, g.RemoveEdge(NodeA, NodeB))
	require.Equal(t, [][]string{{NodeA, NodeA}, {NodeB}}, g.AdjacencyList())
	RequireSymmetric(t, g)
}

func TestGraph_StrictNodes(t *testing.T) {
	g := NewGraphFull()
	require.NoError(t, g.AddNode(NodeA))
	MustErrorIs(t, g.AddNode(NodeA), core.ErrDuplicateNode, "AddNode(A) twice")
	require.Equal(t, 1, g.NodeCount())

	// AddEdge on existing endpoints is unaffected by strict admission.
	require.NoError(t, g.AddEdge(NodeA, NodeB))
	require.NoError(t, g.AddEdge(NodeA, NodeB))
}

func TestGraph_DegreeAndNodes(t *testing.T) {
	g := BuildGraph(t, [2]string{NodeA, NodeB}, [2]string{NodeA, NodeC}, [2]string{NodeD, NodeA})
	deg, err := g.Degree(NodeA)
	require.NoError(t, err)
	require.Equal(t, 3, deg)

	_, err = g.Degree(NodeX)
	MustErrorIs(t, err, core.ErrNodeNotFound, "Degree(X)")

	if diff := cmp.Diff([]string{NodeA, NodeB, NodeC, NodeD}, g.Nodes()); diff != "" {
		t.Fatalf("Nodes() insertion order mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{
		{NodeA, NodeB, NodeC, NodeD},
		{NodeB, NodeA},
		{NodeC, NodeA},
		{NodeD, NodeA},
	}
	if diff := cmp.Diff(want, g.AdjacencyList()); diff != "" {
		t.Fatalf("AdjacencyList() mismatch (-want +got):\n%s", diff)
	}
}

func TestGraph_HasEdge(t *testing.T) {
	g := BuildGraph(t, [2]string{NodeA, NodeB})
	require.True(t, g.HasEdge(NodeA, NodeB))
	require.True(t, g.HasEdge(NodeB, NodeA))
	require.False(t, g.HasEdge(NodeA, NodeA), "a node is not its own neighbor")
	require.False(t, g.HasEdge(NodeX, NodeA))
	require.False(t, g.HasEdge(NodeA, NodeX))
}

func TestGraph_StatsSnapshot(t *testing.T) {
	g := NewGraphFull()
	require.NoError(t, g.AddEdge(NodeA, NodeB))
	require.NoError(t, g.AddEdge(NodeA, NodeC))
	require.NoError(t, g.AddEdge(NodeC, NodeC))
	require.NoError(t, g.AddNode(NodeD))

	want := &core.GraphStats{
		AllowsLoops:   true,
		StrictNodes:   true,
		NodeCount:     4,
		EdgeCount:     3,
		LoopCount:     1,
		IsolatedCount: 1,
		MaxDegree:     2,
	}
	require.Equal(t, want, g.Stats())
	require.True(t, g.Looped())
	require.True(t, g.StrictNodes())
}

func TestGraph_CloneAndClear(t *testing.T) {
	g := NewGraphFull()
	require.NoError(t, g.AddEdge(NodeA, NodeB))
	clone := g.Clone()
	require.True(t, clone.Equal(g))
	require.True(t, clone.Looped(), "clone must carry policy")

	require.NoError(t, clone.AddEdge(NodeB, NodeC))
	require.False(t, g.Contains(NodeC), "clone must be deep")

	g.Clear()
	require.Equal(t, 0, g.NodeCount())
	require.True(t, g.Looped(), "Clear preserves policy")
	require.Equal(t, 3, clone.NodeCount())
}

func TestGraph_Subgraph(t *testing.T) {
	g := BuildGraph(t,
		[2]string{NodeA, NodeB},
		[2]string{NodeB, NodeC},
		[2]string{NodeC, NodeD},
		[2]string{NodeD, NodeA},
	)
	sub := g.Subgraph(NodeA, NodeB, NodeC, NodeX)
	want := BuildGraph(t, [2]string{NodeA, NodeB}, [2]string{NodeB, NodeC})
	require.True(t, sub.Equal(want))
	require.Equal(t, 4, g.NodeCount(), "input must not be mutated")
	RequireSymmetric(t, sub)
}

func TestGraph_FilterEdges(t *testing.T) {
	g := BuildGraph(t,
		[2]string{NodeA, NodeB},
		[2]string{NodeA, NodeC},
		[2]string{NodeB, NodeC},
	)
	g.FilterEdges(func(a, b string) bool { return a != NodeC && b != NodeC })

	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge(NodeA, NodeB))
	require.True(t, g.Contains(NodeC), "FilterEdges keeps nodes")
	RequireSymmetric(t, g)
}

func TestGraph_ZeroValueIsUsable(t *testing.T) {
	var g core.Graph[int]
	require.NoError(t, g.AddEdge(1, 2))
	require.True(t, g.HasEdge(2, 1))
	MustErrorIs(t, g.AddEdge(3, 3), core.ErrLoopNotAllowed, "zero-value loop policy")
}
