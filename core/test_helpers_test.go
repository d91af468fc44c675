// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for routegraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep graph-wide invariant checks in one auditable place.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/core"
)

// Common node values used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X" // never added by any test

	NodeNYC = "NYC"
	NodeLAX = "LAX"
	NodeSFO = "SFO"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// NewGraphFull RETURNS a Graph configured for broad contract coverage
// (loops and strict node admission enabled).
func NewGraphFull() *core.Graph[string] {
	return core.NewGraph[string](core.WithLoops(), core.WithStrictNodes())
}

// BuildGraph RETURNS a default graph with the given edges added in order.
func BuildGraph(t *testing.T, edges ...[2]string) *core.Graph[string] {
	t.Helper()

	g := core.NewGraph[string]()
	var e [2]string
	for _, e = range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]), "AddEdge(%s,%s)", e[0], e[1])
	}

	return g
}

// RequireSymmetric FAILS the test unless every stored neighbor relation is mirrored,
// no tail lists a neighbor twice, and every neighbor is itself a node.
func RequireSymmetric(t *testing.T, g *core.Graph[string]) {
	t.Helper()

	for _, row := range g.AdjacencyList() {
		require.NotEmpty(t, row, "inner lists must never be empty")
		node, tail := row[0], row[1:]
		seen := map[string]bool{}
		for _, n := range tail {
			require.False(t, seen[n], "%s lists %s twice", node, n)
			seen[n] = true
			require.True(t, g.Contains(n), "neighbor %s of %s must be a node", n, node)
			require.True(t, g.HasEdge(n, node), "edge %s-%s must be mirrored", node, n)
		}
	}
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	require.ErrorIs(t, err, target, op)
}
