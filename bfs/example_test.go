// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3x3 grid.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph[string]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	res, err := bfs.BFS(context.Background(), g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleResult_PathTo finds the fewest-hop route between two airports.
func ExampleResult_PathTo() {
	g := core.NewGraph[string]()
	_ = g.AddEdge("NYC", "ORD")
	_ = g.AddEdge("ORD", "DEN")
	_ = g.AddEdge("DEN", "SFO")
	_ = g.AddEdge("NYC", "LAX")
	_ = g.AddEdge("LAX", "SFO")

	res, _ := bfs.BFS(context.Background(), g, "NYC")
	path, _ := res.PathTo("SFO")
	fmt.Println(path, res.Depth["SFO"])
	// Output:
	// [NYC LAX SFO] 2
}
