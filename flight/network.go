// SPDX-License-Identifier: MIT

package flight

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/core"
)

// Network is an undirected flight graph. It is safe for concurrent use.
type Network struct {
	g *core.Graph[City]
}

// NewNetwork returns an empty network. Options are passed to core.NewGraph.
func NewNetwork(opts ...core.GraphOption) *Network {
	return &Network{g: core.NewGraph[City](opts...)}
}

// AddRoute records a flight between from and to, adding either city if needed.
func (n *Network) AddRoute(from, to City) error {
	if err := n.g.AddEdge(from, to); err != nil {
		return fmt.Errorf("flight: add route %s -> %s: %w", from, to, err)
	}

	return nil
}

// Has reports whether c is part of the network.
func (n *Network) Has(c City) bool { return n.g.Contains(c) }

// Connections returns the cities reachable from c in one hop, in the order
// the routes were added. An unknown city has no connections.
func (n *Network) Connections(c City) []City {
	return n.g.ConnectedNodes(c).Slice()
}

// Validate checks that both endpoints of a requested trip exist.
func (n *Network) Validate(start, end City) error {
	if !n.g.Contains(start) {
		return fmt.Errorf("%w: %s", ErrUnknownCity, start)
	}
	if !n.g.Contains(end) {
		return fmt.Errorf("%w: %s", ErrUnknownCity, end)
	}

	return nil
}

// Reachable lists the cities reachable from start within maxHops flights,
// nearest first, excluding start itself. maxHops of 0 means unlimited.
func (n *Network) Reachable(ctx context.Context, start City, maxHops int) ([]City, error) {
	res, err := bfs.BFS(ctx, n.g, start, bfs.WithMaxDepth[City](maxHops))
	if err != nil {
		if errors.Is(err, bfs.ErrStartNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCity, start)
		}
		return nil, err
	}

	return res.Order[1:], nil
}

// Graph exposes the underlying graph for search algorithms.
func (n *Network) Graph() *core.Graph[City] { return n.g }
