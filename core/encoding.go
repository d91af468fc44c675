// SPDX-License-Identifier: MIT
//
// File: encoding.go
// Role: YAML encoding of a Graph as a sequence of node records:
//
//	- node: NYC
//	  neighbors: [LAX]
//	- node: LAX
//	  neighbors: [NYC, SFO]
//	- node: SFO
//	  neighbors: [LAX]

package core

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// nodeRecord is the YAML shape of one inner list.
type nodeRecord[T comparable] struct {
	Node      T   `yaml:"node"`
	Neighbors []T `yaml:"neighbors,flow"`
}

// MarshalYAML implements yaml.Marshaler.
func (g *Graph[T]) MarshalYAML() (interface{}, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]nodeRecord[T], 0, g.data.Len())
	for e := range g.data.Values() {
		tail := e.Slice()[1:]
		out = append(out, nodeRecord[T]{Node: headOf(e), Neighbors: tail})
	}

	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Records are replayed through
// the same linking logic as AddNode/AddEdge, so a neighbor listed on one side
// only still produces a symmetric edge and repeated records merge. The
// graph keeps its configuration; its previous topology is replaced only if
// the whole document is accepted.
//
// Errors:
//   - ErrLoopNotAllowed: a record lists itself as neighbor without WithLoops.
//   - Any yaml decoding error, wrapped.
func (g *Graph[T]) UnmarshalYAML(value *yaml.Node) error {
	var records []nodeRecord[T]
	if err := value.Decode(&records); err != nil {
		return fmt.Errorf("core: decode graph: %w", err)
	}

	staging := &Graph[T]{cfg: g.cfg}
	var (
		rec nodeRecord[T]
		n   T
	)
	for _, rec = range records {
		if staging.entry(rec.Node) == nil {
			staging.newEntry(rec.Node)
		}
		for _, n = range rec.Neighbors {
			if n == rec.Node && !g.cfg.allowLoops {
				return fmt.Errorf("%w: %v", ErrLoopNotAllowed, n)
			}
			staging.link(rec.Node, n)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.data.Assign(&staging.data)
	g.log().Debug("core: graph decoded", "nodes", g.data.Len())

	return nil
}
