// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dll"
)

// queueItem pairs a node with its BFS depth and its parent.
type queueItem[T comparable] struct {
	node   T
	depth  int
	parent T
	root   bool
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	graph   *core.Graph[T]
	opts    Options[T]
	ctx     context.Context
	queue   dll.List[queueItem[T]]
	visited map[T]bool
	res     *Result[T]
}

// BFS runs breadth-first search on g starting from start. Neighbors are
// expanded in the order core.Graph.ConnectedNodes returns them, so the visit
// order is reproducible. ctx is checked once per dequeue and once per
// neighbor; a nil ctx means context.Background().
func BFS[T comparable](ctx context.Context, g *core.Graph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		ctx:     ctx,
		visited: make(map[T]bool, n),
		res: &Result[T]{
			Order:  make([]T, 0, n),
			Depth:  make(map[T]int, n),
			Parent: make(map[T]T, n),
		},
	}

	w.enqueue(queueItem[T]{node: start, root: true})

	return w.res, w.loop()
}

// enqueue marks the node visited, records depth and parent, calls OnEnqueue
// and appends it to the queue.
func (w *walker[T]) enqueue(item queueItem[T]) {
	w.visited[item.node] = true
	w.res.Depth[item.node] = item.depth
	if !item.root {
		w.res.Parent[item.node] = item.parent
	}
	w.opts.OnEnqueue(item.node, item.depth)
	w.queue.PushBack(item)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for !w.queue.Empty() {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item, _ := w.queue.PopFront()
		w.opts.OnDequeue(item.node, item.depth)
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for nbr := range w.graph.ConnectedNodes(item.node).Values() {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(queueItem[T]{node: nbr, depth: next, parent: item.node})
	}

	return nil
}
