// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, options, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/routegraph/dll"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode on an existing node with WithStrictNodes enabled.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// discardLogger backs graphs built without WithLogger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// graphConfig holds construction-time policy. It is immutable after NewGraph.
type graphConfig struct {
	allowLoops  bool
	strictNodes bool
	logger      *slog.Logger
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(cfg *graphConfig)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(cfg *graphConfig) { cfg.allowLoops = true }
}

// WithStrictNodes makes AddNode report ErrDuplicateNode for existing nodes.
func WithStrictNodes() GraphOption {
	return func(cfg *graphConfig) { cfg.strictNodes = true }
}

// WithLogger routes Debug records about topology mutations to l.
// A nil logger keeps the default discard logger.
func WithLogger(l *slog.Logger) GraphOption {
	return func(cfg *graphConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// Graph is an undirected adjacency-list graph over comparable node values.
//
// mu guards data; every exported method takes it, so a *Graph may be shared
// between goroutines. The zero value is an empty graph with default policy.
type Graph[T comparable] struct {
	mu  sync.RWMutex
	cfg graphConfig

	// data holds one inner list per node: [node, neighbor...].
	data dll.List[*dll.List[T]]
}

// NewGraph creates an empty Graph. By default loops are rejected, duplicate
// AddNode is a silent no-op, and logging is discarded.
//
// Complexity: O(len(opts)).
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	g := &Graph[T]{}
	var opt GraphOption
	for _, opt = range opts {
		opt(&g.cfg)
	}

	return g
}

// log returns the configured logger or the discard logger.
func (g *Graph[T]) log() *slog.Logger {
	if g.cfg.logger == nil {
		return discardLogger
	}

	return g.cfg.logger
}

// options rebuilds the option list that reproduces g's configuration.
func (g *Graph[T]) options() []GraphOption {
	opts := []GraphOption{WithLogger(g.cfg.logger)}
	if g.cfg.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.cfg.strictNodes {
		opts = append(opts, WithStrictNodes())
	}

	return opts
}
