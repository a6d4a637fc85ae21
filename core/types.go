// Package core defines the central generic Graph and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// This file declares Graph, Edge, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a directed connection From→To, as reported by Graph.Edges.
type Edge[T comparable] struct {
	// From is the source vertex.
	From T

	// To is the destination vertex.
	To T
}

// graphFlags holds construction-time policy; it is immutable afterwards.
type graphFlags struct {
	allowLoops bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(f *graphFlags)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(f *graphFlags) { f.allowLoops = true }
}

// successors is the out-adjacency of one vertex: a set for O(1)
// membership plus the insertion order for deterministic iteration.
type successors[T comparable] struct {
	set   map[T]struct{}
	order []T
}

// Graph is the core in-memory directed graph.
//
// mu guards every field below it. order records vertex insertion order,
// adjacency maps each vertex to its successor set.
type Graph[T comparable] struct {
	mu sync.RWMutex

	// Configuration flags
	graphFlags

	// Storage
	order     []T
	adjacency map[T]*successors[T]
	edgeCount int
}

// GraphStats is a read-only snapshot of a Graph's flags and catalog sizes.
type GraphStats struct {
	AllowsLoops bool
	VertexCount int
	EdgeCount   int

	// SinkCount is the number of vertices with no successors.
	SinkCount int

	// MaxOutDegree is the largest successor-set size over all vertices.
	MaxOutDegree int
}

// NewGraph creates an empty directed Graph with the given options.
// By default self-loops are not allowed.
// Complexity: O(1)
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	g := &Graph[T]{
		adjacency: make(map[T]*successors[T]),
	}
	// Apply options
	for _, opt := range opts {
		opt(&g.graphFlags)
	}

	return g
}
