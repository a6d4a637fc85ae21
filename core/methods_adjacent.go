// File: methods_adjacent.go
// Role: Adjacency queries (successor lists and out-degree).
// Determinism:
//   - Neighbors() returns successors in the order their edges were added.
// Concurrency:
//   - Read queries under mu read lock; results are copies.

package core

import "fmt"

// Neighbors returns the successors of v in edge insertion order.
// Each successor appears once. The returned slice is a copy and may be
// modified by the caller.
//
// Errors:
//   - ErrVertexNotFound if v is absent.
//
// Complexity: O(d) where d is the out-degree of v.
func (g *Graph[T]) Neighbors(v T) ([]T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	succ, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", v, ErrVertexNotFound)
	}
	out := make([]T, len(succ.order))
	copy(out, succ.order)

	return out, nil
}

// OutDegree returns the number of successors of v.
//
// Errors:
//   - ErrVertexNotFound if v is absent.
func (g *Graph[T]) OutDegree(v T) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	succ, ok := g.adjacency[v]
	if !ok {
		return 0, fmt.Errorf("OutDegree(%v): %w", v, ErrVertexNotFound)
	}

	return len(succ.order), nil
}
