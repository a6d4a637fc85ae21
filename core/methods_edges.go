// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() is ordered by source insertion order, then successor insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

// AddEdge adds the directed edge from→to.
//
// Steps:
//  1. Reject from==to unless loops are allowed (ErrLoopNotAllowed).
//  2. Insert missing endpoints as vertices (endpoints before edge).
//  3. Insert to into from's successor set; a repeated edge is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(from, to T) error {
	if from == to && !g.allowLoops { // loop constraint
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	succ := g.adjacency[from]
	if _, dup := succ.set[to]; dup {
		return nil
	}
	succ.set[to] = struct{}{}
	succ.order = append(succ.order, to)
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph[T]) HasEdge(from, to T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	succ, ok := g.adjacency[from]
	if !ok {
		return false
	}
	_, ok = succ.set[to]

	return ok
}

// Edges returns every edge, grouped by source in vertex insertion order and,
// within a source, in edge insertion order.
// Complexity: O(V + E).
func (g *Graph[T]) Edges() []Edge[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[T], 0, g.edgeCount)
	for _, from := range g.order {
		for _, to := range g.adjacency[from].order {
			out = append(out, Edge[T]{From: from, To: to})
		}
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
