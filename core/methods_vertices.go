// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

// AddVertex inserts v if missing (idempotent).
//
// A new vertex starts with an empty successor set and is appended to the
// deterministic vertex order. Adding an existing vertex is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(v)
}

// addVertexLocked is AddVertex without locking; caller holds mu.
func (g *Graph[T]) addVertexLocked(v T) {
	if _, exists := g.adjacency[v]; exists {
		return // no-op for existing vertex
	}
	g.adjacency[v] = &successors[T]{set: make(map[T]struct{})}
	g.order = append(g.order, v)
}

// HasVertex reports whether v exists.
// Complexity: O(1).
func (g *Graph[T]) HasVertex(v T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]
	return ok
}

// Vertices returns a copy of all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph[T]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
