// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves vertex and successor insertion order.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: flags, vertices, and edges.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[T]{
		graphFlags: g.graphFlags,
		order:      make([]T, len(g.order)),
		adjacency:  make(map[T]*successors[T], len(g.adjacency)),
		edgeCount:  g.edgeCount,
	}
	copy(clone.order, g.order)
	for v, succ := range g.adjacency {
		cp := &successors[T]{
			set:   make(map[T]struct{}, len(succ.set)),
			order: make([]T, len(succ.order)),
		}
		copy(cp.order, succ.order)
		for w := range succ.set {
			cp.set[w] = struct{}{}
		}
		clone.adjacency[v] = cp
	}

	return clone
}

// Clear removes all vertices and edges but keeps the flags.
// Complexity: O(1).
func (g *Graph[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.order = nil
	g.adjacency = make(map[T]*successors[T])
	g.edgeCount = 0
}
