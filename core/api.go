// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only public facade: policy getters, Stats, Equal and String.
// Policy:
//   - No mutation here.
//   - Equal never holds two graph locks at once.

package core

import (
	"fmt"
	"strings"
)

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
func (g *Graph[T]) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes.
//
// Complexity: O(V).
func (g *Graph[T]) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.order),
		EdgeCount:   g.edgeCount,
	}
	for _, succ := range g.adjacency {
		d := len(succ.order)
		if d == 0 {
			stats.SinkCount++
		}
		if d > stats.MaxOutDegree {
			stats.MaxOutDegree = d
		}
	}

	return &stats
}

// Equal reports whether g and other have the same vertex set and, for every
// vertex, the same successor set. Insertion order is ignored.
//
// A nil graph is only equal to another nil graph; Equal never panics.
// Complexity: O(V + E).
func (g *Graph[T]) Equal(other *Graph[T]) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}

	// Snapshot other first so that only one lock is held at a time.
	snapshot := other.successorSets()

	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.adjacency) != len(snapshot) {
		return false
	}
	for v, succ := range g.adjacency {
		theirs, ok := snapshot[v]
		if !ok || len(theirs) != len(succ.set) {
			return false
		}
		for w := range succ.set {
			if _, ok = theirs[w]; !ok {
				return false
			}
		}
	}

	return true
}

// successorSets copies the adjacency into plain sets under the read lock.
func (g *Graph[T]) successorSets() map[T]map[T]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[T]map[T]struct{}, len(g.adjacency))
	for v, succ := range g.adjacency {
		set := make(map[T]struct{}, len(succ.set))
		for w := range succ.set {
			set[w] = struct{}{}
		}
		out[v] = set
	}

	return out
}

// String renders the graph as "{ a: {b, c}, b: {} }", vertices in
// insertion order and successors in edge insertion order. An empty graph
// renders as "{}".
func (g *Graph[T]) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.order) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range g.order {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, " %v: {", v)
		for j, w := range g.adjacency[v].order {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", w)
		}
		sb.WriteByte('}')
	}
	sb.WriteString(" }")

	return sb.String()
}
