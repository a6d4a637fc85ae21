// Package core provides a thread-safe, generic in-memory directed Graph with
// a minimal, composable API surface.
//
// The Graph G = (V,E) is parameterized by its vertex type T, which must be
// comparable: two vertices are the same vertex iff they compare equal, so
// plain Go strings work as value-typed vertex identities with no wrapper.
//
//   - Directed edges only; each vertex owns a set of distinct successors.
//   - No parallel edges: AddEdge(u,v) twice leaves a single u→v edge.
//   - Self-loops are rejected unless the graph was built WithLoops().
//   - Deterministic iteration: Vertices() follows insertion order,
//     Neighbors() follows edge insertion order.
//   - Every edge endpoint is a vertex: AddEdge inserts missing endpoints first.
//   - One sync.RWMutex guards the vertex catalog and the adjacency sets.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v T)                    // O(1), idempotent
//	HasVertex(v T) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to T) error         // O(1) amortized, idempotent
//	HasEdge(from, to T) bool          // O(1)
//
//	// Query
//	Neighbors(v T) ([]T, error)       // O(d), edge insertion order
//	OutDegree(v T) (int, error)       // O(1)
//	Vertices() []T                    // O(V), insertion order
//	Edges() []Edge[T]                 // O(V+E), vertex order then successor order
//	VertexCount() int                 // O(1)
//	EdgeCount() int                   // O(1)
//	Stats() *GraphStats               // O(V)
//
//	// Comparison & rendering
//	Equal(other *Graph[T]) bool       // O(V+E), insertion-order independent
//	String() string                   // O(V+E), "{ a: {b, c}, b: {} }"
//
//	// Cloning & maintenance
//	Clone() *Graph[T]                 // O(V+E) deep copy
//	Clear()                           // O(1), keeps flags
//
// Errors:
//
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – self-loop when loops disabled
package core
