// Package builder constructs replacement graphs on top of core.Graph using
// the same "functional options + constructor" building blocks for every
// topology.
//
// A replacement graph G_r(n, Σ) has one vertex per word of length n over the
// alphabet Σ (|Σ|^n vertices) and a directed edge s → s' whenever s' is
// obtained from s by replacing every occurrence of one symbol a ∈ s with
// another symbol b ≠ a. Edges are one global substitution each, so BFS
// distance in G_r is the number of substitutions.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the logger, context and size guard.
//   - Constructors:
//     – Replacement(n, Σ): the replacement-graph topology.
//   - Entry points:
//     – BuildGraph:        applies constructors to a fresh core.Graph.
//     – ReplacementGraph:  one call for the common case; returns a nil graph
//     (and nil error) when n < 1 or Σ is empty.
//
// Guarantees:
//
//   - Deterministic: vertices are inserted in Alphabet.Words order, edges in
//     (vertex, old, new) order, both following the alphabet order.
//   - No self-loops: the identity substitution (a → a) is never attempted.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Structured runtime errors wrapping sentinels for errors.Is filtering.
//
// Complexity:
//
//	Time O(n · |Σ|^n · |Σ|²), Space O(|Σ|^n · |Σ|²).
//	The node count is exponential in n; use WithMaxVertices to bound it.
package builder
