// Package abba measures how far a word is from being a palindrome when the
// only edit allowed is a global symbol substitution: replace every
// occurrence of one symbol with another, all at once.
//
// What is abba?
//
//	For a word length n and an alphabet Σ, the replacement graph G_r(n, Σ)
//	has every word of Σⁿ as a vertex and an edge s → s' whenever s' is s
//	with one symbol globally replaced by a different one. The distance of
//	a word to the nearest palindrome is its breadth-first distance in
//	G_r(n, Σ) to any palindromic vertex.
//
// Under the hood, everything is organized under four library packages:
//
//	word/    - IsPalindrome, ReplaceAll, Alphabet (dedupe, parsing, Σⁿ enumeration)
//	core/    - thread-safe generic directed Graph[T] with deterministic order
//	builder/ - ReplacementGraph(n, Σ) and composable constructors
//	bfs/     - BFS with hooks, Nearest(goal), DistanceToPalindrome
//
// and a command, cmd/abba, which runs single queries or a YAML batch.
//
// Quick example:
//
//	once → ence → ecce
//
//	replace o with e, then n with c: two substitutions.
//
//	g, _ := builder.ReplacementGraph(4, word.AlphabetOf("once"))
//	d, _ := bfs.DistanceToPalindrome(g, "once") // 2
//
//	go install github.com/katalvlaran/abba/cmd/abba@latest
package abba
