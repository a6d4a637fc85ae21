// Package word holds the string-level primitives of the replacement graph:
// the palindrome predicate, the global single-symbol substitution, and the
// Alphabet type that enumerates every word of a given length.
//
// Symbols are runes. A word is a Go string whose runes all belong to an
// Alphabet; words are compared and hashed by content, so they can be used
// directly as core.Graph vertices.
//
// Usage
//
//	a := word.AlphabetOf("once")          // {o, n, c, e}
//	for w := range a.Words(2) {           // "oo", "on", "oc", ...
//	    _ = w
//	}
//	s, ok := word.ReplaceAll("once", 'o', 'e') // "ence", true
//	_ = word.IsPalindrome("ecce")              // true
package word
