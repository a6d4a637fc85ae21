package bfs

import (
	"github.com/katalvlaran/abba/core"
	"github.com/katalvlaran/abba/word"
)

// NearestPalindrome returns the goal search result for the closest
// palindrome reachable from start in a replacement graph. Result.Path()
// is the sequence of words produced by each substitution.
func NearestPalindrome(g *core.Graph[string], start string, opts ...Option) (*BFSResult, error) {
	return Nearest(g, start, word.IsPalindrome, opts...)
}

// DistanceToPalindrome returns the minimum number of global substitutions
// (edges of the replacement graph g) that turn start into a palindrome.
//
// It returns 0 when start is already a palindrome and Unreachable (-1) when
// no palindrome is reachable. A start that is not a vertex of g (wrong
// length, or a symbol outside the graph's alphabet) fails with
// ErrStartVertexNotFound; a nil graph fails with ErrGraphNil.
//
// Membership is checked before the palindrome shortcut, so a palindrome
// that is not a vertex of g ("abba" against {o, n, c, e}) is an error, not 0.
func DistanceToPalindrome(g *core.Graph[string], start string, opts ...Option) (int, error) {
	res, err := NearestPalindrome(g, start, opts...)
	if err != nil {
		return Unreachable, err
	}

	return res.Distance, nil
}
