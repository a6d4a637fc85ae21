// SPDX-License-Identifier: MIT
// Package: abba/builder
//
// impl_replacement.go - implementation of Replacement(n, Σ) constructor.
//
// Contract:
//   • n ≥ MinWordLength (else ErrTooFewVertices), |Σ| ≥ 1 (else ErrEmptyAlphabet).
//   • |Σ|^n ≤ cfg.maxVertices when a limit is set (else ErrTooLarge).
//   • Adds every word of Σ^n in Alphabet.Words order before any edge.
//   • For each vertex s and ordered pair (old,new), old≠new, adds
//     s → ReplaceAll(s,old,new) when old occurs in s and the result is a vertex.
//   • Never attempts (old,old); never emits a self-loop.
//
// Complexity:
//   • Time: O(|Σ|^n) vertices + O(n · |Σ|^n · |Σ|²) substitution work.
//   • Space: O(|Σ|^n · |Σ|²) for the adjacency sets.
//
// Determinism:
//   • Vertex order: lexicographic w.r.t. alphabet order.
//   • Edge order per vertex: (old,new) in alphabet order.

package builder

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/abba/core"
	"github.com/katalvlaran/abba/word"
)

// Replacement returns a Constructor that builds the replacement graph of
// words of length n over alphabet.
func Replacement(n int, alphabet word.Alphabet) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < MinWordLength {
			return builderErrorf(MethodReplacement, ErrTooFewVertices, "n=%d < min=%d", n, MinWordLength)
		}
		if alphabet.Len() == 0 {
			return builderErrorf(MethodReplacement, ErrEmptyAlphabet, "n=%d", n)
		}

		size, ok := alphabet.Count(n)
		if !ok {
			return builderErrorf(MethodReplacement, ErrTooLarge, "%d^%d overflows int", alphabet.Len(), n)
		}
		if cfg.maxVertices != NoVertexLimit && size > cfg.maxVertices {
			return builderErrorf(MethodReplacement, ErrTooLarge, "%d^%d=%d > max=%d", alphabet.Len(), n, size, cfg.maxVertices)
		}

		start := time.Now()

		// Phase 1: the complete node set Σ^n.
		inserted := 0
		for w := range alphabet.Words(n) {
			if inserted%ctxCheckInterval == 0 {
				if err := cfg.canceled(); err != nil {
					return fmt.Errorf("%s: %w", MethodReplacement, err)
				}
			}
			g.AddVertex(w)
			inserted++
		}

		// Phase 2: one edge per effective global substitution.
		symbols := alphabet.Symbols()
		for _, s := range g.Vertices() {
			if err := cfg.canceled(); err != nil {
				return fmt.Errorf("%s: %w", MethodReplacement, err)
			}
			if err := addSubstitutions(g, s, symbols); err != nil {
				return err
			}
		}

		cfg.logger.Debug("replacement graph built",
			zap.Int("n", n),
			zap.Stringer("alphabet", alphabet),
			zap.Int("vertices", g.VertexCount()),
			zap.Int("edges", g.EdgeCount()),
			zap.Duration("elapsed", time.Since(start)),
		)

		return nil
	}
}

// addSubstitutions emits s → s[old:=new] for every ordered pair old≠new.
func addSubstitutions(g *core.Graph[string], s string, symbols []rune) error {
	for _, old := range symbols {
		for _, nw := range symbols {
			if old == nw {
				continue // identity substitution
			}
			next, ok := word.ReplaceAll(s, old, nw)
			if !ok || !g.HasVertex(next) {
				continue
			}
			if err := g.AddEdge(s, next); err != nil {
				return builderErrorf(MethodReplacement, ErrConstructFailed, "AddEdge(%s→%s): %v", s, next, err)
			}
		}
	}

	return nil
}
