// SPDX-License-Identifier: MIT
// Package: abba/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/abba/core"
	"github.com/katalvlaran/abba/word"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// ReplacementGraph builds G_r(n, alphabet): every word of length n over the
// alphabet is a vertex, and s → s' is an edge iff s' is s with every
// occurrence of one symbol replaced by a different symbol.
//
// If n < MinWordLength or the alphabet is empty no graph exists; the result
// is then (nil, nil), which callers must check before use. Any other error
// comes from the options (ErrTooLarge, context cancellation).
//
// Complexity: O(n · |Σ|^n · |Σ|²) time.
func ReplacementGraph(n int, alphabet word.Alphabet, opts ...BuilderOption) (*core.Graph[string], error) {
	g, err := BuildGraph(nil, opts, Replacement(n, alphabet))
	if errors.Is(err, ErrTooFewVertices) || errors.Is(err, ErrEmptyAlphabet) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}
