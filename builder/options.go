// SPDX-License-Identifier: MIT
// Package: abba/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"context"

	"go.uber.org/zap"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithLogger routes build diagnostics to l. Panics on nil; pass zap.NewNop()
// to silence explicitly.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithContext makes constructors abort with ctx.Err() once ctx is done.
// Panics on nil.
func WithContext(ctx context.Context) BuilderOption {
	if ctx == nil {
		panic("builder: WithContext(nil)")
	}
	return func(c *builderConfig) {
		c.ctx = ctx
	}
}

// WithMaxVertices rejects constructions that would create more than limit
// vertices with ErrTooLarge. NoVertexLimit (0) disables the guard.
// Panics if limit < 0.
func WithMaxVertices(limit int) BuilderOption {
	if limit < 0 {
		panic("builder: WithMaxVertices(limit<0)")
	}
	return func(c *builderConfig) {
		c.maxVertices = limit
	}
}
