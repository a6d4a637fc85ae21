// SPDX-License-Identifier: MIT
// Package: abba/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • logger      = zap.NewNop()
//   • ctx         = context.Background()
//   • maxVertices = NoVertexLimit

package builder

import (
	"context"

	"go.uber.org/zap"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Diagnostics sink; never nil after newBuilderConfig.
	logger *zap.Logger
	// Cancellation for long builds; never nil after newBuilderConfig.
	ctx context.Context
	// Upper bound on |V| for a single constructor; NoVertexLimit disables it.
	maxVertices int
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger:      zap.NewNop(),
		ctx:         context.Background(),
		maxVertices: NoVertexLimit,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// canceled reports the context error, if any, without blocking.
func (c builderConfig) canceled() error {
	select {
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		return nil
	}
}
