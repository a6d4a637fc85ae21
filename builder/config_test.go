// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

// TestConfigDefaults verifies the documented defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.logger == nil {
		t.Fatal("default logger must be non-nil")
	}
	if cfg.ctx == nil {
		t.Fatal("default context must be non-nil")
	}
	if cfg.maxVertices != NoVertexLimit {
		t.Errorf("default maxVertices: expected %d, got %d", NoVertexLimit, cfg.maxVertices)
	}
	if err := cfg.canceled(); err != nil {
		t.Errorf("background context must not be canceled, got %v", err)
	}
}

// TestConfigLastWins verifies options are applied in order.
func TestConfigLastWins(t *testing.T) {
	t.Parallel()

	l := zap.NewExample()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := newBuilderConfig(
		WithMaxVertices(10),
		WithMaxVertices(20),
		WithLogger(l),
		WithContext(ctx),
	)
	if cfg.maxVertices != 20 {
		t.Errorf("maxVertices: expected 20, got %d", cfg.maxVertices)
	}
	if cfg.logger != l {
		t.Error("WithLogger did not install the logger")
	}
	if err := cfg.canceled(); err != context.Canceled {
		t.Errorf("canceled(): expected context.Canceled, got %v", err)
	}
}

// TestBuilderErrorf verifies the "<method>: <msg>: <sentinel>" shape.
func TestBuilderErrorf(t *testing.T) {
	t.Parallel()

	err := builderErrorf(MethodReplacement, ErrTooLarge, "%d > %d", 3, 2)
	if got, want := err.Error(), "Replacement: 3 > 2: builder: graph too large"; got != want {
		t.Errorf("message: expected %q, got %q", want, got)
	}
}
