// SPDX-License-Identifier: MIT
// Package: abba/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context using %w (see builderErrorf).
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates the word length n is smaller than MinWordLength.
// ReplacementGraph maps it to the "absent" result (nil graph, nil error).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrEmptyAlphabet indicates a constructor received an alphabet with no symbols.
// ReplacementGraph maps it to the "absent" result (nil graph, nil error).
var ErrEmptyAlphabet = errors.New("builder: empty alphabet")

// ErrTooLarge indicates |Σ|^n exceeds the configured WithMaxVertices limit
// or does not fit in an int.
var ErrTooLarge = errors.New("builder: graph too large")

// ErrConstructFailed indicates the builder could not complete a topology
// (nil constructor, or a core mutation failed).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf formats "<method>: <message>: <sentinel>" keeping the
// sentinel reachable through errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
