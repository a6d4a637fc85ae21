// SPDX-License-Identifier: MIT
// Shared fixtures for core_test.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abba/core"
)

// Canonical vertex IDs used across tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
)

// buildSquare returns the directed diamond
//
//	A → B → D
//	A → C → D
//
// with vertices inserted in the order A, B, C, D.
func buildSquare(t testing.TB) *core.Graph[string] {
	t.Helper()

	g := core.NewGraph[string]()
	for _, v := range []string{VertexA, VertexB, VertexC, VertexD} {
		g.AddVertex(v)
	}
	mustEdge(t, g, VertexA, VertexB)
	mustEdge(t, g, VertexA, VertexC)
	mustEdge(t, g, VertexB, VertexD)
	mustEdge(t, g, VertexC, VertexD)

	return g
}

// mustEdge adds from→to and fails the test on error.
func mustEdge(t testing.TB, g *core.Graph[string], from, to string) {
	t.Helper()
	require.NoError(t, g.AddEdge(from, to), "AddEdge(%s,%s)", from, to)
}
