// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abba/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// all neighbors appear exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[string]()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(2 * num)

	// Each target is added twice, from two goroutines.
	for i := 0; i < num; i++ {
		for k := 0; k < 2; k++ {
			go func(id int) {
				defer wg.Done()
				require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id)))
			}(i)
		}
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d unique neighbors", num)
	require.Equal(t, num, g.EdgeCount())
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReadersAndEqual mixes readers, Equal in both directions and
// writers to surface lock-order problems under -race.
func TestConcurrentReadersAndEqual(t *testing.T) {
	g1 := buildSquare(t)
	g2 := buildSquare(t)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(4 * rounds)

	for i := 0; i < rounds; i++ {
		go func() { defer wg.Done(); _ = g1.Equal(g2) }()
		go func() { defer wg.Done(); _ = g2.Equal(g1) }()
		go func() { defer wg.Done(); _ = g1.String(); _ = g1.Edges() }()
		go func(id int) {
			defer wg.Done()
			_ = g2.AddEdge(VertexD, fmt.Sprintf("W%d", id))
		}(i)
	}
	wg.Wait()

	require.Equal(t, 4+rounds, g2.EdgeCount())
}
