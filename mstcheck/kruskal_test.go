package mstcheck_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghsmst/ghsmst/graphview"
	"github.com/ghsmst/ghsmst/mstcheck"
)

func TestKruskal_Triangle(t *testing.T) {
	view, err := graphview.New(3, []graphview.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 0, V: 2, Weight: 3},
	})
	require.NoError(t, err)

	edges, total, err := mstcheck.Kruskal(view)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	require.Equal(t, int64(3), total)
}

func TestKruskal_Disconnected(t *testing.T) {
	view, err := graphview.New(4, []graphview.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 2, V: 3, Weight: 1},
	})
	require.NoError(t, err)

	_, _, err = mstcheck.Kruskal(view)
	require.ErrorIs(t, err, mstcheck.ErrDisconnected)
}

func TestKruskal_TrivialSizes(t *testing.T) {
	for _, n := range []int{0, 1} {
		view, err := graphview.New(n, nil)
		require.NoError(t, err)

		edges, total, err := mstcheck.Kruskal(view)
		require.NoError(t, err)
		require.Empty(t, edges)
		require.Zero(t, total)
	}
}

// buildConnectedRandom builds a connected random graph deterministically:
// a spanning chain 0-1-...-n-1 plus extra random edges, mirroring the
// teacher's buildMediumGraph fixture shape.
func buildConnectedRandom(t *testing.T, n, extraEdges int, seed int64) *graphview.View {
	t.Helper()
	r := rand.New(rand.NewSource(seed))

	var edges []graphview.Edge
	seen := make(map[[2]int]bool)
	addEdge := func(u, v int, w int64) {
		if u == v {
			return
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if seen[key] {
			return
		}
		seen[key] = true
		edges = append(edges, graphview.Edge{U: u, V: v, Weight: w})
	}

	for i := 1; i < n; i++ {
		addEdge(i-1, i, int64(1+r.Intn(50)))
	}
	for i := 0; i < extraEdges; i++ {
		addEdge(r.Intn(n), r.Intn(n), int64(1+r.Intn(50)))
	}

	view, err := graphview.New(n, edges)
	require.NoError(t, err)
	return view
}

func TestKruskal_ConnectedRandomGraph(t *testing.T) {
	view := buildConnectedRandom(t, 50, 80, 7)

	edges, _, err := mstcheck.Kruskal(view)
	require.NoError(t, err)
	require.Len(t, edges, 49)
}
