package supervisor_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ghsmst/ghsmst/ghsio"
	"github.com/ghsmst/ghsmst/graphview"
	"github.com/ghsmst/ghsmst/mstcheck"
	"github.com/ghsmst/ghsmst/supervisor"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l.WithField("test", true)
}

func totalWeight(edges []graphview.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}
	return total
}

// S1: two vertices joined by a single edge.
func TestSupervisor_TwoVertices(t *testing.T) {
	view, err := graphview.New(2, []graphview.Edge{{U: 0, V: 1, Weight: 7}})
	require.NoError(t, err)

	edges, err := supervisor.New(view, testLogger()).Run()
	require.NoError(t, err)
	require.Equal(t, []graphview.Edge{{U: 0, V: 1, Weight: 7}}, edges)
}

// S2: triangle, the cheapest two edges form the tree.
func TestSupervisor_Triangle(t *testing.T) {
	view, err := graphview.New(3, []graphview.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 0, V: 2, Weight: 3},
	})
	require.NoError(t, err)

	edges, err := supervisor.New(view, testLogger()).Run()
	require.NoError(t, err)
	require.Equal(t, []graphview.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
	}, edges)
	require.EqualValues(t, 3, totalWeight(edges))
}

// S3: square with a diagonal; the diagonal must be excluded.
func TestSupervisor_SquareWithDiagonal(t *testing.T) {
	view, err := graphview.New(4, []graphview.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
		{U: 3, V: 0, Weight: 4},
		{U: 0, V: 2, Weight: 10},
	})
	require.NoError(t, err)

	edges, err := supervisor.New(view, testLogger()).Run()
	require.NoError(t, err)
	require.Equal(t, []graphview.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
	}, edges)
	require.EqualValues(t, 6, totalWeight(edges))
}

// S4: a disconnected graph must be rejected before any actor ever runs,
// never yield a spurious tree.
func TestSupervisor_DisconnectedInputRejectedUpstream(t *testing.T) {
	view, err := graphview.New(4, []graphview.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 2, V: 3, Weight: 2},
	})
	require.NoError(t, err)

	require.ErrorIs(t, ghsio.CheckConnected(view), ghsio.ErrDisconnected)
}

// S5: five vertices, non-trivial branch structure.
func TestSupervisor_FiveVertexGraph(t *testing.T) {
	view, err := graphview.New(5, []graphview.Edge{
		{U: 0, V: 1, Weight: 3},
		{U: 0, V: 2, Weight: 1},
		{U: 1, V: 2, Weight: 4},
		{U: 1, V: 3, Weight: 2},
		{U: 2, V: 4, Weight: 5},
		{U: 3, V: 4, Weight: 6},
	})
	require.NoError(t, err)

	edges, err := supervisor.New(view, testLogger()).Run()
	require.NoError(t, err)
	require.Equal(t, []graphview.Edge{
		{U: 0, V: 2, Weight: 1},
		{U: 1, V: 3, Weight: 2},
		{U: 0, V: 1, Weight: 3},
		{U: 2, V: 4, Weight: 5},
	}, edges)
	require.EqualValues(t, 11, totalWeight(edges))
}

// S6: stress test against an independent reference MST.
func TestSupervisor_StressAgainstReferenceKruskal(t *testing.T) {
	const n = 100
	view := buildConnectedRandomDistinct(t, n, 7)

	edges, err := supervisor.New(view, testLogger()).Run()
	require.NoError(t, err)
	require.Len(t, edges, n-1)

	_, refWeight, err := mstcheck.Kruskal(view)
	require.NoError(t, err)
	require.Equal(t, refWeight, totalWeight(edges))
}

func TestSupervisor_TrivialSizesProduceNoEdges(t *testing.T) {
	for _, n := range []int{0, 1} {
		view, err := graphview.New(n, nil)
		require.NoError(t, err)

		edges, err := supervisor.New(view, testLogger()).Run()
		require.NoError(t, err)
		require.Empty(t, edges)
	}
}

func TestSupervisor_ConvergesWithinTimeout(t *testing.T) {
	view := buildConnectedRandomDistinct(t, 30, 11)

	done := make(chan struct{})
	go func() {
		_, _ = supervisor.New(view, testLogger()).Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("supervisor did not converge within timeout")
	}
}

// buildConnectedRandomDistinct builds a connected graph on n vertices
// with pairwise-distinct edge weights, so the MST is unique (Testable
// Property 1).
func buildConnectedRandomDistinct(t *testing.T, n int, seed int64) *graphview.View {
	t.Helper()
	r := rand.New(rand.NewSource(seed))

	weight := int64(1)
	nextWeight := func() int64 {
		weight++
		return weight
	}

	type pair struct{ u, v int }
	seen := make(map[pair]bool)
	var edges []graphview.Edge
	addEdge := func(u, v int) {
		if u == v {
			return
		}
		if u > v {
			u, v = v, u
		}
		p := pair{u, v}
		if seen[p] {
			return
		}
		seen[p] = true
		edges = append(edges, graphview.Edge{U: u, V: v, Weight: nextWeight()})
	}

	perm := r.Perm(n)
	for i := 1; i < n; i++ {
		addEdge(perm[i-1], perm[i])
	}
	extra := n * 2
	for i := 0; i < extra; i++ {
		addEdge(r.Intn(n), r.Intn(n))
	}

	view, err := graphview.New(n, edges)
	require.NoError(t, err)
	return view
}
