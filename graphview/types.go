package graphview

import "fmt"

// Edge is a single undirected, weighted edge between two dense vertex ids.
type Edge struct {
	U, V   int
	Weight int64
}

// Neighbor describes one endpoint of an incidence list entry: the id of the
// adjacent vertex and the weight of the edge that reaches it.
type Neighbor struct {
	To     int
	Weight int64
}

// edgeKey canonicalizes an undirected pair for map lookups.
type edgeKey struct{ a, b int }

func makeKey(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// View is an immutable, read-only weighted undirected graph.
//
// Vertex ids are dense non-negative integers 0..N-1. View guarantees
// constant-time neighbor enumeration (via Neighbors) and O(deg(v)) weight
// lookup by endpoint pair (via Weight); construction pre-computes a direct
// (u,v) -> weight map so Weight is O(1) amortized too.
//
// View is never mutated after New returns, so it may be shared freely
// across goroutines without synchronization.
type View struct {
	n         int
	adjacency [][]Neighbor
	weights   map[edgeKey]int64
}

// New builds a frozen View over n vertices (0..n-1) from edges.
//
// Each unordered pair (u,v) may appear at most once; self-loops are
// rejected. Edge weights are assumed distinct across the whole graph to
// guarantee a unique MST; if they are not, a lexicographic tiebreak
// (weight, then min(u,v), then max(u,v)) is used wherever this package or
// its callers need a total order over edges, so behavior stays
// deterministic even on tied weights.
//
// Complexity: O(n + E log E) for E = len(edges), dominated by sorting
// each incidence list.
func New(n int, edges []Edge) (*View, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	v := &View{
		n:         n,
		adjacency: make([][]Neighbor, n),
		weights:   make(map[edgeKey]int64, len(edges)),
	}

	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d)", ErrVertexOutOfRange, e.U, e.V)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, e.U)
		}
		key := makeKey(e.U, e.V)
		if _, exists := v.weights[key]; exists {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, e.U, e.V)
		}
		v.weights[key] = e.Weight
		v.adjacency[e.U] = append(v.adjacency[e.U], Neighbor{To: e.V, Weight: e.Weight})
		v.adjacency[e.V] = append(v.adjacency[e.V], Neighbor{To: e.U, Weight: e.Weight})
	}

	for id := range v.adjacency {
		sortNeighbors(v.adjacency[id])
	}

	return v, nil
}
