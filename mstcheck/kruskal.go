package mstcheck

import (
	"sort"

	"github.com/ghsmst/ghsmst/graphview"
)

// Kruskal computes a minimum spanning tree of view via sorted edges and
// a union-find with path compression and union by rank, returning the
// tree edges (sorted ascending by weight, canonical U<V per
// graphview.Edges) and their total weight.
//
// Complexity: O(E log E + alpha(V) * E).
func Kruskal(view *graphview.View) ([]graphview.Edge, int64, error) {
	n := view.NumVertices()
	if n <= 1 {
		return nil, 0, nil
	}

	edges := view.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	var mst []graphview.Edge
	var total int64
	for _, e := range edges {
		if find(e.U) != find(e.V) {
			union(e.U, e.V)
			mst = append(mst, e)
			total += e.Weight
			if len(mst) == n-1 {
				break
			}
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
