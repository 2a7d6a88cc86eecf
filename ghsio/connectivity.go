package ghsio

import "github.com/ghsmst/ghsmst/graphview"

// CheckConnected runs an iterative breadth-first walk over view — the
// same queue-and-visited shape as bfs.BFS, adapted from core.Graph's
// string ids to graphview.View's dense integer ids — and returns
// ErrDisconnected if any vertex is unreachable from vertex 0.
//
// On a disconnected graph the GHS protocol does not produce a spanning
// tree: once any one component is fully merged, its core-edge endpoints
// exchange +infinity reports and set the shared termination flag, which
// stops every actor, including those in components still mid-protocol.
// This check therefore runs before any actor is spawned, so such input
// is rejected instead of yielding a forest.
func CheckConnected(view *graphview.View) error {
	n := view.NumVertices()
	if n <= 1 {
		return nil
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	queue = append(queue, 0)
	visited[0] = true
	count := 1

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, nbr := range view.Neighbors(id) {
			if !visited[nbr.To] {
				visited[nbr.To] = true
				count++
				queue = append(queue, nbr.To)
			}
		}
	}

	if count != n {
		return ErrDisconnected
	}
	return nil
}
