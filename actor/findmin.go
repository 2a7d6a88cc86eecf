package actor

import "github.com/ghsmst/ghsmst/protocol"

// findMin scans incident edges for the cheapest Basic neighbor and
// probes it with Test, or — if none remains — resolves the search
// immediately via report.
//
// a.view.Neighbors is pre-sorted ascending by (weight, id), so the first
// Basic neighbor encountered is the unique minimum under the
// lexicographic tiebreak.
func (a *Actor) findMin() {
	for _, n := range a.view.Neighbors(a.index) {
		if a.classOf(n.To) == protocol.Basic {
			a.testNode = n.To
			a.hasTestNode = true
			a.send(n.To, protocol.NewTest(a.level, a.name, a.index))
			return
		}
	}

	a.testNode = noNeighbor
	a.hasTestNode = false
	a.report()
}

// report bubbles the fragment's best known outgoing-edge weight up to
// the parent once every subtree child has reported and our own probe
// (if any) has resolved. A no-op otherwise — progress resumes on the
// next inbound message.
func (a *Actor) report() {
	if !a.hasParent {
		panic(&InvariantError{Vertex: a.index, Detail: "report ran with no parent set"})
	}

	children := 0
	for _, n := range a.view.Neighbors(a.index) {
		if n.To == a.parent {
			continue
		}
		if a.classOf(n.To) == protocol.Branch {
			children++
		}
	}

	if a.rec == children && !a.hasTestNode {
		a.state = protocol.Found
		a.send(a.parent, protocol.NewReport(a.bestWt, a.index))
	}
}

// changeRoot flips the root toward the fragment's minimum outgoing
// edge, continuing along the tree if the MOE is already a Branch edge,
// or initiating the next merge once it reaches a Basic edge.
func (a *Actor) changeRoot() {
	if !a.hasBestNode {
		panic(&InvariantError{Vertex: a.index, Detail: "change-root ran with no best_node set"})
	}

	if a.classOf(a.bestNode) == protocol.Branch {
		a.send(a.bestNode, protocol.NewChangeRoot(a.index))
		return
	}

	a.classification[a.bestNode] = protocol.Branch
	a.send(a.bestNode, protocol.NewConnect(a.level, a.index))
}
