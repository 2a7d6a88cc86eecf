package actor

import "github.com/ghsmst/ghsmst/protocol"

// handleConnect handles Connect(L,S): absorb a strictly-lower-level
// fragment, defer against an undecided neighbor, or merge two
// equal-level fragments across their now-common core edge.
func (a *Actor) handleConnect(msg protocol.Message) {
	level, sender := msg.Level, msg.From

	switch {
	case level < a.level:
		// Absorb: S's fragment is strictly lower level. Pull it in by
		// broadcasting our own current identity to it.
		a.classification[sender] = protocol.Branch
		a.send(sender, protocol.NewInitiate(a.level, a.name, a.state, a.index))

	case a.classOf(sender) == protocol.Basic:
		// Wait: we can't yet tell whether this edge crosses a fragment
		// boundary. Defer to our own tail; S's classification must
		// change before the retry can succeed.
		a.defer_(msg)

	default:
		// Merge: equal levels, and S is already our Branch core-edge
		// neighbor. The new fragment name is this edge's weight; level
		// advances by one. S performs the symmetric merge independently
		// when it processes our matching Connect.
		w := a.weight(sender)
		a.send(sender, protocol.NewInitiate(a.level+1, w, protocol.Finding, a.index))
	}
}

// handleInitiate handles Initiate(L,F,M,S): adopt the broadcast
// fragment identity, forward it down the spanning subtree, and start a
// fresh Find-min round if the fragment entered Finding mode.
func (a *Actor) handleInitiate(msg protocol.Message) {
	a.level = msg.Level
	a.name = msg.Name
	a.state = msg.State
	a.parent = msg.From
	a.hasParent = true
	a.bestWt = infWeight
	a.bestNode = noNeighbor
	a.hasBestNode = false
	a.testNode = noNeighbor
	a.hasTestNode = false

	for _, n := range a.view.Neighbors(a.index) {
		if n.To == msg.From {
			continue
		}
		if a.classOf(n.To) == protocol.Branch {
			a.send(n.To, protocol.NewInitiate(a.level, a.name, a.state, a.index))
		}
	}

	if a.state == protocol.Finding {
		a.rec = 0
		a.findMin()
	}
}

// handleTest handles Test(L,F,S): defer against a higher-level prober,
// reject/accept-trade when the fragment matches, or accept outright when
// it differs.
func (a *Actor) handleTest(msg protocol.Message) {
	level, name, sender := msg.Level, msg.Name, msg.From

	if level > a.level {
		a.defer_(msg)
		return
	}

	if name == a.name {
		if a.classOf(sender) == protocol.Basic {
			a.classification[sender] = protocol.Reject
		}
		if !a.hasTestNode || sender != a.testNode {
			a.send(sender, protocol.NewReject(a.index))
		} else {
			// The probe that arrived is our own outstanding test,
			// resolved via the fragment-name coincidence rather than an
			// explicit reply: discard it and re-run Find-min.
			a.findMin()
		}
		return
	}

	a.send(sender, protocol.NewAccept(a.index))
}

// handleAccept handles Accept(S).
func (a *Actor) handleAccept(msg protocol.Message) {
	a.testNode = noNeighbor
	a.hasTestNode = false

	w := a.weight(msg.From)
	if w < a.bestWt {
		a.bestWt = w
		a.bestNode = msg.From
		a.hasBestNode = true
	}
	a.report()
}

// handleReject handles Reject(S).
func (a *Actor) handleReject(msg protocol.Message) {
	if a.classOf(msg.From) == protocol.Basic {
		a.classification[msg.From] = protocol.Reject
	}
	a.findMin()
}

// handleReport handles Report(W,S): accumulate a subtree child's
// report, or — on the parent edge — defer while still Finding, propagate
// a better MOE via Change-root, or detect global termination when
// +infinity survives the round-trip across the core edge.
func (a *Actor) handleReport(msg protocol.Message) {
	if !a.hasParent {
		panic(&InvariantError{Vertex: a.index, Detail: "Report handler ran with no parent set"})
	}

	if msg.From != a.parent {
		if msg.Weight < a.bestWt {
			a.bestWt = msg.Weight
			a.bestNode = msg.From
			a.hasBestNode = true
		}
		a.rec++
		a.report()
		return
	}

	switch {
	case a.state == protocol.Finding:
		a.defer_(msg)
	case msg.Weight > a.bestWt:
		a.changeRoot()
	case msg.Weight == a.bestWt && msg.Weight == infWeight:
		a.log.Info("global termination detected on core-edge report exchange")
		a.term.Set()
	default:
		// No action: equal finite reports or a stale lower report need
		// no response.
	}
}

// handleChangeRoot handles ChangeRoot(S): always continue the root
// flip, regardless of sender.
func (a *Actor) handleChangeRoot(_ protocol.Message) {
	a.changeRoot()
}
