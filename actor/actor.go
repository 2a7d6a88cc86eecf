// Package actor implements the VertexActor: the GHS per-vertex state
// machine. One Actor runs per graph vertex, in its own goroutine,
// mutating only its own fields in response to messages popped from its
// own inbox — the same one-goroutine-per-node shape as
// purpleidea/mgmt's Vertex.Start (pgraph.go), but polling a shared
// termination flag instead of blocking on a channel receive, since no
// actor here can rely on a central shutdown signal.
package actor

import (
	"fmt"
	"math"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/ghsmst/ghsmst/graphview"
	"github.com/ghsmst/ghsmst/inbox"
	"github.com/ghsmst/ghsmst/protocol"
	"github.com/ghsmst/ghsmst/termination"
)

// noNeighbor marks an absent optional neighbor reference (parent,
// best_node, test_node). Valid vertex ids are always >= 0, so -1 is a safe
// sentinel for "none".
const noNeighbor = -1

// infWeight stands in for the +infinity best_wt starts at, and the
// value that signals global termination once it survives an entire
// Find-min/Report round.
const infWeight = math.MaxInt64

// InvariantError reports a violated protocol invariant: an unexpected
// message variant in a handler, a missing parent when one is required,
// or an unknown neighbor classification. These are programmer errors,
// not recoverable protocol conditions, so handlers panic with one
// instead of returning an error.
type InvariantError struct {
	Vertex int
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("actor: protocol invariant violated at vertex %d: %s", e.Vertex, e.Detail)
}

// Actor is the GHS state machine for one vertex.
type Actor struct {
	index  int
	view   *graphview.View
	router *inbox.Router
	inbox  *inbox.Inbox
	term   *termination.Flag
	log    *logrus.Entry

	state          protocol.State
	classification map[int]protocol.Classification

	name  int64
	level int

	parent    int
	hasParent bool

	bestWt      int64
	bestNode    int
	hasBestNode bool

	rec int

	testNode    int
	hasTestNode bool
}

// New builds an Actor for vertex index. The returned Actor owns the
// Inbox router.Inbox(index); it does not start running until Run is
// called.
func New(index int, view *graphview.View, router *inbox.Router, term *termination.Flag, log *logrus.Entry) *Actor {
	return &Actor{
		index:          index,
		view:           view,
		router:         router,
		inbox:          router.Inbox(index),
		term:           term,
		log:            log.WithField("vertex", index),
		classification: make(map[int]protocol.Classification, len(view.Neighbors(index))),
		parent:         noNeighbor,
		bestWt:         infWeight,
		bestNode:       noNeighbor,
		testNode:       noNeighbor,
	}
}

// Index returns the vertex id this actor owns.
func (a *Actor) Index() int { return a.index }

// Classification returns a snapshot of this actor's final neighbor
// classification map. Only meaningful after the actor's Run loop has
// returned, i.e. after the supervisor has observed global termination.
func (a *Actor) Classification() map[int]protocol.Classification {
	out := make(map[int]protocol.Classification, len(a.classification))
	for k, v := range a.classification {
		out[k] = v
	}
	return out
}

// Run executes the actor's full lifetime: wake, event loop, exit.
// It blocks until the shared TerminationFlag is observed set. Run must be
// called from its own goroutine; the supervisor recovers any
// InvariantError panic it raises.
func (a *Actor) Run() {
	a.wake()

	for {
		if a.term.IsSet() {
			a.log.Debug("termination observed, exiting event loop")
			return
		}

		msg, ok := a.inbox.TryPop()
		if !ok {
			runtime.Gosched()
			continue
		}

		a.dispatch(msg)
	}
}

// wake performs the self-initiation step: pick the cheapest incident
// edge, mark it Branch (everything else Basic), become a level-0 Found
// fragment, and propose a merge across the chosen edge.
func (a *Actor) wake() {
	nbrs := a.view.Neighbors(a.index)
	if len(nbrs) == 0 {
		// An isolated vertex has no edge to wake on; it starts and ends
		// Found with an empty classification map. In practice a degree-0
		// vertex only exists in a graph ghsio.CheckConnected would already
		// have rejected as disconnected, or in the single-vertex graph the
		// supervisor never spawns actors for at all — this branch exists
		// so Actor stays correct when driven directly, without either
		// guard in front of it.
		a.state = protocol.Found
		return
	}

	// nbrs is sorted ascending by (weight, id) — see graphview.New — so
	// the first entry is the minimum-weight incident edge with a
	// deterministic tiebreak.
	chosen := nbrs[0]
	for _, n := range nbrs {
		a.classification[n.To] = protocol.Basic
	}
	a.classification[chosen.To] = protocol.Branch

	a.level = 0
	a.state = protocol.Found
	a.rec = 0

	a.log.WithField("chosen", chosen.To).Debug("wake: proposing merge across cheapest incident edge")
	a.send(chosen.To, protocol.NewConnect(0, a.index))
}

func (a *Actor) dispatch(msg protocol.Message) {
	switch msg.Kind {
	case protocol.Connect:
		a.handleConnect(msg)
	case protocol.Initiate:
		a.handleInitiate(msg)
	case protocol.Test:
		a.handleTest(msg)
	case protocol.Accept:
		a.handleAccept(msg)
	case protocol.Reject:
		a.handleReject(msg)
	case protocol.Report:
		a.handleReport(msg)
	case protocol.ChangeRoot:
		a.handleChangeRoot(msg)
	default:
		panic(&InvariantError{Vertex: a.index, Detail: fmt.Sprintf("unknown message kind %v", msg.Kind)})
	}
}

func (a *Actor) send(to int, msg protocol.Message) {
	a.router.Send(to, msg)
}

func (a *Actor) defer_(msg protocol.Message) {
	a.inbox.SelfPost(msg)
}

// weight looks up the edge weight to neighbor, panicking if none exists
// — every neighbor an actor ever references came from its own adjacency
// list, so a miss means a protocol invariant was violated upstream.
func (a *Actor) weight(neighbor int) int64 {
	w, ok := a.view.Weight(a.index, neighbor)
	if !ok {
		panic(&InvariantError{Vertex: a.index, Detail: fmt.Sprintf("no edge to claimed neighbor %d", neighbor)})
	}
	return w
}

func (a *Actor) classOf(neighbor int) protocol.Classification {
	c, ok := a.classification[neighbor]
	if !ok {
		panic(&InvariantError{Vertex: a.index, Detail: fmt.Sprintf("unknown neighbor classification for %d", neighbor)})
	}
	return c
}
