// Package supervisor spawns one actor per vertex, waits for the protocol
// to terminate, and derives the final MST edge set from what each actor
// observed.
package supervisor

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/ghsmst/ghsmst/actor"
	"github.com/ghsmst/ghsmst/graphview"
	"github.com/ghsmst/ghsmst/inbox"
	"github.com/ghsmst/ghsmst/protocol"
	"github.com/ghsmst/ghsmst/termination"
)

// Supervisor owns the shared, read-only GraphView and Router, the
// TerminationFlag every actor polls, and the one Actor per vertex.
type Supervisor struct {
	view   *graphview.View
	router *inbox.Router
	term   *termination.Flag
	actors []*actor.Actor
	log    *logrus.Entry
}

// New builds a Supervisor over view, ready to Run.
func New(view *graphview.View, log *logrus.Entry) *Supervisor {
	n := view.NumVertices()
	router := inbox.NewRouter(n)
	term := &termination.Flag{}

	actors := make([]*actor.Actor, n)
	for i := 0; i < n; i++ {
		actors[i] = actor.New(i, view, router, term, log)
	}

	return &Supervisor{view: view, router: router, term: term, actors: actors, log: log}
}

// Run starts every actor, waits for the protocol to converge, and returns
// the MST edge set — each distinct edge exactly once, canonicalized
// (min(u,v), max(u,v), weight), sorted ascending by weight.
//
// If any actor panics with a protocol invariant violation, Run returns
// that error immediately without producing partial output; surviving
// actor goroutines are abandoned (the process is expected to exit).
func (s *Supervisor) Run() ([]graphview.Edge, error) {
	n := len(s.actors)
	if n <= 1 {
		// A graph with 0 or 1 vertices has no edges and a trivially
		// empty MST; there is nothing for the protocol to do.
		return nil, nil
	}

	errCh := make(chan error, n)
	doneCh := make(chan struct{}, n)

	for _, a := range s.actors {
		go s.runActor(a, doneCh, errCh)
	}

	finished := 0
	for finished < n {
		select {
		case err := <-errCh:
			return nil, err
		case <-doneCh:
			finished++
		}
	}

	return s.harvest(), nil
}

func (s *Supervisor) runActor(a *actor.Actor, doneCh chan<- struct{}, errCh chan<- error) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("actor %d: %v", a.Index(), r)
			}
			s.log.WithField("vertex", a.Index()).WithError(err).Error("protocol invariant violation, aborting")
			errCh <- err
			return
		}
		doneCh <- struct{}{}
	}()

	a.Run()
}

// harvest derives the MST edge set from every actor's final
// classification map: an edge (u,v) is in the tree iff both endpoints
// classify it as Branch.
func (s *Supervisor) harvest() []graphview.Edge {
	n := len(s.actors)
	classification := make([]map[int]protocol.Classification, n)
	for i, a := range s.actors {
		classification[i] = a.Classification()
	}

	var edges []graphview.Edge
	for u := 0; u < n; u++ {
		for v, c := range classification[u] {
			if v <= u || c != protocol.Branch {
				continue
			}
			if classification[v][u] != protocol.Branch {
				continue
			}
			w, ok := s.view.Weight(u, v)
			if !ok {
				panic(&actor.InvariantError{Vertex: u, Detail: fmt.Sprintf("branch edge to %d has no weight", v)})
			}
			edges = append(edges, graphview.Edge{U: u, V: v, Weight: w})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})

	return edges
}
