// Package mstcheck provides an independent reference MST computation —
// Kruskal's algorithm over a union-find, adapted from
// prim_kruskal.Kruskal to graphview.View's dense integer vertex ids —
// used to cross-check the GHS protocol's output (--verify) and as the
// oracle for the randomized convergence test.
package mstcheck

import "errors"

// ErrDisconnected is returned when the view has more than one vertex
// and a spanning tree covering all of them cannot be formed.
var ErrDisconnected = errors.New("mstcheck: graph is disconnected")
