// Package ghsmst computes a minimum spanning tree without any central
// coordinator: one actor goroutine per vertex, exchanging the seven
// Gallager-Humblet-Spira messages over per-vertex inboxes, converging on
// the tree through fragment merges alone.
//
// Subpackages:
//
//	protocol/    — the message vocabulary, state, and edge classification
//	graphview/   — immutable, dense-id adjacency view with O(1) weight lookup
//	inbox/       — per-vertex FIFO mailbox and the send-only Router
//	termination/ — the single shared convergence latch every actor polls
//	actor/       — the GHS vertex state machine (wake, handlers, find-min, report, change-root)
//	supervisor/  — spawns actors, waits for convergence, harvests the tree
//	ghsio/       — edge-list input parsing, connectivity precheck, output printing
//	mstcheck/    — independent reference Kruskal computation for --verify
//	cmd/ghsmst/  — the CLI entrypoint
//
// See cmd/ghsmst for the command-line tool; the packages above are also
// usable as a library by anyone who already has a graphview.View in hand.
package ghsmst
