// Package ghsio reads the line-oriented edge-list input format and
// writes the resulting spanning-tree edges, the same plain-text shape
// original_source/src/main.rs parses by hand, formalized here with
// sentinel errors and github.com/hashicorp/go-multierror so every
// malformed line in a batch is reported at once instead of stopping at
// the first one.
package ghsio

import "errors"

var (
	// ErrEmptyInput is returned when the input has no header line at all.
	ErrEmptyInput = errors.New("ghsio: input is empty")

	// ErrBadHeader is returned when the first line is not a valid vertex count.
	ErrBadHeader = errors.New("ghsio: header line is not a valid non-negative vertex count")

	// ErrBadEdgeLine is returned when an edge line does not parse as "(u, v, w)".
	ErrBadEdgeLine = errors.New("ghsio: edge line must have the form \"(u, v, w)\"")

	// ErrDisconnected is returned when the input graph has more than one
	// connected component; the GHS protocol assumes a single connected
	// graph and would otherwise stop with a forest, not a spanning tree.
	ErrDisconnected = errors.New("ghsio: input graph is disconnected")
)
