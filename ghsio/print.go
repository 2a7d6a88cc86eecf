package ghsio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ghsmst/ghsmst/graphview"
)

// Print writes edges as "(u, v, w)" lines, one per edge, in the order
// given. Supervisor.Run already returns edges canonicalized (u < v) and
// sorted ascending by weight, so callers normally pass that slice
// through unmodified.
func Print(w io.Writer, edges []graphview.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "(%d, %d, %d)\n", e.U, e.V, e.Weight); err != nil {
			return fmt.Errorf("ghsio: writing output: %w", err)
		}
	}
	return bw.Flush()
}
