// Package termination provides the single shared boolean every vertex
// actor polls to know when the GHS protocol has globally converged. Any
// actor may set it; the write is idempotent (every writer writes true),
// so no coordination beyond an atomic store is required — the same
// reasoning purpleidea/mgmt's Converger applies to convergence state
// changes (converger.go's SetConverged), simplified here to a one-way
// latch since GHS termination, unlike resource convergence, never flips
// back to false.
package termination

import "sync/atomic"

// Flag is a single-writer-idempotent, multi-reader-safe latch.
type Flag struct {
	done atomic.Bool
}

// Set marks the flag as triggered. Safe to call from any number of
// goroutines, any number of times.
func (f *Flag) Set() {
	f.done.Store(true)
}

// IsSet reports whether the flag has been triggered.
func (f *Flag) IsSet() bool {
	return f.done.Load()
}
