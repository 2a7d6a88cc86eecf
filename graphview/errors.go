// Package graphview provides an immutable, read-only description of a
// weighted undirected graph over dense integer vertex ids 0..N-1.
//
// A View is built once from parsed input and frozen: nothing in this
// package ever mutates a View after construction, so it needs no locking
// to be shared read-only across every vertex actor's goroutine.
package graphview

import "errors"

// Sentinel errors for View construction.
var (
	// ErrNegativeSize indicates a negative vertex count was requested.
	ErrNegativeSize = errors.New("graphview: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge referenced a vertex id outside 0..N-1.
	ErrVertexOutOfRange = errors.New("graphview: vertex id out of range")

	// ErrSelfLoop indicates an edge had identical endpoints.
	ErrSelfLoop = errors.New("graphview: self-loops are not supported")

	// ErrDuplicateEdge indicates the same undirected pair appeared twice.
	ErrDuplicateEdge = errors.New("graphview: duplicate edge between the same endpoints")
)
