// Package api
//
// Batching primitives for bulk queue operations.

package api

// Batch is the contract for a fixed-capacity staging area of event
// records with a fill cursor.
type Batch interface {
	// Len returns the number of staged records.
	Len() int
	// Cap returns the fixed record capacity.
	Cap() int
	// Reset clears the fill cursor, retaining storage.
	Reset()
}
