// File: event/doc.go
// License: Apache-2.0

// Package event models the fixed-size tagged-union event record and its
// typed payload variants.
//
// The wire form is Record, a 128-byte region whose leading tag selects
// exactly one payload interpretation. Raw bytes never leak past this
// package: Decode constructs a typed variant once at the queue boundary
// and consumers dispatch on the concrete type. Encode is the inverse
// projection used when application code pushes synthetic events.
//
// Batch stages multiple records contiguously for bulk queue operations.
package event
