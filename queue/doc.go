// File: queue/doc.go
// License: Apache-2.0

// Package queue implements the in-process event queue that the rest of
// the library reads from and writes to.
//
// The queue stores fixed-size wire records by value and hands out
// decoded variants at the dequeue boundary. Producers push typed events
// or raw records; an installed filter and any registered watchers see
// every candidate event before it is enqueued. Consumers poll
// (non-blocking, comma-ok), wait (blocking), or peep in bulk through an
// event.Batch.
//
// Absence of data is never an error: empty-queue polls and expired
// waits report false. Errors are reserved for failed operations
// (queue full, queue closed, wrong thread).
package queue
