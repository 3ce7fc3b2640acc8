// File: queue/queue.go
// Package queue implements the event queue engine.
// License: Apache-2.0

package queue

import (
	"sync"
	"time"

	fifo "github.com/eapache/queue"

	"github.com/evpump/evpump/affinity"
	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/event"
)

// DefaultCapacity bounds the number of queued records unless overridden
// with WithCapacity.
const DefaultCapacity = 65535

// Stats aggregates queue accounting counters. Depth and PeakDepth are
// record counts; the rest are cumulative since construction.
type Stats struct {
	Pushed    uint64 // records accepted into the queue
	Polled    uint64 // records removed by poll/wait/peep-get
	Filtered  uint64 // records rejected by the installed filter
	Dropped   uint64 // records dropped because their type was disabled
	Flushed   uint64 // records discarded by flush or disable
	Depth     int    // current fill level
	PeakDepth int    // highest fill level observed
}

// Queue is a bounded FIFO of fixed-size event records with filter and
// watch hooks, per-type enable toggles, and bulk batch operations.
//
// A Queue is safe for concurrent use unless it was built with a
// ThreadGuard, in which case queue-facing operations must stay on the
// owning thread.
type Queue struct {
	mu   sync.Mutex
	cond *sync.Cond

	store    *fifo.Queue // of event.Record, guarded by mu
	capacity int
	closed   bool

	filter   FilterFunc
	watchers *watchRegistry
	disabled map[event.Type]struct{}
	guard    *affinity.ThreadGuard

	stats Stats
}

// Queue implements the event-level queue surface.
var _ api.Queue = (*Queue)(nil)

// Option configures a Queue at construction.
type Option func(*Queue)

// WithCapacity overrides the maximum number of queued records.
func WithCapacity(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.capacity = n
		}
	}
}

// WithThreadGuard enforces the single-owner-thread contract: queue
// operations invoked off the guard's thread fail with
// api.ErrWrongThread (or report false where the operation has no error
// result).
func WithThreadGuard(g *affinity.ThreadGuard) Option {
	return func(q *Queue) { q.guard = g }
}

// New constructs an empty queue.
func New(opts ...Option) *Queue {
	q := &Queue{
		store:    fifo.New(),
		capacity: DefaultCapacity,
		watchers: newWatchRegistry(),
		disabled: make(map[event.Type]struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push encodes ev and enqueues the record. It reports false without
// error when the event's type is disabled or the filter rejected it.
// A zero timestamp is stamped with the current time before any hook
// sees the event. The record is enqueued whole or not at all.
func (q *Queue) Push(ev api.Event) (bool, error) {
	return q.PushRecord(event.Encode(ev))
}

// PushRecord enqueues a raw record through the same filter, watcher and
// toggle path as Push.
func (q *Queue) PushRecord(rec event.Record) (bool, error) {
	if err := q.guard.Check(); err != nil {
		return false, err
	}
	if rec.Timestamp() == 0 {
		rec.SetTimestamp(uint64(time.Now().UnixNano()))
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false, api.ErrQueueClosed
	}
	if _, off := q.disabled[rec.Type()]; off {
		q.stats.Dropped++
		q.mu.Unlock()
		return false, nil
	}
	filter := q.filter
	watchers := q.watchers.snapshot()
	q.mu.Unlock()

	// Hooks run outside the lock so they may touch the queue.
	if filter != nil || len(watchers) > 0 {
		ev := event.Decode(rec)
		if filter != nil && !filter(ev) {
			q.mu.Lock()
			q.stats.Filtered++
			q.mu.Unlock()
			return false, nil
		}
		for _, w := range watchers {
			w(ev)
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false, api.ErrQueueClosed
	}
	if q.store.Length() >= q.capacity {
		return false, api.ErrQueueFull
	}
	q.store.Add(rec)
	q.stats.Pushed++
	if d := q.store.Length(); d > q.stats.PeakDepth {
		q.stats.PeakDepth = d
	}
	q.cond.Signal()
	return true, nil
}

// Poll removes and decodes the next queued event. The false result
// covers the empty queue, a closed queue, and a guard violation.
func (q *Queue) Poll() (api.Event, bool) {
	if q.guard.Check() != nil {
		return nil, false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || q.store.Length() == 0 {
		return nil, false
	}
	return q.removeLocked(), true
}

// Next implements api.Source.
func (q *Queue) Next() (api.Event, bool) { return q.Poll() }

// Wait blocks until an event is available and returns it. It fails
// with api.ErrQueueClosed once the queue closes.
func (q *Queue) Wait() (api.Event, error) {
	if err := q.guard.Check(); err != nil {
		return nil, err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if q.closed {
			return nil, api.ErrQueueClosed
		}
		if q.store.Length() > 0 {
			return q.removeLocked(), nil
		}
		q.cond.Wait()
	}
}

// WaitTimeout blocks up to d for an event. An expired timeout is the
// (nil, false, nil) case, not an error.
func (q *Queue) WaitTimeout(d time.Duration) (api.Event, bool, error) {
	if err := q.guard.Check(); err != nil {
		return nil, false, err
	}
	deadline := time.Now().Add(d)
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if q.closed {
			return nil, false, api.ErrQueueClosed
		}
		if q.store.Length() > 0 {
			return q.removeLocked(), true, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, false, nil
		}
		t := time.AfterFunc(remaining, q.cond.Broadcast)
		q.cond.Wait()
		t.Stop()
	}
}

// Len returns the current fill level.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.store.Length()
}

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Stats returns a snapshot of the accounting counters.
func (q *Queue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	s := q.stats
	s.Depth = q.store.Length()
	return s
}

// Close marks the queue closed, wakes all waiters, and tears down the
// filter and watch registrations. Queued records are discarded.
// Close is idempotent.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil
	}
	q.closed = true
	for q.store.Length() > 0 {
		q.store.Remove()
	}
	q.filter = nil
	q.watchers.clear()
	q.cond.Broadcast()
	return nil
}

// removeLocked pops and decodes the head record. Caller holds mu and
// has checked the queue is non-empty.
func (q *Queue) removeLocked() api.Event {
	rec := q.store.Remove().(event.Record)
	q.stats.Polled++
	return event.Decode(rec)
}

// rebuildLocked retains records for which keep returns true, preserving
// order, and returns the number discarded. Caller holds mu.
func (q *Queue) rebuildLocked(keep func(rec *event.Record) bool) int {
	total := q.store.Length()
	dropped := 0
	for i := 0; i < total; i++ {
		rec := q.store.Remove().(event.Record)
		if keep(&rec) {
			q.store.Add(rec)
		} else {
			dropped++
		}
	}
	return dropped
}
