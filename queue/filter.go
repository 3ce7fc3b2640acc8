// File: queue/filter.go
// Package queue implements the per-queue filter and watch registry.
// License: Apache-2.0
//
// The registry is owned by its queue: created in New, emptied in Close.
// There is no process-wide callback table, so independent queues never
// observe each other's hooks.

package queue

import (
	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/event"
)

// FilterFunc decides whether a candidate event may enter the queue.
// Returning false rejects the event; rejection is not an error.
type FilterFunc func(ev api.Event) bool

// WatchFunc observes every event that passes the filter, before it is
// enqueued. Watchers cannot veto events.
type WatchFunc func(ev api.Event)

// WatchHandle identifies a watch registration for later removal.
// Handles are needed because Go functions are not comparable.
type WatchHandle uint64

type watchEntry struct {
	handle WatchHandle
	fn     WatchFunc
}

// watchRegistry keeps watch registrations in insertion order.
type watchRegistry struct {
	next    WatchHandle
	entries []watchEntry
}

func newWatchRegistry() *watchRegistry {
	return &watchRegistry{next: 1}
}

func (w *watchRegistry) add(fn WatchFunc) WatchHandle {
	h := w.next
	w.next++
	w.entries = append(w.entries, watchEntry{handle: h, fn: fn})
	return h
}

func (w *watchRegistry) remove(h WatchHandle) bool {
	for i, e := range w.entries {
		if e.handle == h {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot copies the callback list so hooks can run unlocked.
func (w *watchRegistry) snapshot() []WatchFunc {
	if len(w.entries) == 0 {
		return nil
	}
	fns := make([]WatchFunc, len(w.entries))
	for i, e := range w.entries {
		fns[i] = e.fn
	}
	return fns
}

func (w *watchRegistry) clear() {
	w.entries = nil
}

// SetFilter installs f as the queue's filter, replacing any previous
// one. Only events pushed after the call are filtered; use
// FilterQueued to apply a predicate to records already queued.
func (q *Queue) SetFilter(f FilterFunc) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.filter = f
}

// Filter returns the installed filter. The false result means no
// filter is installed.
func (q *Queue) Filter() (FilterFunc, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.filter, q.filter != nil
}

// ClearFilter removes the installed filter.
func (q *Queue) ClearFilter() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.filter = nil
}

// FilterQueued applies keep to every queued record, discarding those
// for which it returns false. keep runs with the queue locked and must
// not reenter the queue.
func (q *Queue) FilterQueued(keep FilterFunc) {
	if keep == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	dropped := q.rebuildLocked(func(rec *event.Record) bool {
		return keep(event.Decode(*rec))
	})
	q.stats.Flushed += uint64(dropped)
}

// AddWatch registers fn to observe every event that passes the filter.
// Watchers run in registration order. The returned handle removes the
// registration.
func (q *Queue) AddWatch(fn WatchFunc) WatchHandle {
	if fn == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return 0
	}
	return q.watchers.add(fn)
}

// RemoveWatch drops the registration identified by h. Unknown handles
// are ignored.
func (q *Queue) RemoveWatch(h WatchHandle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.watchers.remove(h)
}
