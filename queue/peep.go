// File: queue/peep.go
// Package queue implements bulk batch operations, flushes, and per-type
// enable toggles.
// License: Apache-2.0

package queue

import (
	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/event"
)

// PeepAction selects what Peep does with the batch.
type PeepAction int

const (
	// PeepAdd pushes the batch's staged records through the normal
	// push path.
	PeepAdd PeepAction = iota
	// PeepPeek copies matching queued records into the batch's spare
	// capacity without consuming them.
	PeepPeek
	// PeepGet copies matching queued records into the batch's spare
	// capacity and removes them from the queue.
	PeepGet
)

// Peep performs a bulk queue operation against b and returns the number
// of records transferred. For PeepPeek and PeepGet only records whose
// tag lies in [min, max] are considered, and the transfer stops when
// the batch is full; min and max are ignored for PeepAdd. PeepAdd stops
// at the first hard push error and reports it alongside the count so
// far.
func (q *Queue) Peep(b *event.Batch, action PeepAction, min, max event.Type) (int, error) {
	if b == nil {
		return 0, api.ErrInvalidArgument
	}
	if err := q.guard.Check(); err != nil {
		return 0, err
	}

	if action == PeepAdd {
		n := 0
		for _, rec := range b.Records() {
			ok, err := q.PushRecord(rec)
			if err != nil {
				return n, err
			}
			if ok {
				n++
			}
		}
		return n, nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return 0, api.ErrQueueClosed
	}

	switch action {
	case PeepPeek:
		n := 0
		for i := 0; i < q.store.Length(); i++ {
			rec := q.store.Get(i).(event.Record)
			if t := rec.Type(); t < min || t > max {
				continue
			}
			if b.Push(rec) != nil {
				break // batch full
			}
			n++
		}
		return n, nil
	case PeepGet:
		n := 0
		total := q.store.Length()
		for i := 0; i < total; i++ {
			rec := q.store.Remove().(event.Record)
			if t := rec.Type(); t >= min && t <= max {
				if b.Push(rec) == nil {
					n++
					q.stats.Polled++
					continue
				}
			}
			q.store.Add(rec)
		}
		return n, nil
	default:
		return 0, api.ErrInvalidArgument
	}
}

// Flush discards all queued records with tag t.
func (q *Queue) Flush(t event.Type) {
	q.FlushRange(t, t)
}

// FlushRange discards all queued records whose tag lies in [min, max].
func (q *Queue) FlushRange(min, max event.Type) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	dropped := q.rebuildLocked(func(rec *event.Record) bool {
		t := rec.Type()
		return t < min || t > max
	})
	q.stats.Flushed += uint64(dropped)
}

// Has reports whether any queued record carries tag t.
func (q *Queue) Has(t event.Type) bool {
	return q.HasRange(t, t)
}

// HasRange reports whether any queued record's tag lies in [min, max].
func (q *Queue) HasRange(min, max event.Type) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := 0; i < q.store.Length(); i++ {
		rec := q.store.Get(i).(event.Record)
		if t := rec.Type(); t >= min && t <= max {
			return true
		}
	}
	return false
}

// SetEnabled toggles processing of tag t. Disabling a type drops
// future pushes of that type and discards records of that type already
// queued.
func (q *Queue) SetEnabled(t event.Type, on bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	if on {
		delete(q.disabled, t)
		return
	}
	q.disabled[t] = struct{}{}
	dropped := q.rebuildLocked(func(rec *event.Record) bool {
		return rec.Type() != t
	})
	q.stats.Flushed += uint64(dropped)
}

// Enabled reports whether tag t is currently processed.
func (q *Queue) Enabled(t event.Type) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, off := q.disabled[t]
	return !off
}
