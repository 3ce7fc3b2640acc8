// File: event/batch.go
// Package event implements the multi-record staging batch.
// License: Apache-2.0
//
// A Batch is a contiguous array of fixed-size records plus a fill
// cursor, used to stage bulk enqueue/peek/dequeue operations. The
// cursor never exceeds capacity; overflowing a batch is a caller
// sizing error, not a resize.

package event

import "github.com/evpump/evpump/api"

// Batch stages up to Cap() records contiguously.
type Batch struct {
	recs []Record
	fill int
}

// Compile-time interface check.
var _ api.Batch = (*Batch)(nil)

// NewBatch allocates a batch holding up to capacity records.
// Capacity must be positive.
func NewBatch(capacity int) *Batch {
	if capacity <= 0 {
		panic("event: batch capacity must be positive")
	}
	return &Batch{recs: make([]Record, capacity)}
}

// Len returns the number of staged records.
func (b *Batch) Len() int { return b.fill }

// Cap returns the fixed record capacity.
func (b *Batch) Cap() int { return len(b.recs) }

// Reset clears the fill cursor, retaining storage.
func (b *Batch) Reset() { b.fill = 0 }

// Push appends one record. Returns api.ErrBatchFull when the batch is
// at capacity; the cursor and existing records are left untouched.
func (b *Batch) Push(rec Record) error {
	if b.fill == len(b.recs) {
		return api.ErrBatchFull
	}
	b.recs[b.fill] = rec
	b.fill++
	return nil
}

// PushEvent encodes ev and appends the resulting record.
func (b *Batch) PushEvent(ev api.Event) error {
	return b.Push(Encode(ev))
}

// Records returns the filled prefix. The slice aliases batch storage
// and is invalidated by Push and Reset.
func (b *Batch) Records() []Record {
	return b.recs[:b.fill]
}

// View exposes record i to fn as a scoped, mutable view. The fill
// cursor is restored to its prior value when fn returns, and the
// restore also holds when fn panics.
func (b *Batch) View(i int, fn func(*Record) error) error {
	if i < 0 || i >= b.fill {
		return api.NewError(api.ErrCodeInvalidArgument, "batch index out of range").
			WithContext("index", i).
			WithContext("len", b.fill)
	}
	saved := b.fill
	defer func() { b.fill = saved }()
	return fn(&b.recs[i])
}

// Fold visits every staged record in order, stopping at the first
// error, which is returned.
func (b *Batch) Fold(fn func(i int, rec *Record) error) error {
	for i := 0; i < b.fill; i++ {
		if err := b.View(i, func(rec *Record) error { return fn(i, rec) }); err != nil {
			return err
		}
	}
	return nil
}
