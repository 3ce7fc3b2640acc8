// File: api/events.go
// Package api defines the core contracts shared across evpump.
// License: Apache-2.0

package api

import "time"

// EventType is the numeric tag selecting which payload shape is valid
// for an event record. The numbering space is shared between the
// library-defined ranges and user-registered types.
type EventType uint32

// Event is the sum-type root for all decoded event variants. Concrete
// variants live in the event package; consumers dispatch with a type
// switch:
//
//	switch e := ev.(type) {
//	case event.Keyboard:
//		// handle key press/release
//	case event.Quit:
//		// shut down
//	}
type Event interface {
	// EventType returns the numeric tag of this event.
	EventType() EventType

	// When returns the event timestamp in nanoseconds.
	When() uint64

	// ImplementsEvent marks the type as an event variant.
	ImplementsEvent()
}

// Source yields decoded events one at a time.
type Source interface {
	// Next returns the next available event, or false if none are queued.
	Next() (Event, bool)
}

// Queue is the event-level queue surface. Bulk record operations work
// in terms of concrete record types and live on the implementing type.
type Queue interface {
	Source

	// Push enqueues ev. The false result without error means the event
	// was dropped by a filter or a disabled type.
	Push(ev Event) (bool, error)

	// Wait blocks until an event is available or the queue closes.
	Wait() (Event, error)

	// WaitTimeout blocks up to d. An expired timeout is the
	// (nil, false, nil) case, not an error.
	WaitTimeout(d time.Duration) (Event, bool, error)

	// Len returns the number of queued events.
	Len() int

	// Close discards queued events and wakes all waiters.
	Close() error
}
