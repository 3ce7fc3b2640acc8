// File: event/common.go
// Package event implements the shared header variants.
// License: Apache-2.0

package event

// Common is the header shared by every variant and the fallback
// projection for tags with no payload of their own (application
// lifecycle notices, keymap changes, unrecognized tags).
type Common struct {
	Type      Type
	Timestamp uint64
}

// EventType returns the numeric tag of this event.
func (c Common) EventType() Type { return c.Type }

// When returns the event timestamp in nanoseconds.
func (c Common) When() uint64 { return c.Timestamp }

// ImplementsEvent marks the type as an event variant.
func (c Common) ImplementsEvent() {}

func (c Common) encodeTo(r *Record) {
	r.setHeader(c.Type, c.Timestamp)
}

// Quit requests application shutdown. It is the pump's termination
// sentinel.
type Quit struct {
	Common
}

func (e Quit) encodeTo(r *Record) {
	r.setHeader(TypeQuit, e.Timestamp)
}

// User carries an application-defined payload. Every tag in the
// reserved range [TypeUser, TypeLast] resolves to this shape even when
// it was never handed out by RegisterEvents.
type User struct {
	Common
	WindowID uint32
	Code     int32
	Data1    int64
	Data2    int64
}

func (e User) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeUser, TypeLast, TypeUser), e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putI32(20, e.Code)
	r.putI64(24, e.Data1)
	r.putI64(32, e.Data2)
}

func decodeUser(r *Record) User {
	return User{
		Common:   r.common(),
		WindowID: r.u32(16),
		Code:     r.i32(20),
		Data1:    r.i64(24),
		Data2:    r.i64(32),
	}
}

// tagIn returns t when it lies inside [lo, hi], otherwise def. Used to
// honor an explicit tag on encode while guaranteeing the written tag
// stays inside the variant's valid range.
func tagIn(t, lo, hi, def Type) Type {
	if t >= lo && t <= hi {
		return t
	}
	return def
}
