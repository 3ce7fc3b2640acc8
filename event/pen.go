// File: event/pen.go
// Package event implements pen variants.
// License: Apache-2.0

package event

// PenProximity reports the pen entering or leaving hover range.
type PenProximity struct {
	Common
	WindowID uint32
	Which    uint32
}

func (e PenProximity) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypePenProximityIn, TypePenProximityOut, TypePenProximityIn), e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putU32(20, e.Which)
}

func decodePenProximity(r *Record) PenProximity {
	return PenProximity{Common: r.common(), WindowID: r.u32(16), Which: r.u32(20)}
}

// PenMotion reports pen movement. PenState is the pen status bitmask.
type PenMotion struct {
	Common
	WindowID uint32
	Which    uint32
	PenState uint32
	X        float32
	Y        float32
}

func (e PenMotion) encodeTo(r *Record) {
	r.setHeader(TypePenMotion, e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putU32(20, e.Which)
	r.putU32(24, e.PenState)
	r.putF32(28, e.X)
	r.putF32(32, e.Y)
}

func decodePenMotion(r *Record) PenMotion {
	return PenMotion{
		Common:   r.common(),
		WindowID: r.u32(16),
		Which:    r.u32(20),
		PenState: r.u32(24),
		X:        r.f32(28),
		Y:        r.f32(32),
	}
}

// PenTouch reports the pen tip touching or lifting from the surface.
type PenTouch struct {
	Common
	WindowID uint32
	Which    uint32
	PenState uint32
	X        float32
	Y        float32
	Eraser   bool
	Down     bool
}

func (e PenTouch) encodeTo(r *Record) {
	def := TypePenUp
	if e.Down {
		def = TypePenDown
	}
	r.setHeader(tagIn(e.Type, TypePenDown, TypePenUp, def), e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putU32(20, e.Which)
	r.putU32(24, e.PenState)
	r.putF32(28, e.X)
	r.putF32(32, e.Y)
	r.putBool8(36, e.Eraser)
	r.putBool8(37, e.Down)
}

func decodePenTouch(r *Record) PenTouch {
	return PenTouch{
		Common:   r.common(),
		WindowID: r.u32(16),
		Which:    r.u32(20),
		PenState: r.u32(24),
		X:        r.f32(28),
		Y:        r.f32(32),
		Eraser:   r.bool8(36),
		Down:     r.bool8(37),
	}
}

// PenButton reports a barrel button press or release.
type PenButton struct {
	Common
	WindowID uint32
	Which    uint32
	PenState uint32
	X        float32
	Y        float32
	Button   uint8
	Down     bool
}

func (e PenButton) encodeTo(r *Record) {
	def := TypePenButtonUp
	if e.Down {
		def = TypePenButtonDown
	}
	r.setHeader(tagIn(e.Type, TypePenButtonDown, TypePenButtonUp, def), e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putU32(20, e.Which)
	r.putU32(24, e.PenState)
	r.putF32(28, e.X)
	r.putF32(32, e.Y)
	r.putU8(36, e.Button)
	r.putBool8(37, e.Down)
}

func decodePenButton(r *Record) PenButton {
	return PenButton{
		Common:   r.common(),
		WindowID: r.u32(16),
		Which:    r.u32(20),
		PenState: r.u32(24),
		X:        r.f32(28),
		Y:        r.f32(32),
		Button:   r.u8(36),
		Down:     r.bool8(37),
	}
}

// PenAxis reports a pressure/tilt/rotation axis change.
type PenAxis struct {
	Common
	WindowID uint32
	Which    uint32
	PenState uint32
	X        float32
	Y        float32
	Axis     uint32
	Value    float32
}

func (e PenAxis) encodeTo(r *Record) {
	r.setHeader(TypePenAxis, e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putU32(20, e.Which)
	r.putU32(24, e.PenState)
	r.putF32(28, e.X)
	r.putF32(32, e.Y)
	r.putU32(36, e.Axis)
	r.putF32(40, e.Value)
}

func decodePenAxis(r *Record) PenAxis {
	return PenAxis{
		Common:   r.common(),
		WindowID: r.u32(16),
		Which:    r.u32(20),
		PenState: r.u32(24),
		X:        r.f32(28),
		Y:        r.f32(32),
		Axis:     r.u32(36),
		Value:    r.f32(40),
	}
}
