// File: event/mouse.go
// Package event implements mouse variants.
// License: Apache-2.0

package event

// MouseDevice reports mouse hotplug.
type MouseDevice struct {
	Common
	Which uint32
}

func (e MouseDevice) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeMouseAdded, TypeMouseRemoved, TypeMouseAdded), e.Timestamp)
	r.putU32(16, e.Which)
}

func decodeMouseDevice(r *Record) MouseDevice {
	return MouseDevice{Common: r.common(), Which: r.u32(16)}
}

// MouseMotion reports pointer movement. State is the pressed-button
// bitmask at the time of the move.
type MouseMotion struct {
	Common
	WindowID uint32
	Which    uint32
	State    uint32
	X        float32
	Y        float32
	XRel     float32
	YRel     float32
}

func (e MouseMotion) encodeTo(r *Record) {
	r.setHeader(TypeMouseMotion, e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putU32(20, e.Which)
	r.putU32(24, e.State)
	r.putF32(28, e.X)
	r.putF32(32, e.Y)
	r.putF32(36, e.XRel)
	r.putF32(40, e.YRel)
}

func decodeMouseMotion(r *Record) MouseMotion {
	return MouseMotion{
		Common:   r.common(),
		WindowID: r.u32(16),
		Which:    r.u32(20),
		State:    r.u32(24),
		X:        r.f32(28),
		Y:        r.f32(32),
		XRel:     r.f32(36),
		YRel:     r.f32(40),
	}
}

// MouseButton reports a button press or release.
type MouseButton struct {
	Common
	WindowID uint32
	Which    uint32
	Button   uint8
	Down     bool
	Clicks   uint8
	X        float32
	Y        float32
}

func (e MouseButton) encodeTo(r *Record) {
	def := TypeMouseButtonUp
	if e.Down {
		def = TypeMouseButtonDown
	}
	r.setHeader(tagIn(e.Type, TypeMouseButtonDown, TypeMouseButtonUp, def), e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putU32(20, e.Which)
	r.putU8(24, e.Button)
	r.putBool8(25, e.Down)
	r.putU8(26, e.Clicks)
	r.putF32(28, e.X)
	r.putF32(32, e.Y)
}

func decodeMouseButton(r *Record) MouseButton {
	return MouseButton{
		Common:   r.common(),
		WindowID: r.u32(16),
		Which:    r.u32(20),
		Button:   r.u8(24),
		Down:     r.bool8(25),
		Clicks:   r.u8(26),
		X:        r.f32(28),
		Y:        r.f32(32),
	}
}

// MouseWheel reports scroll wheel motion. MouseX/MouseY are the pointer
// coordinates at scroll time.
type MouseWheel struct {
	Common
	WindowID  uint32
	Which     uint32
	X         float32
	Y         float32
	Direction uint32
	MouseX    float32
	MouseY    float32
}

func (e MouseWheel) encodeTo(r *Record) {
	r.setHeader(TypeMouseWheel, e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putU32(20, e.Which)
	r.putF32(24, e.X)
	r.putF32(28, e.Y)
	r.putU32(32, e.Direction)
	r.putF32(36, e.MouseX)
	r.putF32(40, e.MouseY)
}

func decodeMouseWheel(r *Record) MouseWheel {
	return MouseWheel{
		Common:    r.common(),
		WindowID:  r.u32(16),
		Which:     r.u32(20),
		X:         r.f32(24),
		Y:         r.f32(28),
		Direction: r.u32(32),
		MouseX:    r.f32(36),
		MouseY:    r.f32(40),
	}
}
