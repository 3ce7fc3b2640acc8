// File: event/touch.go
// Package event implements touch and pinch variants.
// License: Apache-2.0

package event

// TouchFinger reports finger contact on a touch device. Coordinates are
// normalized to [0, 1] within the window.
type TouchFinger struct {
	Common
	TouchID  uint64
	FingerID uint64
	X        float32
	Y        float32
	DX       float32
	DY       float32
	Pressure float32
	WindowID uint32
}

func (e TouchFinger) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeFingerDown, TypeFingerCanceled, TypeFingerDown), e.Timestamp)
	r.putU64(16, e.TouchID)
	r.putU64(24, e.FingerID)
	r.putF32(32, e.X)
	r.putF32(36, e.Y)
	r.putF32(40, e.DX)
	r.putF32(44, e.DY)
	r.putF32(48, e.Pressure)
	r.putU32(52, e.WindowID)
}

func decodeTouchFinger(r *Record) TouchFinger {
	return TouchFinger{
		Common:   r.common(),
		TouchID:  r.u64(16),
		FingerID: r.u64(24),
		X:        r.f32(32),
		Y:        r.f32(36),
		DX:       r.f32(40),
		DY:       r.f32(44),
		Pressure: r.f32(48),
		WindowID: r.u32(52),
	}
}

// PinchFinger reports a two-finger pinch gesture. Scale is cumulative
// since the pinch began (1.0 at begin).
type PinchFinger struct {
	Common
	TouchID  uint64
	Scale    float32
	X        float32
	Y        float32
	WindowID uint32
}

func (e PinchFinger) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypePinchBegin, TypePinchEnd, TypePinchBegin), e.Timestamp)
	r.putU64(16, e.TouchID)
	r.putF32(24, e.Scale)
	r.putF32(28, e.X)
	r.putF32(32, e.Y)
	r.putU32(36, e.WindowID)
}

func decodePinchFinger(r *Record) PinchFinger {
	return PinchFinger{
		Common:   r.common(),
		TouchID:  r.u64(16),
		Scale:    r.f32(24),
		X:        r.f32(28),
		Y:        r.f32(32),
		WindowID: r.u32(36),
	}
}
