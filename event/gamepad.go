// File: event/gamepad.go
// Package event implements gamepad variants.
// License: Apache-2.0

package event

// GamepadAxis reports analog axis motion on a mapped controller.
type GamepadAxis struct {
	Common
	Which uint32
	Axis  uint8
	Value int16
}

func (e GamepadAxis) encodeTo(r *Record) {
	r.setHeader(TypeGamepadAxisMotion, e.Timestamp)
	r.putU32(16, e.Which)
	r.putU8(20, e.Axis)
	r.putI16(22, e.Value)
}

func decodeGamepadAxis(r *Record) GamepadAxis {
	return GamepadAxis{Common: r.common(), Which: r.u32(16), Axis: r.u8(20), Value: r.i16(22)}
}

// GamepadButton reports a button press or release.
type GamepadButton struct {
	Common
	Which  uint32
	Button uint8
	Down   bool
}

func (e GamepadButton) encodeTo(r *Record) {
	def := TypeGamepadButtonUp
	if e.Down {
		def = TypeGamepadButtonDown
	}
	r.setHeader(tagIn(e.Type, TypeGamepadButtonDown, TypeGamepadButtonUp, def), e.Timestamp)
	r.putU32(16, e.Which)
	r.putU8(20, e.Button)
	r.putBool8(21, e.Down)
}

func decodeGamepadButton(r *Record) GamepadButton {
	return GamepadButton{Common: r.common(), Which: r.u32(16), Button: r.u8(20), Down: r.bool8(21)}
}

// GamepadDevice reports controller hotplug, remapping, and bookkeeping
// notices.
type GamepadDevice struct {
	Common
	Which uint32
}

func (e GamepadDevice) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeGamepadAdded, TypeGamepadSteamHandleUpdated, TypeGamepadAdded), e.Timestamp)
	r.putU32(16, e.Which)
}

func decodeGamepadDevice(r *Record) GamepadDevice {
	return GamepadDevice{Common: r.common(), Which: r.u32(16)}
}

// GamepadTouchpad reports touchpad finger activity.
type GamepadTouchpad struct {
	Common
	Which    uint32
	Touchpad int32
	Finger   int32
	X        float32
	Y        float32
	Pressure float32
}

func (e GamepadTouchpad) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeGamepadTouchpadDown, TypeGamepadTouchpadUp, TypeGamepadTouchpadDown), e.Timestamp)
	r.putU32(16, e.Which)
	r.putI32(20, e.Touchpad)
	r.putI32(24, e.Finger)
	r.putF32(28, e.X)
	r.putF32(32, e.Y)
	r.putF32(36, e.Pressure)
}

func decodeGamepadTouchpad(r *Record) GamepadTouchpad {
	return GamepadTouchpad{
		Common:   r.common(),
		Which:    r.u32(16),
		Touchpad: r.i32(20),
		Finger:   r.i32(24),
		X:        r.f32(28),
		Y:        r.f32(32),
		Pressure: r.f32(36),
	}
}

// GamepadSensor reports a sensor reading from a controller-embedded
// sensor. SensorTimestamp is the hardware timestamp of the sample.
type GamepadSensor struct {
	Common
	Which           uint32
	Sensor          int32
	Data            [3]float32
	SensorTimestamp uint64
}

func (e GamepadSensor) encodeTo(r *Record) {
	r.setHeader(TypeGamepadSensorUpdate, e.Timestamp)
	r.putU32(16, e.Which)
	r.putI32(20, e.Sensor)
	for i, v := range e.Data {
		r.putF32(24+4*i, v)
	}
	r.putU64(40, e.SensorTimestamp)
}

func decodeGamepadSensor(r *Record) GamepadSensor {
	e := GamepadSensor{
		Common:          r.common(),
		Which:           r.u32(16),
		Sensor:          r.i32(20),
		SensorTimestamp: r.u64(40),
	}
	for i := range e.Data {
		e.Data[i] = r.f32(24 + 4*i)
	}
	return e
}
