// File: event/joystick.go
// Package event implements joystick variants.
// License: Apache-2.0

package event

// JoyAxis reports analog axis motion.
type JoyAxis struct {
	Common
	Which uint32
	Axis  uint8
	Value int16
}

func (e JoyAxis) encodeTo(r *Record) {
	r.setHeader(TypeJoyAxisMotion, e.Timestamp)
	r.putU32(16, e.Which)
	r.putU8(20, e.Axis)
	r.putI16(22, e.Value)
}

func decodeJoyAxis(r *Record) JoyAxis {
	return JoyAxis{Common: r.common(), Which: r.u32(16), Axis: r.u8(20), Value: r.i16(22)}
}

// JoyBall reports trackball relative motion.
type JoyBall struct {
	Common
	Which uint32
	Ball  uint8
	XRel  int16
	YRel  int16
}

func (e JoyBall) encodeTo(r *Record) {
	r.setHeader(TypeJoyBallMotion, e.Timestamp)
	r.putU32(16, e.Which)
	r.putU8(20, e.Ball)
	r.putI16(22, e.XRel)
	r.putI16(24, e.YRel)
}

func decodeJoyBall(r *Record) JoyBall {
	return JoyBall{Common: r.common(), Which: r.u32(16), Ball: r.u8(20), XRel: r.i16(22), YRel: r.i16(24)}
}

// JoyHat reports hat switch position.
type JoyHat struct {
	Common
	Which uint32
	Hat   uint8
	Value uint8
}

func (e JoyHat) encodeTo(r *Record) {
	r.setHeader(TypeJoyHatMotion, e.Timestamp)
	r.putU32(16, e.Which)
	r.putU8(20, e.Hat)
	r.putU8(21, e.Value)
}

func decodeJoyHat(r *Record) JoyHat {
	return JoyHat{Common: r.common(), Which: r.u32(16), Hat: r.u8(20), Value: r.u8(21)}
}

// JoyButton reports a button press or release.
type JoyButton struct {
	Common
	Which  uint32
	Button uint8
	Down   bool
}

func (e JoyButton) encodeTo(r *Record) {
	def := TypeJoyButtonUp
	if e.Down {
		def = TypeJoyButtonDown
	}
	r.setHeader(tagIn(e.Type, TypeJoyButtonDown, TypeJoyButtonUp, def), e.Timestamp)
	r.putU32(16, e.Which)
	r.putU8(20, e.Button)
	r.putBool8(21, e.Down)
}

func decodeJoyButton(r *Record) JoyButton {
	return JoyButton{Common: r.common(), Which: r.u32(16), Button: r.u8(20), Down: r.bool8(21)}
}

// JoyDevice reports joystick hotplug and end-of-update markers.
type JoyDevice struct {
	Common
	Which uint32
}

func (e JoyDevice) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeJoyDeviceAdded, TypeJoyUpdateComplete, TypeJoyDeviceAdded), e.Timestamp)
	r.putU32(16, e.Which)
}

func decodeJoyDevice(r *Record) JoyDevice {
	return JoyDevice{Common: r.common(), Which: r.u32(16)}
}

// JoyBattery reports battery state. Percent is -1 when unknown.
type JoyBattery struct {
	Common
	Which   uint32
	State   int32
	Percent int32
}

func (e JoyBattery) encodeTo(r *Record) {
	r.setHeader(TypeJoyBatteryUpdated, e.Timestamp)
	r.putU32(16, e.Which)
	r.putI32(20, e.State)
	r.putI32(24, e.Percent)
}

func decodeJoyBattery(r *Record) JoyBattery {
	return JoyBattery{Common: r.common(), Which: r.u32(16), State: r.i32(20), Percent: r.i32(24)}
}
