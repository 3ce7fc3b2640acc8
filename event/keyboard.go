// File: event/keyboard.go
// Package event implements keyboard and text variants.
// License: Apache-2.0

package event

// TextCapacity is the inline byte capacity for text fields. Longer
// strings are truncated on encode; this bound is part of the wire
// contract.
const TextCapacity = 64

// KeyboardDevice reports keyboard hotplug.
type KeyboardDevice struct {
	Common
	Which uint32
}

func (e KeyboardDevice) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeKeyboardAdded, TypeKeyboardRemoved, TypeKeyboardAdded), e.Timestamp)
	r.putU32(16, e.Which)
}

func decodeKeyboardDevice(r *Record) KeyboardDevice {
	return KeyboardDevice{Common: r.common(), Which: r.u32(16)}
}

// Keyboard reports a key press or release.
type Keyboard struct {
	Common
	WindowID uint32
	Which    uint32
	Scancode uint32
	Key      uint32
	Mod      uint16
	Raw      uint16
	Down     bool
	Repeat   bool
}

func (e Keyboard) encodeTo(r *Record) {
	def := TypeKeyUp
	if e.Down {
		def = TypeKeyDown
	}
	r.setHeader(tagIn(e.Type, TypeKeyDown, TypeKeyUp, def), e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putU32(20, e.Which)
	r.putU32(24, e.Scancode)
	r.putU32(28, e.Key)
	r.putU16(32, e.Mod)
	r.putU16(34, e.Raw)
	r.putBool8(36, e.Down)
	r.putBool8(37, e.Repeat)
}

func decodeKeyboard(r *Record) Keyboard {
	return Keyboard{
		Common:   r.common(),
		WindowID: r.u32(16),
		Which:    r.u32(20),
		Scancode: r.u32(24),
		Key:      r.u32(28),
		Mod:      r.u16(32),
		Raw:      r.u16(34),
		Down:     r.bool8(36),
		Repeat:   r.bool8(37),
	}
}

// TextEditing reports in-progress IME composition.
type TextEditing struct {
	Common
	WindowID uint32
	Start    int32
	Length   int32
	Text     string
}

func (e TextEditing) encodeTo(r *Record) {
	r.setHeader(TypeTextEditing, e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putI32(20, e.Start)
	r.putI32(24, e.Length)
	r.putStr(28, TextCapacity, e.Text)
}

func decodeTextEditing(r *Record) TextEditing {
	return TextEditing{
		Common:   r.common(),
		WindowID: r.u32(16),
		Start:    r.i32(20),
		Length:   r.i32(24),
		Text:     r.str(28, TextCapacity),
	}
}

// TextInput reports committed text input.
type TextInput struct {
	Common
	WindowID uint32
	Text     string
}

func (e TextInput) encodeTo(r *Record) {
	r.setHeader(TypeTextInput, e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putStr(20, TextCapacity, e.Text)
}

func decodeTextInput(r *Record) TextInput {
	return TextInput{
		Common:   r.common(),
		WindowID: r.u32(16),
		Text:     r.str(20, TextCapacity),
	}
}
