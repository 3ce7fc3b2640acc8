// File: event/window.go
// Package event implements display and window variants.
// License: Apache-2.0

package event

// Display reports a display-level change (hotplug, orientation, mode,
// content scale). Data1/Data2 meaning depends on the tag.
type Display struct {
	Common
	DisplayID uint32
	Data1     int32
	Data2     int32
}

func (e Display) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeDisplayOrientation, TypeDisplayContentScaleChanged, TypeDisplayAdded), e.Timestamp)
	r.putU32(16, e.DisplayID)
	r.putI32(20, e.Data1)
	r.putI32(24, e.Data2)
}

func decodeDisplay(r *Record) Display {
	return Display{
		Common:    r.common(),
		DisplayID: r.u32(16),
		Data1:     r.i32(20),
		Data2:     r.i32(24),
	}
}

// Window reports a window state change. Data1/Data2 meaning depends on
// the tag (position for moves, dimensions for resizes, and so on).
type Window struct {
	Common
	WindowID uint32
	Data1    int32
	Data2    int32
}

func (e Window) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeWindowShown, TypeWindowHDRStateChanged, TypeWindowShown), e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putI32(20, e.Data1)
	r.putI32(24, e.Data2)
}

func decodeWindow(r *Record) Window {
	return Window{
		Common:   r.common(),
		WindowID: r.u32(16),
		Data1:    r.i32(20),
		Data2:    r.i32(24),
	}
}
