// File: event/types.go
// Package event defines the event tag numbering space.
// License: Apache-2.0
//
// Tags follow the conventional multimedia-library layout: application
// events in 0x1xx, display in 0x15x, window in 0x2xx, keyboard in 0x3xx,
// mouse in 0x4xx, joystick in 0x6xx, gamepad in 0x65x, touch in 0x7xx,
// and the user-registered range from 0x8000 through 0xFFFF.

package event

import (
	"sync/atomic"

	"github.com/evpump/evpump/api"
)

// Type is the numeric event tag.
type Type = api.EventType

// Application events.
const (
	TypeQuit Type = 0x100 + iota
	TypeTerminating
	TypeLowMemory
	TypeWillEnterBackground
	TypeDidEnterBackground
	TypeWillEnterForeground
	TypeDidEnterForeground
	TypeLocaleChanged
	TypeSystemThemeChanged
)

// Display events.
const (
	TypeDisplayOrientation Type = 0x151 + iota
	TypeDisplayAdded
	TypeDisplayRemoved
	TypeDisplayMoved
	TypeDisplayDesktopModeChanged
	TypeDisplayCurrentModeChanged
	TypeDisplayContentScaleChanged
)

// Window events.
const (
	TypeWindowShown Type = 0x202 + iota
	TypeWindowHidden
	TypeWindowExposed
	TypeWindowMoved
	TypeWindowResized
	TypeWindowPixelSizeChanged
	TypeWindowMetalViewResized
	TypeWindowMinimized
	TypeWindowMaximized
	TypeWindowRestored
	TypeWindowMouseEnter
	TypeWindowMouseLeave
	TypeWindowFocusGained
	TypeWindowFocusLost
	TypeWindowCloseRequested
	TypeWindowHitTest
	TypeWindowICCProfChanged
	TypeWindowDisplayChanged
	TypeWindowDisplayScaleChanged
	TypeWindowSafeAreaChanged
	TypeWindowOccluded
	TypeWindowEnterFullscreen
	TypeWindowLeaveFullscreen
	TypeWindowDestroyed
	TypeWindowHDRStateChanged
)

// Keyboard events.
const (
	TypeKeyDown Type = 0x300 + iota
	TypeKeyUp
	TypeTextEditing
	TypeTextInput
	TypeKeymapChanged
	TypeKeyboardAdded
	TypeKeyboardRemoved
)

// Mouse events.
const (
	TypeMouseMotion Type = 0x400 + iota
	TypeMouseButtonDown
	TypeMouseButtonUp
	TypeMouseWheel
	TypeMouseAdded
	TypeMouseRemoved
)

// Joystick events.
const (
	TypeJoyAxisMotion Type = 0x600 + iota
	TypeJoyBallMotion
	TypeJoyHatMotion
	TypeJoyButtonDown
	TypeJoyButtonUp
	TypeJoyDeviceAdded
	TypeJoyDeviceRemoved
	TypeJoyBatteryUpdated
	TypeJoyUpdateComplete
)

// Gamepad events.
const (
	TypeGamepadAxisMotion Type = 0x650 + iota
	TypeGamepadButtonDown
	TypeGamepadButtonUp
	TypeGamepadAdded
	TypeGamepadRemoved
	TypeGamepadRemapped
	TypeGamepadTouchpadDown
	TypeGamepadTouchpadMotion
	TypeGamepadTouchpadUp
	TypeGamepadSensorUpdate
	TypeGamepadUpdateComplete
	TypeGamepadSteamHandleUpdated
)

// Touch events.
const (
	TypeFingerDown Type = 0x700 + iota
	TypeFingerUp
	TypeFingerMotion
	TypeFingerCanceled
	TypePinchBegin
	TypePinchUpdate
	TypePinchEnd
)

// Clipboard events.
const (
	TypeClipboardUpdate Type = 0x900
)

// Drag-and-drop events.
const (
	TypeDropFile Type = 0x1000 + iota
	TypeDropText
	TypeDropBegin
	TypeDropComplete
	TypeDropPosition
)

// Audio device events.
const (
	TypeAudioDeviceAdded Type = 0x1100 + iota
	TypeAudioDeviceRemoved
	TypeAudioDeviceFormatChanged
)

// Sensor events.
const (
	TypeSensorUpdate Type = 0x1200
)

// Pen events.
const (
	TypePenProximityIn Type = 0x1300 + iota
	TypePenProximityOut
	TypePenDown
	TypePenUp
	TypePenButtonDown
	TypePenButtonUp
	TypePenMotion
	TypePenAxis
)

// Camera device events.
const (
	TypeCameraDeviceAdded Type = 0x1400 + iota
	TypeCameraDeviceRemoved
	TypeCameraDeviceApproved
	TypeCameraDeviceDenied
)

// Render events.
const (
	TypeRenderTargetsReset Type = 0x2000 + iota
	TypeRenderDeviceReset
	TypeRenderDeviceLost
)

// User-registered range bounds.
const (
	TypeUser Type = 0x8000
	TypeLast Type = 0xFFFF
)

// userTypeCursor is the allocation cursor for RegisterEvents.
var userTypeCursor atomic.Uint32

// RegisterEvents allocates n consecutive tags from the user range and
// returns the first one. Returns 0 when the range is exhausted; this is
// the no-data case, not an error.
func RegisterEvents(n int) Type {
	if n <= 0 {
		return 0
	}
	for {
		cur := userTypeCursor.Load()
		first := uint32(TypeUser) + cur
		if first+uint32(n)-1 > uint32(TypeLast) {
			return 0
		}
		if userTypeCursor.CompareAndSwap(cur, cur+uint32(n)) {
			return Type(first)
		}
	}
}
