// File: event/codec.go
// Package event implements the record/variant codec.
// License: Apache-2.0
//
// Decode is the single place raw bytes become typed events; it is total
// over the full tag space. Encode is its inverse and zero-fills every
// payload byte the variant does not own, so an encoded record is fully
// determined by the variant's fields.

package event

import "github.com/evpump/evpump/api"

// Decode constructs the typed variant for the record's tag. Tags inside
// the reserved user range decode as User even when never individually
// registered; any other unknown tag decodes as the Common header view.
// Decode never fails.
func Decode(r Record) api.Event {
	t := r.Type()
	if t >= TypeUser && t <= TypeLast {
		return decodeUser(&r)
	}
	switch t {
	case TypeQuit:
		return Quit{Common: r.common()}
	case TypeTerminating, TypeLowMemory,
		TypeWillEnterBackground, TypeDidEnterBackground,
		TypeWillEnterForeground, TypeDidEnterForeground,
		TypeLocaleChanged, TypeSystemThemeChanged,
		TypeKeymapChanged:
		return r.common()
	case TypeDisplayOrientation, TypeDisplayAdded, TypeDisplayRemoved,
		TypeDisplayMoved, TypeDisplayDesktopModeChanged,
		TypeDisplayCurrentModeChanged, TypeDisplayContentScaleChanged:
		return decodeDisplay(&r)
	case TypeWindowShown, TypeWindowHidden, TypeWindowExposed,
		TypeWindowMoved, TypeWindowResized, TypeWindowPixelSizeChanged,
		TypeWindowMetalViewResized, TypeWindowMinimized,
		TypeWindowMaximized, TypeWindowRestored, TypeWindowMouseEnter,
		TypeWindowMouseLeave, TypeWindowFocusGained, TypeWindowFocusLost,
		TypeWindowCloseRequested, TypeWindowHitTest,
		TypeWindowICCProfChanged, TypeWindowDisplayChanged,
		TypeWindowDisplayScaleChanged, TypeWindowSafeAreaChanged,
		TypeWindowOccluded, TypeWindowEnterFullscreen,
		TypeWindowLeaveFullscreen, TypeWindowDestroyed,
		TypeWindowHDRStateChanged:
		return decodeWindow(&r)
	case TypeKeyDown, TypeKeyUp:
		return decodeKeyboard(&r)
	case TypeTextEditing:
		return decodeTextEditing(&r)
	case TypeTextInput:
		return decodeTextInput(&r)
	case TypeKeyboardAdded, TypeKeyboardRemoved:
		return decodeKeyboardDevice(&r)
	case TypeMouseMotion:
		return decodeMouseMotion(&r)
	case TypeMouseButtonDown, TypeMouseButtonUp:
		return decodeMouseButton(&r)
	case TypeMouseWheel:
		return decodeMouseWheel(&r)
	case TypeMouseAdded, TypeMouseRemoved:
		return decodeMouseDevice(&r)
	case TypeJoyAxisMotion:
		return decodeJoyAxis(&r)
	case TypeJoyBallMotion:
		return decodeJoyBall(&r)
	case TypeJoyHatMotion:
		return decodeJoyHat(&r)
	case TypeJoyButtonDown, TypeJoyButtonUp:
		return decodeJoyButton(&r)
	case TypeJoyDeviceAdded, TypeJoyDeviceRemoved, TypeJoyUpdateComplete:
		return decodeJoyDevice(&r)
	case TypeJoyBatteryUpdated:
		return decodeJoyBattery(&r)
	case TypeGamepadAxisMotion:
		return decodeGamepadAxis(&r)
	case TypeGamepadButtonDown, TypeGamepadButtonUp:
		return decodeGamepadButton(&r)
	case TypeGamepadAdded, TypeGamepadRemoved, TypeGamepadRemapped,
		TypeGamepadUpdateComplete, TypeGamepadSteamHandleUpdated:
		return decodeGamepadDevice(&r)
	case TypeGamepadTouchpadDown, TypeGamepadTouchpadMotion,
		TypeGamepadTouchpadUp:
		return decodeGamepadTouchpad(&r)
	case TypeGamepadSensorUpdate:
		return decodeGamepadSensor(&r)
	case TypeFingerDown, TypeFingerUp, TypeFingerMotion, TypeFingerCanceled:
		return decodeTouchFinger(&r)
	case TypePinchBegin, TypePinchUpdate, TypePinchEnd:
		return decodePinchFinger(&r)
	case TypeClipboardUpdate:
		return decodeClipboard(&r)
	case TypeDropFile, TypeDropText, TypeDropBegin, TypeDropComplete,
		TypeDropPosition:
		return decodeDrop(&r)
	case TypeAudioDeviceAdded, TypeAudioDeviceRemoved,
		TypeAudioDeviceFormatChanged:
		return decodeAudioDevice(&r)
	case TypeSensorUpdate:
		return decodeSensor(&r)
	case TypePenProximityIn, TypePenProximityOut:
		return decodePenProximity(&r)
	case TypePenDown, TypePenUp:
		return decodePenTouch(&r)
	case TypePenButtonDown, TypePenButtonUp:
		return decodePenButton(&r)
	case TypePenMotion:
		return decodePenMotion(&r)
	case TypePenAxis:
		return decodePenAxis(&r)
	case TypeCameraDeviceAdded, TypeCameraDeviceRemoved,
		TypeCameraDeviceApproved, TypeCameraDeviceDenied:
		return decodeCameraDevice(&r)
	case TypeRenderTargetsReset, TypeRenderDeviceReset, TypeRenderDeviceLost:
		return decodeRender(&r)
	default:
		return r.common()
	}
}

// Encode projects a typed variant onto a fresh zeroed record. The tag
// written is the one implied by the variant; an explicit Common.Type is
// honored when it lies in the variant's valid range. Event values from
// outside this package encode as a bare header.
func Encode(ev api.Event) Record {
	var r Record
	switch e := ev.(type) {
	case Quit:
		e.encodeTo(&r)
	case User:
		e.encodeTo(&r)
	case Display:
		e.encodeTo(&r)
	case Window:
		e.encodeTo(&r)
	case Keyboard:
		e.encodeTo(&r)
	case KeyboardDevice:
		e.encodeTo(&r)
	case TextEditing:
		e.encodeTo(&r)
	case TextInput:
		e.encodeTo(&r)
	case MouseMotion:
		e.encodeTo(&r)
	case MouseButton:
		e.encodeTo(&r)
	case MouseWheel:
		e.encodeTo(&r)
	case MouseDevice:
		e.encodeTo(&r)
	case JoyAxis:
		e.encodeTo(&r)
	case JoyBall:
		e.encodeTo(&r)
	case JoyHat:
		e.encodeTo(&r)
	case JoyButton:
		e.encodeTo(&r)
	case JoyDevice:
		e.encodeTo(&r)
	case JoyBattery:
		e.encodeTo(&r)
	case GamepadAxis:
		e.encodeTo(&r)
	case GamepadButton:
		e.encodeTo(&r)
	case GamepadDevice:
		e.encodeTo(&r)
	case GamepadTouchpad:
		e.encodeTo(&r)
	case GamepadSensor:
		e.encodeTo(&r)
	case TouchFinger:
		e.encodeTo(&r)
	case PinchFinger:
		e.encodeTo(&r)
	case Clipboard:
		e.encodeTo(&r)
	case Drop:
		e.encodeTo(&r)
	case AudioDevice:
		e.encodeTo(&r)
	case Sensor:
		e.encodeTo(&r)
	case PenProximity:
		e.encodeTo(&r)
	case PenTouch:
		e.encodeTo(&r)
	case PenButton:
		e.encodeTo(&r)
	case PenMotion:
		e.encodeTo(&r)
	case PenAxis:
		e.encodeTo(&r)
	case CameraDevice:
		e.encodeTo(&r)
	case Render:
		e.encodeTo(&r)
	case Common:
		e.encodeTo(&r)
	default:
		r.setHeader(ev.EventType(), ev.When())
	}
	return r
}
