// File: event/misc.go
// Package event implements audio, camera, render, sensor, clipboard and
// drop variants.
// License: Apache-2.0

package event

// Inline capacities for string-bearing payloads. Part of the wire
// contract; longer strings are truncated on encode.
const (
	DropSourceCapacity = 36
	DropDataCapacity   = 64
	mimeRegionOffset   = 18
	mimeRegionCapacity = RecordSize - mimeRegionOffset
)

// AudioDevice reports audio device hotplug or format change.
type AudioDevice struct {
	Common
	Which     uint32
	Recording bool
}

func (e AudioDevice) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeAudioDeviceAdded, TypeAudioDeviceFormatChanged, TypeAudioDeviceAdded), e.Timestamp)
	r.putU32(16, e.Which)
	r.putBool8(20, e.Recording)
}

func decodeAudioDevice(r *Record) AudioDevice {
	return AudioDevice{Common: r.common(), Which: r.u32(16), Recording: r.bool8(20)}
}

// CameraDevice reports camera hotplug and permission outcomes.
type CameraDevice struct {
	Common
	Which uint32
}

func (e CameraDevice) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeCameraDeviceAdded, TypeCameraDeviceDenied, TypeCameraDeviceAdded), e.Timestamp)
	r.putU32(16, e.Which)
}

func decodeCameraDevice(r *Record) CameraDevice {
	return CameraDevice{Common: r.common(), Which: r.u32(16)}
}

// Render reports renderer state loss for a window.
type Render struct {
	Common
	WindowID uint32
}

func (e Render) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeRenderTargetsReset, TypeRenderDeviceLost, TypeRenderTargetsReset), e.Timestamp)
	r.putU32(16, e.WindowID)
}

func decodeRender(r *Record) Render {
	return Render{Common: r.common(), WindowID: r.u32(16)}
}

// Sensor reports a reading from a standalone sensor device.
type Sensor struct {
	Common
	Which           uint32
	Data            [6]float32
	SensorTimestamp uint64
}

func (e Sensor) encodeTo(r *Record) {
	r.setHeader(TypeSensorUpdate, e.Timestamp)
	r.putU32(16, e.Which)
	for i, v := range e.Data {
		r.putF32(20+4*i, v)
	}
	r.putU64(44, e.SensorTimestamp)
}

func decodeSensor(r *Record) Sensor {
	e := Sensor{Common: r.common(), Which: r.u32(16), SensorTimestamp: r.u64(44)}
	for i := range e.Data {
		e.Data[i] = r.f32(20 + 4*i)
	}
	return e
}

// Clipboard reports clipboard content changes. MimeTypes inline into
// the record as NUL-separated strings; entries that do not fit are
// dropped and not reflected in the decoded slice.
type Clipboard struct {
	Common
	Owner     bool
	MimeTypes []string
}

func (e Clipboard) encodeTo(r *Record) {
	r.setHeader(TypeClipboardUpdate, e.Timestamp)
	r.putBool8(16, e.Owner)
	region := r[mimeRegionOffset:]
	pos := 0
	count := 0
	for _, mt := range e.MimeTypes {
		// +1 for the NUL separator
		if pos+len(mt)+1 > len(region) || count == 255 {
			break
		}
		copy(region[pos:], mt)
		pos += len(mt)
		region[pos] = 0
		pos++
		count++
	}
	for i := pos; i < len(region); i++ {
		region[i] = 0
	}
	r.putU8(17, uint8(count))
}

func decodeClipboard(r *Record) Clipboard {
	e := Clipboard{Common: r.common(), Owner: r.bool8(16)}
	count := int(r.u8(17))
	region := r[mimeRegionOffset:]
	pos := 0
	for i := 0; i < count && pos < len(region); i++ {
		end := pos
		for end < len(region) && region[end] != 0 {
			end++
		}
		e.MimeTypes = append(e.MimeTypes, string(region[pos:end]))
		pos = end + 1
	}
	return e
}

// Drop reports drag-and-drop activity. Source identifies the drag
// origin when known; Data carries the dropped path or text.
type Drop struct {
	Common
	WindowID uint32
	X        float32
	Y        float32
	Source   string
	Data     string
}

func (e Drop) encodeTo(r *Record) {
	r.setHeader(tagIn(e.Type, TypeDropFile, TypeDropPosition, TypeDropFile), e.Timestamp)
	r.putU32(16, e.WindowID)
	r.putF32(20, e.X)
	r.putF32(24, e.Y)
	r.putStr(28, DropSourceCapacity, e.Source)
	r.putStr(64, DropDataCapacity, e.Data)
}

func decodeDrop(r *Record) Drop {
	return Drop{
		Common:   r.common(),
		WindowID: r.u32(16),
		X:        r.f32(20),
		Y:        r.f32(24),
		Source:   r.str(28, DropSourceCapacity),
		Data:     r.str(64, DropDataCapacity),
	}
}
