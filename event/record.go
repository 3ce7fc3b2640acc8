// File: event/record.go
// Package event implements the fixed-size wire record and its header codec.
// License: Apache-2.0
//
// Record is the binary compatibility contract of the library: 128 bytes,
// little-endian, tag at offset 0, reserved word at offset 4, nanosecond
// timestamp at offset 8, payload from offset 16. Payload offsets are
// fixed per variant and must not move between releases.

package event

import (
	"encoding/binary"
	"math"
)

// RecordSize is the fixed byte size of one event record.
const RecordSize = 128

// payloadOffset is where variant payloads begin inside a record.
const payloadOffset = 16

// Record is one fixed-size tagged-union event record. It is a value
// type: copying a Record copies the event, and no Record ever aliases
// caller memory.
type Record [RecordSize]byte

// Type returns the leading numeric tag.
func (r *Record) Type() Type {
	return Type(binary.LittleEndian.Uint32(r[0:4]))
}

// SetType overwrites the leading numeric tag.
func (r *Record) SetType(t Type) {
	binary.LittleEndian.PutUint32(r[0:4], uint32(t))
}

// Timestamp returns the event timestamp in nanoseconds.
func (r *Record) Timestamp() uint64 {
	return binary.LittleEndian.Uint64(r[8:16])
}

// SetTimestamp overwrites the event timestamp.
func (r *Record) SetTimestamp(ns uint64) {
	binary.LittleEndian.PutUint64(r[8:16], ns)
}

// common extracts the shared header as the generic variant.
func (r *Record) common() Common {
	return Common{Type: r.Type(), Timestamp: r.Timestamp()}
}

// setHeader writes tag and timestamp in one step.
func (r *Record) setHeader(t Type, ns uint64) {
	r.SetType(t)
	r.SetTimestamp(ns)
}

// Fixed-offset scalar accessors. Offsets are absolute within the record.

func (r *Record) u8(off int) uint8      { return r[off] }
func (r *Record) putU8(off int, v uint8) { r[off] = v }

func (r *Record) bool8(off int) bool { return r[off] != 0 }
func (r *Record) putBool8(off int, v bool) {
	if v {
		r[off] = 1
	} else {
		r[off] = 0
	}
}

func (r *Record) u16(off int) uint16 { return binary.LittleEndian.Uint16(r[off : off+2]) }
func (r *Record) putU16(off int, v uint16) {
	binary.LittleEndian.PutUint16(r[off:off+2], v)
}

func (r *Record) i16(off int) int16      { return int16(r.u16(off)) }
func (r *Record) putI16(off int, v int16) { r.putU16(off, uint16(v)) }

func (r *Record) u32(off int) uint32 { return binary.LittleEndian.Uint32(r[off : off+4]) }
func (r *Record) putU32(off int, v uint32) {
	binary.LittleEndian.PutUint32(r[off:off+4], v)
}

func (r *Record) i32(off int) int32      { return int32(r.u32(off)) }
func (r *Record) putI32(off int, v int32) { r.putU32(off, uint32(v)) }

func (r *Record) u64(off int) uint64 { return binary.LittleEndian.Uint64(r[off : off+8]) }
func (r *Record) putU64(off int, v uint64) {
	binary.LittleEndian.PutUint64(r[off:off+8], v)
}

func (r *Record) i64(off int) int64      { return int64(r.u64(off)) }
func (r *Record) putI64(off int, v int64) { r.putU64(off, uint64(v)) }

func (r *Record) f32(off int) float32      { return math.Float32frombits(r.u32(off)) }
func (r *Record) putF32(off int, v float32) { r.putU32(off, math.Float32bits(v)) }

// str reads a NUL-terminated string from a fixed-capacity region.
func (r *Record) str(off, capacity int) string {
	region := r[off : off+capacity]
	for i, b := range region {
		if b == 0 {
			return string(region[:i])
		}
	}
	return string(region)
}

// putStr writes s into a fixed-capacity region, NUL-terminated where
// space allows and truncated otherwise. Truncation is part of the wire
// contract for string-bearing variants.
func (r *Record) putStr(off, capacity int, s string) {
	region := r[off : off+capacity]
	n := copy(region, s)
	for i := n; i < capacity; i++ {
		region[i] = 0
	}
}
