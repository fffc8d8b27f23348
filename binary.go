package binarycookies

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// fits reports whether buf[off:off+width] is addressable.
func fits(buf []byte, off, width int) bool {
	return off >= 0 && width >= 0 && off <= len(buf)-width
}

func readUint32BE(buf []byte, off int) (uint32, bool) {
	if !fits(buf, off, 4) {
		return 0, false
	}
	return binary.BigEndian.Uint32(buf[off:]), true
}

func readUint32LE(buf []byte, off int) (uint32, bool) {
	if !fits(buf, off, 4) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(buf[off:]), true
}

func readInt32LE(buf []byte, off int) (int32, bool) {
	v, ok := readUint32LE(buf, off)
	return int32(v), ok
}

func readUint64LE(buf []byte, off int) (uint64, bool) {
	if !fits(buf, off, 8) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(buf[off:]), true
}

func readFloat64LE(buf []byte, off int) (float64, bool) {
	v, ok := readUint64LE(buf, off)
	return math.Float64frombits(v), ok
}

func writeUint32LE(buf []byte, off int, v uint32) {
	if fits(buf, off, 4) {
		binary.LittleEndian.PutUint32(buf[off:], v)
	}
}

func writeFloat64LE(buf []byte, off int, v float64) {
	if fits(buf, off, 8) {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
	}
}

// readCString returns the NUL-terminated UTF-8 string starting at off. It
// fails when off is out of range, the terminator is missing or the bytes are
// not valid UTF-8.
func readCString(buf []byte, off int) (string, bool) {
	if off < 0 || off >= len(buf) {
		return "", false
	}

	end := bytes.IndexByte(buf[off:], 0x00)

	if end < 0 {
		return "", false
	}

	data := buf[off : off+end]

	if !utf8.Valid(data) {
		return "", false
	}

	return string(data), true
}

// cstring returns s as a NUL-terminated byte string.
func cstring(s string) []byte {
	out := make([]byte, len(s)+1)
	copy(out, s)
	return out
}
