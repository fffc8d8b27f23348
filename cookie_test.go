package binarycookies

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieBuildLayout(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	expires := now.Add(30 * 24 * time.Hour)

	c := Cookie{
		Domain:   ".example.com",
		Name:     "SID",
		Value:    "abc",
		Secure:   true,
		HttpOnly: true,
		Expires:  expires,
	}

	buf := c.Build(now)
	le := binary.LittleEndian

	require.Len(t, buf, 56+13+4+2+4)
	assert.Equal(t, uint32(len(buf)), le.Uint32(buf[0:]))
	assert.Equal(t, uint32(1), le.Uint32(buf[4:]))
	assert.Equal(t, uint32(0x5), le.Uint32(buf[8:]))
	assert.Equal(t, uint32(0), le.Uint32(buf[12:]))
	assert.Equal(t, uint32(56), le.Uint32(buf[16:]))
	assert.Equal(t, uint32(69), le.Uint32(buf[20:]))
	assert.Equal(t, uint32(73), le.Uint32(buf[24:]))
	assert.Equal(t, uint32(75), le.Uint32(buf[28:]))
	assert.Equal(t, uint32(0), le.Uint32(buf[32:]))
	assert.Equal(t, uint32(0), le.Uint32(buf[36:]))
	assert.Equal(t, TimeToMacEpoch(expires), math.Float64frombits(le.Uint64(buf[40:])))
	assert.Equal(t, TimeToMacEpoch(now), math.Float64frombits(le.Uint64(buf[48:])))
	assert.Equal(t, ".example.com\x00SID\x00/\x00abc\x00", string(buf[56:]))
}

func TestCookieFlags(t *testing.T) {
	testCases := []struct {
		secure, httpOnly bool
		flags            uint32
	}{
		{false, false, 0x0},
		{true, false, 0x1},
		{false, true, 0x4},
		{true, true, 0x5},
	}

	for _, tc := range testCases {
		c := Cookie{Secure: tc.secure, HttpOnly: tc.httpOnly}
		buf := c.Build(MacEpoch)
		assert.Equal(t, tc.flags, binary.LittleEndian.Uint32(buf[offFlags:]))

		got := readCookie(buf)
		assert.Equal(t, tc.secure, got.Secure)
		assert.Equal(t, tc.httpOnly, got.HttpOnly)
	}
}

func TestReadCookieIgnoresUnknownFlags(t *testing.T) {
	buf := Cookie{Name: "n"}.Build(MacEpoch)
	binary.LittleEndian.PutUint32(buf[offFlags:], 0xfffffffa)

	got := readCookie(buf)
	assert.False(t, got.Secure)
	assert.False(t, got.HttpOnly)
	assert.Equal(t, uint32(0xfffffffa), got.Flags)
}

func TestReadCookieKeepsCustomPath(t *testing.T) {
	now := time.Date(2025, 5, 5, 5, 5, 5, 0, time.UTC)
	in := Cookie{
		Domain:   "www.example.org",
		Name:     "lang",
		Path:     "/docs",
		Value:    "en-US",
		Expires:  now.Add(time.Hour),
		Creation: now.Add(-time.Hour),
	}

	got := readCookie(in.Build(now))

	assert.Equal(t, in.Domain, got.Domain)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, "/docs", got.Path)
	assert.Equal(t, in.Value, got.Value)
	assert.Equal(t, in.Expires.Unix(), got.Expires.Unix())
	assert.Equal(t, in.Creation.Unix(), got.Creation.Unix())
	assert.Empty(t, got.Comment)
}

func TestReadCookieBadStrings(t *testing.T) {
	buf := Cookie{Domain: "d", Name: "n", Value: "v"}.Build(MacEpoch)

	// point every string past the end of the record
	for _, field := range []int{offDomain, offName, offPath, offValue} {
		binary.LittleEndian.PutUint32(buf[field:], uint32(len(buf)+10))
	}

	got := readCookie(buf)
	assert.Equal(t, "", got.Domain)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, "", got.Path)
	assert.Equal(t, "", got.Value)
}

func TestReadCookieComment(t *testing.T) {
	buf := Cookie{Domain: "d", Name: "n", Value: "v"}.Build(MacEpoch)
	commentAt := uint32(len(buf))
	buf = append(buf, "hello\x00"...)
	binary.LittleEndian.PutUint32(buf[offComment:], commentAt)

	got := readCookie(buf)
	assert.Equal(t, "hello", got.Comment)
}

func TestReadCookieWithoutDates(t *testing.T) {
	buf := Cookie{Name: "n"}.Build(MacEpoch)[:cookieMinSize]

	got := readCookie(buf)
	assert.True(t, got.Expires.IsZero())
	assert.True(t, got.Creation.IsZero())
}
