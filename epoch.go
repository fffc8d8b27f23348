package binarycookies

import (
	"math"
	"time"
)

// timePadding is the Unix timestamp until Jan 2001 when Mac epoch starts.
const timePadding = 978307200

// maxMacSeconds caps decoded dates so the conversion to int64 cannot
// overflow. It is far beyond any date a cookie store would hold.
const maxMacSeconds = float64(1 << 52)

// MacEpoch is 2001-01-01T00:00:00Z, the reference date of Cocoa timestamps.
var MacEpoch = time.Unix(timePadding, 0).UTC()

// MacEpochToTime converts seconds since the Mac epoch into a time. NaN and
// negative values clamp to MacEpoch; fractional seconds are dropped.
func MacEpochToTime(secs float64) time.Time {
	if math.IsNaN(secs) || secs < 0 {
		return MacEpoch
	}

	if secs > maxMacSeconds {
		secs = maxMacSeconds
	}

	return time.Unix(timePadding+int64(secs), 0).UTC()
}

// TimeToMacEpoch converts t into whole seconds since the Mac epoch. Times
// before the Unix epoch cannot be represented and return zero.
func TimeToMacEpoch(t time.Time) float64 {
	unix := t.Unix()

	if unix < 0 {
		return 0
	}

	return float64(unix) - timePadding
}
