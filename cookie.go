package binarycookies

import "time"

// Build encodes the cookie into a self-contained record. Missing expiration
// and creation dates are replaced by now.
func (c Cookie) Build(now time.Time) []byte {
	path := c.Path

	if path == "" {
		path = defaultPath
	}

	strs := [4][]byte{
		cstring(c.Domain),
		cstring(c.Name),
		cstring(path),
		cstring(c.Value),
	}

	var offsets [4]uint32
	size := uint32(cookieHeaderSize)

	for i, s := range strs {
		offsets[i] = size
		size += uint32(len(s))
	}

	buf := make([]byte, cookieHeaderSize, size)

	writeUint32LE(buf, offSize, size)
	writeUint32LE(buf, offVersion, cookieVersion)
	writeUint32LE(buf, offFlags, c.flags())
	writeUint32LE(buf, offHasPort, 0)
	writeUint32LE(buf, offDomain, offsets[0])
	writeUint32LE(buf, offName, offsets[1])
	writeUint32LE(buf, offPath, offsets[2])
	writeUint32LE(buf, offValue, offsets[3])
	writeUint32LE(buf, offComment, 0)
	writeUint32LE(buf, offCommentURL, 0)
	writeFloat64LE(buf, offExpires, TimeToMacEpoch(orNow(c.Expires, now)))
	writeFloat64LE(buf, offCreation, TimeToMacEpoch(orNow(c.Creation, now)))

	for _, s := range strs {
		buf = append(buf, s...)
	}

	return buf
}

// flags returns the flag word for the cookie. Only the secure and HttpOnly
// bits are written.
func (c Cookie) flags() uint32 {
	var flags uint32

	if c.Secure {
		flags |= flagSecure
	}

	if c.HttpOnly {
		flags |= flagHttpOnly
	}

	return flags
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}

// readCookie extracts the fields of one cookie record. The caller guarantees
// the record is at least cookieMinSize bytes long. Unreadable strings become
// empty and unreadable dates stay zero.
func readCookie(blob []byte) Cookie {
	var c Cookie

	c.Size = uint32(len(blob))
	c.Flags, _ = readUint32LE(blob, offFlags)
	c.Secure = c.Flags&flagSecure != 0
	c.HttpOnly = c.Flags&flagHttpOnly != 0

	c.Domain = readStringAt(blob, offDomain)
	c.Name = readStringAt(blob, offName)
	c.Path = readStringAt(blob, offPath)
	c.Value = readStringAt(blob, offValue)

	if off, ok := readUint32LE(blob, offComment); ok && off != 0 {
		c.Comment = readStringAt(blob, offComment)
	}

	if secs, ok := readFloat64LE(blob, offExpires); ok {
		c.Expires = MacEpochToTime(secs)
	}

	if secs, ok := readFloat64LE(blob, offCreation); ok {
		c.Creation = MacEpochToTime(secs)
	}

	return c
}

// readStringAt follows the string offset stored at field and returns the
// string it points to, or an empty string.
func readStringAt(blob []byte, field int) string {
	off, ok := readUint32LE(blob, field)

	if !ok {
		return ""
	}

	s, _ := readCString(blob, int(off))

	return s
}
