package binarycookies

import (
	"bytes"
	"time"
)

// Build encodes the page: the page tag, the number of cookies, a table with
// the offset of every cookie relative to the start of the page, a zero
// footer and finally the cookie records.
func (p Page) Build(now time.Time) []byte {
	count := len(p.Cookies)
	table := cookieTableStart
	buf := make([]byte, table+count*4+4)

	copy(buf, pageTag)
	writeUint32LE(buf, 4, uint32(count))

	for i, cookie := range p.Cookies {
		writeUint32LE(buf, table+i*4, uint32(len(buf)))
		buf = append(buf, cookie.Build(now)...)
	}

	return buf
}

// skipFunc is notified of every cookie the page parser drops, with the
// offset of the cookie inside the page.
type skipFunc func(offset int, reason string)

// parsePage decodes one page. Cookies that cannot be located or are too
// short are reported to skip and left out. An error is returned only when
// the cookie count, the offset table or a cookie size cannot be read.
func parsePage(buf []byte, skip skipFunc) (Page, error) {
	var page Page

	if !bytes.HasPrefix(buf, pageTag) {
		skip(-1, "unexpected page tag")
	}

	count, ok := readUint32LE(buf, 4)

	if !ok {
		return page, formatError("cannot read number of cookies")
	}

	page.Length = count

	for i := 0; i < int(count); i++ {
		off, ok := readUint32LE(buf, cookieTableStart+i*4)

		if !ok {
			return page, formatError("cannot read cookie offset #%d of %d", i, count)
		}

		page.Offsets = append(page.Offsets, off)
	}

	for _, off := range page.Offsets {
		start := int(off)

		if !fits(buf, start, 4) {
			skip(start, "cookie offset out of bounds")
			continue
		}

		size, ok := readInt32LE(buf, start)

		if !ok {
			return page, formatError("cannot read cookie size at %d", start)
		}

		if size <= 0 || !fits(buf, start, int(size)) {
			skip(start, "invalid cookie size")
			continue
		}

		blob := buf[start : start+int(size)]

		if len(blob) < cookieMinSize {
			skip(start, "cookie record too short")
			continue
		}

		page.Cookies = append(page.Cookies, readCookie(blob))
	}

	return page, nil
}
