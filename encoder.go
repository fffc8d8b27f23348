package binarycookies

import "encoding/binary"

// Build encodes the pages into a binary cookies archive. Every page is built
// first because the header lists their sizes before their contents. Cookies
// without dates receive the time reported by the clock at the start of the
// call; see WithClock.
func Build(pages []Page, opts ...Option) []byte {
	o := newOptions(opts)
	now := o.clock.Now()

	blobs := make([][]byte, len(pages))
	total := len(magic) + 4 + len(pages)*4 + 4 + len(footer)

	for i, page := range pages {
		blobs[i] = page.Build(now)
		total += len(blobs[i])
	}

	buf := make([]byte, 0, total)
	buf = append(buf, magic...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(pages)))

	for _, blob := range blobs {
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(blob)))
	}

	for _, blob := range blobs {
		buf = append(buf, blob...)
	}

	buf = binary.BigEndian.AppendUint32(buf, checksum(blobs))
	buf = append(buf, footer...)

	return buf
}

// checksum adds up the first byte of every 4-byte word of every page.
func checksum(pages [][]byte) uint32 {
	var sum uint32

	for _, page := range pages {
		for i := 0; i < len(page); i += 4 {
			sum += uint32(page[i])
		}
	}

	return sum
}
