package binarycookies

import (
	"bytes"
	"fmt"
	"io"
)

// Decode reads the whole archive from the reader given to New and returns
// its pages. The parsed archive, including the issues met while decoding,
// remains available in the receiver.
func (b *BinaryCookies) Decode() ([]Page, error) {
	if b.file == nil {
		return nil, fmt.Errorf("Decode: nil reader")
	}

	data, err := io.ReadAll(b.file)

	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	out, err := Parse(data, b.opts...)

	if err != nil {
		return nil, err
	}

	b.Pages = out.Pages
	b.Sizes = out.Sizes
	b.Issues = out.Issues

	return b.Pages, nil
}

// Parse decodes a binary cookies archive.
//
// It fails with ErrFormat when the data is too short, the signature is not
// "cook" or the page table cannot be read. Pages with a declared size of
// zero are ignored, decoding stops at the first page that runs past the end
// of the data, and pages or cookies that cannot be decoded are skipped and
// listed in Issues. The checksum and the footer are not verified.
func Parse(data []byte, opts ...Option) (*BinaryCookies, error) {
	o := newOptions(opts)

	if len(data) < 8 {
		return nil, formatError("file too small (%d bytes)", len(data))
	}

	if !bytes.Equal(data[:4], magic) {
		return nil, formatError("invalid signature %q", data[:4])
	}

	count, ok := readUint32BE(data, pageCountOffset)

	if !ok {
		return nil, formatError("cannot read number of pages")
	}

	b := &BinaryCookies{}

	for i := 0; i < int(count); i++ {
		size, ok := readUint32BE(data, pageTableOffset+i*4)

		if !ok {
			return nil, formatError("cannot read size of page #%d of %d", i, count)
		}

		b.Sizes = append(b.Sizes, size)
	}

	cur := pageTableOffset + len(b.Sizes)*4

	for i, size := range b.Sizes {
		if size == 0 {
			continue
		}

		if !fits(data, cur, int(size)) {
			b.issue(o.logger, Issue{Page: i, Offset: -1, Reason: "page extends past end of file"})
			break
		}

		page, err := parsePage(data[cur:cur+int(size)], func(offset int, reason string) {
			b.issue(o.logger, Issue{Page: i, Offset: offset, Reason: reason})
		})

		cur += int(size)

		if err != nil {
			b.issue(o.logger, Issue{Page: i, Offset: -1, Reason: err.Error()})
			continue
		}

		b.Pages = append(b.Pages, page)
	}

	return b, nil
}

func (b *BinaryCookies) issue(log Logger, is Issue) {
	b.Issues = append(b.Issues, is)
	log.Warn("binarycookies: skipping malformed data", "page", is.Page, "offset", is.Offset, "reason", is.Reason)
}
