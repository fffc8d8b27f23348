package binarycookies

import (
	"io"
	"time"
)

// magic are the bytes representing the signature of valid binary cookies.
var magic = []byte{0x63, 0x6f, 0x6f, 0x6b}

// pageTag marks the beginning of every page in the archive.
var pageTag = []byte{0x00, 0x00, 0x01, 0x00}

// footer is appended after the checksum. It looks like a date and a length
// but the system expects these exact bytes.
var footer = []byte{0x07, 0x17, 0x20, 0x05, 0x00, 0x00, 0x00, 0x4b}

const (
	// cookieHeaderSize is the fixed part of every cookie record, twelve
	// 32-bit integers followed by the expiration and creation dates.
	cookieHeaderSize = 56

	// cookieMinSize is the smallest record that still holds the flags and
	// the four string offsets. Shorter records are skipped.
	cookieMinSize = 36

	cookieVersion = 1

	flagSecure   uint32 = 0x1
	flagHttpOnly uint32 = 0x4

	defaultPath = "/"
)

// Offsets of the fields inside a cookie record, relative to the record.
const (
	offSize       = 0
	offVersion    = 4
	offFlags      = 8
	offHasPort    = 12
	offDomain     = 16
	offName       = 20
	offPath       = 24
	offValue      = 28
	offComment    = 32
	offCommentURL = 36
	offExpires    = 40
	offCreation   = 48
)

const (
	// pageCountOffset and pageTableOffset locate the number of pages and
	// the page sizes in the archive header.
	pageCountOffset = 4
	pageTableOffset = 8

	// cookieTableStart is where the cookie offsets begin inside a page.
	cookieTableStart = 8
)

// BinaryCookies is a struct representing relevant parts of the binary cookies
// archive. A couple of methods are available to read and validate the archive
// and to extract relevant information.
type BinaryCookies struct {
	file  io.Reader
	opts  []Option
	Pages []Page `json:"pages"`

	// Sizes holds the page sizes declared in the archive header.
	Sizes []uint32 `json:"sizes,omitempty"`

	// Issues lists the pages and cookies that were skipped while decoding.
	Issues []Issue `json:"issues,omitempty"`
}

// Page represents a single web page and contains all the cookies associated
// to the same domain. A binary cookies archive contains all the cookies for
// all the pages the user has ever visited.
//
// Length and Offsets are only populated by the decoder.
type Page struct {
	Length  uint32   `json:"length,omitempty"`
	Offsets []uint32 `json:"offsets,omitempty"`
	Cookies []Cookie `json:"cookies"`
}

// Cookie or HTTP cookie is a small piece of data sent from a website and
// stored on the user's computer by the user's web browser while the user is
// browsing. Cookies were designed to be a reliable mechanism for websites to
// remember stateful information or to record the user's browsing activity.
//
// An empty Path is encoded as "/". A zero Expires or Creation is encoded as
// the current time. Size, Flags and Comment are only populated by the decoder.
//
// Ref: https://en.wikipedia.org/wiki/HTTP_cookie
type Cookie struct {
	Size     uint32    `json:"size,omitempty"`
	Flags    uint32    `json:"flags,omitempty"`
	Domain   string    `json:"domain"`
	Name     string    `json:"name"`
	Path     string    `json:"path,omitempty"`
	Value    string    `json:"value"`
	Comment  string    `json:"comment,omitempty"`
	Secure   bool      `json:"secure"`
	HttpOnly bool      `json:"http_only"`
	Expires  time.Time `json:"expires"`
	Creation time.Time `json:"creation"`
}

// Clock returns the time used for cookies without an expiration or creation
// date. The clock in internal/clock satisfies it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type options struct {
	logger Logger
	clock  Clock
}

// Option configures the encoder and the decoder.
type Option func(*options)

// WithLogger routes skipped pages and cookies to the given logger.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces the system clock used to fill in missing dates.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: noopLogger{}, clock: systemClock{}}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// New returns an instance of the Binary Cookies class.
func New(reader io.Reader, opts ...Option) *BinaryCookies {
	return &BinaryCookies{file: reader, opts: opts}
}
