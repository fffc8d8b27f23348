package binarycookies

import (
	"time"

	"github.com/cixtor/binarycookies/v2/internal/clock"
)

var fixedNow = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

var testPages = []Page{
	{Cookies: []Cookie{
		{Domain: ".example.com", Name: "SID", Value: "abc", Secure: true, HttpOnly: true},
		{Domain: ".example.com", Name: "theme", Path: "/app", Value: "dark", Expires: fixedNow.Add(24 * time.Hour)},
	}},
	{Cookies: []Cookie{
		{Domain: "login.example.net", Name: "csrf", Value: "0f1e2d3c", Secure: true},
	}},
	{Cookies: []Cookie{}},
}

// _test1 is a valid archive with three pages.
var _test1 = Build(testPages, WithClock(clock.NewFixed(fixedNow)))

// _test2 is the smallest archive with one empty page.
var _test2 = []byte{
	0x63, 0x6f, 0x6f, 0x6b, // cook
	0x00, 0x00, 0x00, 0x01, // one page
	0x00, 0x00, 0x00, 0x0c, // page size
	0x00, 0x00, 0x01, 0x00, // page tag
	0x00, 0x00, 0x00, 0x00, // no cookies
	0x00, 0x00, 0x00, 0x00, // page footer
	0x00, 0x00, 0x00, 0x00, // checksum
	0x07, 0x17, 0x20, 0x05, 0x00, 0x00, 0x00, 0x4b,
}

// _test3 is _test1 cut in the middle of its second page.
var _test3 = _test1[:len(_test1)/2+40]
