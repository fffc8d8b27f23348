// Package binarycookies implements an encoder and decoder to create and read
// binary cookies respectively.
//
// Safari, WebKit and every application built on top of WKWebView or
// NSHTTPCookieStorage keep their cookies in files named *.binarycookies. The
// file is an archive of pages, and every page is a list of cookie records:
//
//	"cook"                         signature
//	pages (uint32, big-endian)     number of pages
//	sizes (uint32, big-endian)     size of every page
//	pages                          page data
//	checksum (uint32, big-endian)  sum of every fourth byte of the pages
//	07 17 20 05 00 00 00 4b        footer
//
// The header and the checksum are big-endian while everything inside a page
// is little-endian. A page starts with the tag 00 00 01 00, the number of
// cookies and the offset of every cookie relative to the start of the page.
// Every cookie record starts with its size, a version, the flags (0x1 secure,
// 0x4 HttpOnly) and the offsets of its domain, name, path and value, which
// are stored as NUL-terminated strings after the dates. Dates are seconds
// since 2001-01-01 00:00:00 UTC stored as float64.
//
// Decoding is lenient. Parse fails only when the data is not an archive or
// its tables cannot be read; pages and cookies that cannot be located are
// skipped and reported in BinaryCookies.Issues.
//
// Encoding never fails. Build writes archives the system accepts, it does
// not try to reproduce the exact bytes of an archive written by another
// program.
//
// References:
//
// - https://en.wikipedia.org/wiki/HTTP_cookie
// - https://github.com/interstateone/BinaryCookies
// - https://tools.ietf.org/html/rfc6265
package binarycookies
