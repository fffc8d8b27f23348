package binarycookies

import (
	"net/http"
	"time"
)

// HTTPCookie converts the cookie into its net/http form.
func (c Cookie) HTTPCookie() *http.Cookie {
	path := c.Path

	if path == "" {
		path = defaultPath
	}

	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     path,
		Domain:   c.Domain,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}

// FromHTTPCookie converts a cookie obtained from an HTTP client or a webview
// into a record ready to be stored. A MaxAge is turned into an expiration
// date relative to now when the cookie has no Expires.
func FromHTTPCookie(hc *http.Cookie, now time.Time) Cookie {
	c := Cookie{
		Domain:   hc.Domain,
		Name:     hc.Name,
		Path:     hc.Path,
		Value:    hc.Value,
		Secure:   hc.Secure,
		HttpOnly: hc.HttpOnly,
		Expires:  hc.Expires,
		Creation: now,
	}

	if c.Expires.IsZero() && hc.MaxAge > 0 {
		c.Expires = now.Add(time.Duration(hc.MaxAge) * time.Second)
	}

	return c
}
