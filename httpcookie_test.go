package binarycookies

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTPCookie(t *testing.T) {
	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	c := Cookie{Domain: ".example.com", Name: "SID", Value: "abc", Secure: true, HttpOnly: true, Expires: expires}

	hc := c.HTTPCookie()
	assert.Equal(t, "SID", hc.Name)
	assert.Equal(t, "abc", hc.Value)
	assert.Equal(t, "/", hc.Path)
	assert.Equal(t, ".example.com", hc.Domain)
	assert.Equal(t, expires, hc.Expires)
	assert.True(t, hc.Secure)
	assert.True(t, hc.HttpOnly)
}

func TestFromHTTPCookie(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	c := FromHTTPCookie(&http.Cookie{Name: "token", Value: "t0k", Domain: "api.example.com", MaxAge: 3600, HttpOnly: true}, now)
	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "t0k", c.Value)
	assert.Equal(t, "api.example.com", c.Domain)
	assert.Equal(t, "", c.Path)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, now.Add(time.Hour), c.Expires)
	assert.Equal(t, now, c.Creation)

	expires := now.Add(48 * time.Hour)
	c = FromHTTPCookie(&http.Cookie{Name: "a", Expires: expires, MaxAge: 10}, now)
	assert.Equal(t, expires, c.Expires)

	c = FromHTTPCookie(&http.Cookie{Name: "session"}, now)
	assert.True(t, c.Expires.IsZero())
}
