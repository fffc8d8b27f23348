package binarycookies

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieNetscape(t *testing.T) {
	expires := time.Unix(1767225600, 0)

	c := Cookie{Domain: ".example.com", Name: "SID", Value: "abc", Secure: true, Expires: expires}
	assert.Equal(t, ".example.com\tTRUE\t/\tTRUE\t1767225600\tSID\tabc", c.Netscape())

	c = Cookie{Domain: "example.com", Path: "/app", Name: "n", Value: "v", Expires: expires}
	assert.Equal(t, "example.com\tFALSE\t/app\tFALSE\t1767225600\tn\tv", c.Netscape())
}

func TestWriteNetscape(t *testing.T) {
	out, err := Parse(_test1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteNetscape(&buf, out.Pages, func(c Cookie) bool {
		return strings.HasSuffix(c.Domain, "example.com")
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, NetscapeHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], ".example.com\tTRUE\t/\tTRUE\t"))
	assert.True(t, strings.HasSuffix(lines[2], "\ttheme\tdark"))

	buf.Reset()
	require.NoError(t, WriteNetscape(&buf, out.Pages, nil))
	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
}

func TestWriteNetscapeError(t *testing.T) {
	err := WriteNetscape(failingWriter{}, []Page{samplePage("a")}, nil)
	assert.EqualError(t, err, "disk full")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
