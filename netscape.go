package binarycookies

import (
	"fmt"
	"io"
	"strings"
)

// NetscapeHeader is the first line of a Netscape cookie file.
const NetscapeHeader = "# Netscape HTTP Cookie File"

// Netscape formats the cookie as one line of a Netscape cookie file, the
// format understood by curl and wget.
func (c Cookie) Netscape() string {
	path := c.Path

	if path == "" {
		path = defaultPath
	}

	return fmt.Sprintf(
		"%s\t%s\t%s\t%s\t%d\t%s\t%s",
		c.Domain,
		boolField(strings.HasPrefix(c.Domain, ".")),
		path,
		boolField(c.Secure),
		c.Expires.Unix(),
		c.Name,
		c.Value,
	)
}

// WriteNetscape writes the header followed by one line per cookie. Cookies
// for which keep returns false are left out; a nil keep writes them all.
func WriteNetscape(w io.Writer, pages []Page, keep func(Cookie) bool) error {
	if _, err := fmt.Fprintln(w, NetscapeHeader); err != nil {
		return err
	}

	for _, page := range pages {
		for _, cookie := range page.Cookies {
			if keep != nil && !keep(cookie) {
				continue
			}

			if _, err := fmt.Fprintln(w, cookie.Netscape()); err != nil {
				return err
			}
		}
	}

	return nil
}

func boolField(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
