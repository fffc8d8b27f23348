package binarycookies

import (
	"errors"
	"fmt"
)

// ErrFormat is returned when the data is not a binary cookies archive or is
// truncated before any page or cookie can be located. Use errors.Is to test
// for it; the wrapped message names the field that could not be read.
var ErrFormat = errors.New("binarycookies: invalid format")

func formatError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrFormat}, args...)...)
}

// Issue describes a page or cookie the decoder skipped or found suspicious.
// Page is the index of the page in the archive header. Offset is the position
// of the cookie inside its page, or -1 when the issue concerns the page.
type Issue struct {
	Page   int    `json:"page"`
	Offset int    `json:"offset"`
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	if i.Offset < 0 {
		return fmt.Sprintf("page %d: %s", i.Page, i.Reason)
	}
	return fmt.Sprintf("page %d offset %d: %s", i.Page, i.Offset, i.Reason)
}
