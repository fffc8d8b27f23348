// Package jar reads and writes the cookie jar files that WebKit keeps for
// every application under ~/Library/HTTPStorages.
package jar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cixtor/binarycookies/v2"
	"github.com/segmentio/ksuid"
)

// Extension is the file extension of cookie jars.
const Extension = ".binarycookies"

// DefaultTTL is how long a stored session stays valid when no expiration
// is configured.
const DefaultTTL = 30 * 24 * time.Hour

// Session describes the cookie an application expects to find in its jar.
type Session struct {
	Domain   string
	Name     string
	Path     string
	Secure   bool
	HttpOnly bool
	TTL      time.Duration
}

// Cookie returns the cookie carrying value, created at now and expiring TTL
// later.
func (s Session) Cookie(value string, now time.Time) binarycookies.Cookie {
	ttl := s.TTL

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return binarycookies.Cookie{
		Domain:   s.Domain,
		Name:     s.Name,
		Path:     s.Path,
		Value:    value,
		Secure:   s.Secure,
		HttpOnly: s.HttpOnly,
		Expires:  now.Add(ttl),
		Creation: now,
	}
}

// Path returns the location of the jar of bundleID inside libraryDir. A
// profile gets its own jar next to the default one.
func Path(libraryDir, bundleID, profileID string) string {
	name := bundleID

	if profileID != "" {
		name += "." + profileID
	}

	return filepath.Join(libraryDir, "HTTPStorages", name+Extension)
}

// NewProfileID returns a sortable unique identifier for a new profile.
func NewProfileID() string {
	return ksuid.New().String()
}

// Read decodes the jar stored at path.
func Read(path string, opts ...binarycookies.Option) (*binarycookies.BinaryCookies, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("failed to read cookie jar: %w", err)
	}

	out, err := binarycookies.Parse(data, opts...)

	if err != nil {
		return nil, fmt.Errorf("failed to parse cookie jar %s: %w", path, err)
	}

	return out, nil
}

// Write replaces the jar at path with the given pages. The file is written
// next to its destination and renamed into place so the system never reads
// a partial jar.
func Write(path string, pages []binarycookies.Page, opts ...binarycookies.Option) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create jar directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")

	if err != nil {
		return fmt.Errorf("failed to create temporary jar: %w", err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(binarycookies.Build(pages, opts...)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cookie jar: %w", err)
	}

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set jar permissions: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cookie jar: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace cookie jar: %w", err)
	}

	return nil
}

// WriteSession replaces the jar at path with a single page holding the
// session cookie for value.
func WriteSession(path string, s Session, value string, now time.Time) error {
	page := binarycookies.Page{Cookies: []binarycookies.Cookie{s.Cookie(value, now)}}
	return Write(path, []binarycookies.Page{page})
}

// Remove deletes the jar at path. A missing jar is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove cookie jar: %w", err)
	}
	return nil
}
