package id

import (
	"github.com/google/uuid"
)

// Length is the size of a hyphenated identifier, e.g.
// "FF04C3DC-F0FE-472E-8737-0F4034C049F0".
const Length = 36

// New returns a fresh random (v4) identifier in its 36-character
// hyphenated form.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s is a hyphenated UUID. Upper- and lower-case hex
// are both accepted, since BCheckbook writes upper-case ids.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// OrNew returns s, or a fresh identifier when s is empty.
func OrNew(s string) string {
	if s == "" {
		return New()
	}
	return s
}
