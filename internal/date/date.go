// Package date validates and formats the calendar dates stored in a register.
package date

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrFormat is returned when a date string is not shaped like YYYY-MM-DD.
var ErrFormat = errors.New("String must be in the format of YYYY-MM-DD.") //nolint:revive,staticcheck // user-facing message

const (
	// Layout is the canonical output layout.
	Layout = "2006-01-02"
	// parseLayout also accepts unpadded month and day.
	parseLayout = "2006-1-2"
)

var shape = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)

// IsValidFormat reports whether s has the shape YYYY-M-D, with one or two
// digits for month and day.
func IsValidFormat(s string) bool {
	return shape.MatchString(s)
}

// Parse returns local midnight of the calendar date in s.
func Parse(s string) (time.Time, error) {
	if !IsValidFormat(s) {
		return time.Time{}, ErrFormat
	}
	t, err := time.ParseInLocation(parseLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return t, nil
}

// Format renders t as zero-padded YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}
