// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Layout is the serialization format of persisted instants.
const Layout = time.RFC3339Nano

// ToKey converts a time value to its persisted form.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(Layout))
}

// FromKey parses a value produced by ToKey.
func FromKey(b []byte) (time.Time, error) {
	return time.Parse(Layout, string(b))
}

// FromStr parses a natural language date such as "in 40 minutes" or
// "tomorrow 9am" relative to now. Ambiguous dates resolve to the future.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Future,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
