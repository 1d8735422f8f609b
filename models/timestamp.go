// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the minute-resolution format of Poll.ExpireAt.
const TimestampLayout = "2006-01-02 15:04"

// DefaultPollDays is how many calendar days a poll stays open when created
// without expireAt.
const DefaultPollDays = 30

// FormatTimestamp renders t at minute resolution.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp reads a TimestampLayout value in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(TimestampLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// DefaultExpireAt returns the expiry assigned to polls created at now
// without an explicit one. Days are calendar days in now's location, so the
// wall-clock time is kept across daylight saving changes.
func DefaultExpireAt(now time.Time) string {
	return FormatTimestamp(now.AddDate(0, 0, DefaultPollDays))
}

// IsOpen reports whether voting is allowed on p at now. Both sides are
// compared at minute resolution. An unparsable ExpireAt counts as closed.
func (p Poll) IsOpen(now time.Time) bool {
	expireAt, err := ParseTimestamp(p.ExpireAt, now.Location())
	if err != nil {
		return false
	}
	return now.Truncate(time.Minute).Before(expireAt)
}
