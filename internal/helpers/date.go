package helpers

import (
	"fmt"
	"time"
)

// FormatWorkoutDate renders t as "Monday, January 2". The year is appended
// only when it differs from now's year.
func FormatWorkoutDate(t, now time.Time) string {
	if t.Year() != now.Year() {
		return t.Format("Monday, January 2, 2006")
	}
	return t.Format("Monday, January 2")
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}
