package utils

import (
	"strings"
	"time"
)

const (
	layoutDate      = "2006-01-02"
	layoutDateHuman = "02 Jan 2006"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// HumanDate turns "2024-03-01" into "01 Mar 2024". Input that is not a
// YYYY-MM-DD date is returned unchanged.
func HumanDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(layoutDateHuman)
}
