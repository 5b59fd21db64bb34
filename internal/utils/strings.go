package utils

import (
	"strings"
)

// IsBlank reports whether s is empty once surrounding whitespace is removed.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Safe returns fallback when s is blank.
func Safe(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}
