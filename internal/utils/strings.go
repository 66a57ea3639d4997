package utils

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxStringLength is the default maximum length for truncated strings
	DefaultMaxStringLength = 500

	// maskVisibleChars is how many trailing credential characters stay
	// readable after masking.
	maskVisibleChars = 4
)

// TruncateString shortens s to at most maxLen characters, appending a suffix
// that records the original total length so callers know data was omitted.
// If maxLen is zero or negative, [DefaultMaxStringLength] is used instead.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}

// MaskSecret replaces all but the last four characters of a credential with
// a fixed mask, so snapshots and logs never expose the full secret.
// Secrets shorter than the visible window are masked entirely. An empty
// secret yields the explicit "not set" marker.
func MaskSecret(secret string) string {
	if secret == "" {
		return "not set"
	}
	if len(secret) <= maskVisibleChars {
		return strings.Repeat("*", len(secret))
	}
	return "****" + secret[len(secret)-maskVisibleChars:]
}
