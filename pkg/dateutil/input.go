package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// maxInputDigits is DDMMYYYY.
const maxInputDigits = 8

// FormatKeystrokes turns raw typed input into the DD/MM/YYYY shape: digits
// only, at most eight of them, with slashes after the day and month.
func FormatKeystrokes(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == maxInputDigits {
				break
			}
		}
	}

	s := digits.String()
	switch {
	case len(s) > 4:
		return s[:2] + "/" + s[2:4] + "/" + s[4:]
	case len(s) > 2:
		return s[:2] + "/" + s[2:]
	default:
		return s
	}
}

// CompleteDay fills in the month and year of now when text holds only a
// two-character day, e.g. "14" becomes "14/06/2025". Anything else is
// returned unchanged.
func CompleteDay(text string, now time.Time) string {
	if len(text) != 2 {
		return text
	}
	return fmt.Sprintf("%s/%02d/%04d", text, int(now.Month()), now.Year())
}
