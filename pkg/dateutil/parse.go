package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the only textual shape accepted and produced by this package.
const Layout = "DD/MM/YYYY"

// MinYear is the last year rejected by the parser; accepted years are above it.
const MinYear = 1900

var (
	ErrMalformed      = errors.New("malformed date")
	ErrNotNumeric     = errors.New("date segment is not numeric")
	ErrOutOfRange     = errors.New("date segment out of range")
	ErrNegativeOffset = errors.New("offset fields must not be negative")
)

// ParseError describes why a DD/MM/YYYY string was rejected. Kind is one of
// ErrMalformed, ErrNotNumeric or ErrOutOfRange.
type ParseError struct {
	Kind  error
	Input string
	Field string // "day", "month", "year"; empty for shape errors
	Value string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse %q: %v (want %s)", e.Input, e.Kind, Layout)
	}
	return fmt.Sprintf("parse %q: %s %q: %v", e.Input, e.Field, e.Value, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// ParseOptions tunes validation. The zero value matches Parse.
type ParseOptions struct {
	// Strict rejects days past the end of their month (31/04, 30/02)
	// instead of rolling them into the next month.
	Strict bool
}

// Parse reads a DD/MM/YYYY date. The day is only checked against 31, so an
// impossible date such as 30/02/2024 rolls over to 01/03/2024.
func Parse(text string) (Date, error) {
	return ParseWithOptions(text, ParseOptions{})
}

// ParseStrict is Parse with day-of-month validation.
func ParseStrict(text string) (Date, error) {
	return ParseWithOptions(text, ParseOptions{Strict: true})
}

// ParseWithOptions reads a DD/MM/YYYY date using opts.
func ParseWithOptions(text string, opts ParseOptions) (Date, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return Date{}, &ParseError{Kind: ErrMalformed, Input: text}
	}

	fields := [3]struct {
		name  string
		width int
		value int
	}{{name: "day", width: 2}, {name: "month", width: 2}, {name: "year", width: 4}}

	for i, p := range parts {
		if !isDigits(p) {
			return Date{}, &ParseError{Kind: ErrNotNumeric, Input: text, Field: fields[i].name, Value: p}
		}
		if len(p) != fields[i].width {
			return Date{}, &ParseError{Kind: ErrMalformed, Input: text, Field: fields[i].name, Value: p}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, &ParseError{Kind: ErrNotNumeric, Input: text, Field: fields[i].name, Value: p}
		}
		fields[i].value = n
	}

	day, month, year := fields[0].value, fields[1].value, fields[2].value
	switch {
	case day < 1 || day > 31:
		return Date{}, &ParseError{Kind: ErrOutOfRange, Input: text, Field: "day", Value: parts[0]}
	case month < 1 || month > 12:
		return Date{}, &ParseError{Kind: ErrOutOfRange, Input: text, Field: "month", Value: parts[1]}
	case year <= MinYear:
		return Date{}, &ParseError{Kind: ErrOutOfRange, Input: text, Field: "year", Value: parts[2]}
	}

	if opts.Strict && day > DaysInMonth(year, time.Month(month)) {
		return Date{}, &ParseError{Kind: ErrOutOfRange, Input: text, Field: "day", Value: parts[0]}
	}

	return NewDate(year, time.Month(month), day), nil
}

// Format renders d as zero-padded DD/MM/YYYY.
func Format(d Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
