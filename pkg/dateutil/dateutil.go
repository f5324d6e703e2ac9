// Package dateutil implements calendar-date arithmetic on plain
// day/month/year values: parsing and formatting DD/MM/YYYY text, counting
// days between dates, breaking a span into years/months/days and adding
// offsets to a base date.
package dateutil

import (
	"fmt"
	"time"
)

// Date is a proleptic Gregorian calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalizing out-of-range fields the way the
// calendar does: 31 February 2024 becomes 2 March 2024.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime extracts the calendar date of t in its own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns d as DD/MM/YYYY.
func (d Date) String() string {
	return Format(d)
}

// GoString is used by %#v and keeps test failures readable.
func (d Date) GoString() string {
	return fmt.Sprintf("dateutil.Date{%04d-%02d-%02d}", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or +1 ordering d against other by year, month, day.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d.Compare(other) == 0 }

// Ordinal returns the number of days since 01/01/0001 (which is day 0).
func (d Date) Ordinal() int {
	y := d.Year - 1
	days := y*365 + y/4 - y/100 + y/400
	for m := time.January; m < d.Month; m++ {
		days += DaysInMonth(d.Year, m)
	}
	return days + d.Day - 1
}

// AddDays moves d by n days (n may be negative).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// AddYears adds a specified number of years, rolling 29 February over into
// March when the target year is not a leap year.
func (d Date) AddYears(years int) Date {
	return NewDate(d.Year+years, d.Month, d.Day)
}

// AddMonths adds a specified number of months, carrying into the year and
// rolling a day past the target month's end into the following month.
func (d Date) AddMonths(months int) Date {
	return NewDate(d.Year, d.Month+time.Month(months), d.Day)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
