package dateutil

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Span is a calendar-aware duration. Months is 0-11 and Days is shorter
// than the month it was borrowed from.
type Span struct {
	Years  int `json:"years" yaml:"years"`
	Months int `json:"months" yaml:"months"`
	Days   int `json:"days" yaml:"days"`
}

func (s Span) String() string {
	return fmt.Sprintf("%d years, %d months, %d days", s.Years, s.Months, s.Days)
}

// Offset is an amount of years, months and days to add to a base date.
type Offset struct {
	Years  int `json:"years" yaml:"years"`
	Months int `json:"months" yaml:"months"`
	Days   int `json:"days" yaml:"days"`
}

// Validate reports ErrNegativeOffset when any field is below zero.
func (o Offset) Validate() error {
	if o.Years < 0 || o.Months < 0 || o.Days < 0 {
		return fmt.Errorf("%w: %+v", ErrNegativeOffset, o)
	}
	return nil
}

// CountDays returns the number of whole days between start and end in
// either order. With includeEnd the end date itself counts as a day.
func CountDays(start, end Date, includeEnd bool) int {
	diff := end.Ordinal() - start.Ordinal()
	if diff < 0 {
		diff = -diff
	}
	if includeEnd {
		diff++
	}
	return diff
}

// Breakdown splits the span between start and end into years, months and
// days. Dates given in reverse order are swapped. With includeEnd the span
// runs through the end of the end date, so 01/01 to 31/01 is one month.
func Breakdown(start, end Date, includeEnd bool) Span {
	if end.Before(start) {
		start, end = end, start
	}
	if includeEnd {
		end = end.AddDays(1)
	}

	years := end.Year - start.Year
	months := int(end.Month) - int(start.Month)
	days := end.Day - start.Day

	// Borrow whole months counting back from the end month until the day
	// difference is non-negative.
	borrowYear, borrowMonth := end.Year, end.Month
	for days < 0 {
		borrowMonth--
		if borrowMonth < 1 {
			borrowMonth = 12
			borrowYear--
		}
		months--
		days += DaysInMonth(borrowYear, borrowMonth)
	}
	for months < 0 {
		years--
		months += 12
	}

	return Span{Years: years, Months: months, Days: days}
}

// AddOffset adds off to base: years first, then months, each step rolling
// over past the end of short months, then days. With includeBase the base
// date is day one of the span, so only off.Days-1 days are added.
func AddOffset(base Date, off Offset, includeBase bool) (Date, error) {
	if err := off.Validate(); err != nil {
		return Date{}, err
	}

	d := base.AddYears(off.Years).AddMonths(off.Months)
	days := off.Days
	if includeBase {
		days--
	}
	return d.AddDays(days), nil
}

// FractionalYears returns the exclusive span between start and end in
// years of 365.25 days, rounded to four places.
func FractionalYears(start, end Date) decimal.Decimal {
	days := decimal.NewFromInt(int64(CountDays(start, end, false)))
	return days.Div(decimal.NewFromFloat(365.25)).Round(4)
}
