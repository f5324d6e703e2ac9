package domain

import (
	"time"

	"github.com/rpgo/day-counter/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// CountRequest asks for the distance between two DD/MM/YYYY dates.
// The end date is counted unless ExcludeEnd is set.
type CountRequest struct {
	Name       string `yaml:"name,omitempty" json:"name,omitempty"`
	Start      string `yaml:"start" json:"start" validate:"required"`
	End        string `yaml:"end" json:"end" validate:"required"`
	ExcludeEnd bool   `yaml:"exclude_end,omitempty" json:"exclude_end,omitempty"`
}

// IncludeEnd reports whether the end date counts as a day.
func (r CountRequest) IncludeEnd() bool { return !r.ExcludeEnd }

// CountResult is the answer to a CountRequest. Start and End echo the
// normalized dates; Error is set instead of the figures when the request
// could not be computed.
type CountResult struct {
	Name            string          `yaml:"name,omitempty" json:"name,omitempty"`
	Start           string          `yaml:"start" json:"start"`
	End             string          `yaml:"end" json:"end"`
	IncludeEnd      bool            `yaml:"include_end" json:"include_end"`
	Days            int             `yaml:"days" json:"days"`
	Span            dateutil.Span   `yaml:"span" json:"span"`
	FractionalYears decimal.Decimal `yaml:"fractional_years" json:"fractional_years"`
	Error           string          `yaml:"error,omitempty" json:"error,omitempty"`
}

// OffsetRequest asks for the date reached by adding years, months and days
// to Base. The base date is day one of the span unless ExcludeBase is set.
type OffsetRequest struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Base        string `yaml:"base" json:"base" validate:"required"`
	Years       int    `yaml:"years,omitempty" json:"years,omitempty" validate:"gte=0"`
	Months      int    `yaml:"months,omitempty" json:"months,omitempty" validate:"gte=0"`
	Days        int    `yaml:"days,omitempty" json:"days,omitempty" validate:"gte=0"`
	ExcludeBase bool   `yaml:"exclude_base,omitempty" json:"exclude_base,omitempty"`
}

// Offset returns the requested amount as a dateutil.Offset.
func (r OffsetRequest) Offset() dateutil.Offset {
	return dateutil.Offset{Years: r.Years, Months: r.Months, Days: r.Days}
}

// IncludeBase reports whether the base date counts as day one.
func (r OffsetRequest) IncludeBase() bool { return !r.ExcludeBase }

// OffsetResult is the answer to an OffsetRequest.
type OffsetResult struct {
	Name        string          `yaml:"name,omitempty" json:"name,omitempty"`
	Base        string          `yaml:"base" json:"base"`
	Offset      dateutil.Offset `yaml:"offset" json:"offset"`
	IncludeBase bool            `yaml:"include_base" json:"include_base"`
	Result      string          `yaml:"result" json:"result"`
	Error       string          `yaml:"error,omitempty" json:"error,omitempty"`
}

// Batch is the shape of a batch input file.
type Batch struct {
	Counts  []CountRequest  `yaml:"counts" json:"counts" validate:"dive"`
	Offsets []OffsetRequest `yaml:"offsets" json:"offsets" validate:"dive"`
}

// Len returns the number of calculations in the batch.
func (b *Batch) Len() int { return len(b.Counts) + len(b.Offsets) }

// BatchResults holds every answer of a batch run in input order.
type BatchResults struct {
	GeneratedAt time.Time      `yaml:"generated_at" json:"generated_at"`
	Counts      []CountResult  `yaml:"counts" json:"counts"`
	Offsets     []OffsetResult `yaml:"offsets" json:"offsets"`
}

// Failed returns how many results carry an error.
func (br *BatchResults) Failed() int {
	n := 0
	for _, c := range br.Counts {
		if c.Error != "" {
			n++
		}
	}
	for _, o := range br.Offsets {
		if o.Error != "" {
			n++
		}
	}
	return n
}
