package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/day-counter/internal/domain"
)

// CSVFormatter writes one row per result. Count and offset rows share a
// header; columns that do not apply to a row are left empty.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Kind", "Name", "Start", "End", "Inclusive", "Days", "Years", "Months", "SpanDays", "FractionalYears", "AddYears", "AddMonths", "AddDays", "Result", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Counts {
		row := []string{"count", r.Name, r.Start, r.End, boolToString(r.IncludeEnd), "", "", "", "", "", "", "", "", "", r.Error}
		if r.Error == "" {
			row[5] = intToString(r.Days)
			row[6] = intToString(r.Span.Years)
			row[7] = intToString(r.Span.Months)
			row[8] = intToString(r.Span.Days)
			row[9] = r.FractionalYears.StringFixed(4)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	for _, r := range results.Offsets {
		row := []string{"offset", r.Name, r.Base, "", boolToString(r.IncludeBase), "", "", "", "", "",
			intToString(r.Offset.Years), intToString(r.Offset.Months), intToString(r.Offset.Days), r.Result, r.Error}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
