package calculation

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rpgo/day-counter/internal/domain"
	"github.com/rpgo/day-counter/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func newTestEngine() *CalculationEngine {
	ce := NewCalculationEngine()
	ce.SetClock(FixedClock(testNow))
	return ce
}

func TestCount(t *testing.T) {
	ce := newTestEngine()

	res, err := ce.Count(domain.CountRequest{Name: "jan", Start: "01/01/2024", End: "31/01/2024"})
	require.NoError(t, err)
	assert.Equal(t, "jan", res.Name)
	assert.Equal(t, 31, res.Days)
	assert.True(t, res.IncludeEnd)
	assert.Equal(t, dateutil.Span{Months: 1}, res.Span)
	assert.True(t, decimal.RequireFromString("0.0821").Equal(res.FractionalYears), res.FractionalYears.String())

	res, err = ce.Count(domain.CountRequest{Start: "01/01/2024", End: "01/03/2024", ExcludeEnd: true})
	require.NoError(t, err)
	assert.Equal(t, 60, res.Days)
	assert.Equal(t, dateutil.Span{Months: 2}, res.Span)
}

func TestCountNormalizesInput(t *testing.T) {
	ce := newTestEngine()

	res, err := ce.Count(domain.CountRequest{Start: " 30/02/2024 ", End: "14", ExcludeEnd: true})
	require.NoError(t, err)
	assert.Equal(t, "01/03/2024", res.Start)
	assert.Equal(t, "14/06/2025", res.End)
}

func TestCountErrors(t *testing.T) {
	ce := newTestEngine()

	_, err := ce.Count(domain.CountRequest{Start: "01/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = ce.Count(domain.CountRequest{Start: "aa/01/2024", End: "01/01/2024"})
	assert.ErrorIs(t, err, dateutil.ErrNotNumeric)
	assert.Contains(t, err.Error(), "start date")

	_, err = ce.Count(domain.CountRequest{Start: "01/01/2024", End: "01/13/2024"})
	assert.ErrorIs(t, err, dateutil.ErrOutOfRange)
	assert.Contains(t, err.Error(), "end date")
}

func TestStrictEngine(t *testing.T) {
	ce := NewCalculationEngineWithOptions(dateutil.ParseOptions{Strict: true})

	_, err := ce.Count(domain.CountRequest{Start: "30/02/2024", End: "01/03/2024"})
	assert.ErrorIs(t, err, dateutil.ErrOutOfRange)

	_, err = ce.Offset(domain.OffsetRequest{Base: "31/04/2024", Days: 1})
	assert.ErrorIs(t, err, dateutil.ErrOutOfRange)
}

func TestOffset(t *testing.T) {
	ce := newTestEngine()

	tests := []struct {
		name     string
		req      domain.OffsetRequest
		expected string
	}{
		{"Month overflow", domain.OffsetRequest{Base: "31/01/2024", Months: 1, ExcludeBase: true}, "02/03/2024"},
		{"Inclusive days", domain.OffsetRequest{Base: "01/01/2024", Days: 31}, "31/01/2024"},
		{"Exclusive days", domain.OffsetRequest{Base: "01/01/2024", Days: 31, ExcludeBase: true}, "01/02/2024"},
		{"Bare day base", domain.OffsetRequest{Base: "01", Days: 30, ExcludeBase: true}, "01/07/2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ce.Offset(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Result)
			assert.Equal(t, tt.req.Offset(), res.Offset)
			assert.Equal(t, tt.req.IncludeBase(), res.IncludeBase)
		})
	}
}

func TestOffsetErrors(t *testing.T) {
	ce := newTestEngine()

	_, err := ce.Offset(domain.OffsetRequest{Base: "01/01/2024", Days: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = ce.Offset(domain.OffsetRequest{Base: "1/1/2024", Days: 1})
	assert.ErrorIs(t, err, dateutil.ErrMalformed)
	assert.Contains(t, err.Error(), "base date")
}

func TestRunBatch(t *testing.T) {
	ce := newTestEngine()
	batch := &domain.Batch{
		Counts: []domain.CountRequest{
			{Name: "ok", Start: "01/01/2024", End: "31/01/2024"},
			{Name: "bad", Start: "01/01/2024", End: "32/01/2024"},
		},
		Offsets: []domain.OffsetRequest{
			{Name: "ok", Base: "31/01/2024", Months: 1, ExcludeBase: true},
			{Name: "bad", Base: "01/01/1900", Days: 1},
		},
	}

	res, err := ce.RunBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, res.Counts, 2)
	require.Len(t, res.Offsets, 2)
	assert.Equal(t, testNow, res.GeneratedAt)
	assert.Equal(t, 2, res.Failed())

	assert.Equal(t, 31, res.Counts[0].Days)
	assert.Empty(t, res.Counts[0].Error)
	assert.Contains(t, res.Counts[1].Error, "out of range")
	assert.Equal(t, "32/01/2024", res.Counts[1].End)

	assert.Equal(t, "02/03/2024", res.Offsets[0].Result)
	assert.Contains(t, res.Offsets[1].Error, "year")
	assert.Empty(t, res.Offsets[1].Result)
}

func TestRunBatchCancelled(t *testing.T) {
	ce := newTestEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ce.RunBatch(ctx, &domain.Batch{Counts: []domain.CountRequest{{Start: "01/01/2024", End: "02/01/2024"}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	ce := newTestEngine()
	ce.SetLogger(NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	_, err := ce.RunBatch(context.Background(), &domain.Batch{
		Counts: []domain.CountRequest{{Start: "01/01/2024", End: "oops"}},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "batch complete: 1 calculations, 1 failed")

	ce.SetLogger(nil)
	assert.IsType(t, NopLogger{}, ce.Logger)
	ce.SetClock(nil)
	assert.IsType(t, RealClock{}, ce.Clock)
}
