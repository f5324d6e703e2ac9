package calculation

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpgo/day-counter/internal/domain"
	"github.com/rpgo/day-counter/pkg/dateutil"
)

// CalculationEngine turns day-count and date-offset requests into results.
// It holds no mutable state once configured and may be shared between
// goroutines.
type CalculationEngine struct {
	ParseOptions dateutil.ParseOptions
	Clock        Clock
	Logger       Logger
}

// NewCalculationEngine creates an engine with the lenient parser
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithOptions(dateutil.ParseOptions{})
}

// NewCalculationEngineWithOptions creates an engine with the given parser options
func NewCalculationEngineWithOptions(opts dateutil.ParseOptions) *CalculationEngine {
	return &CalculationEngine{
		ParseOptions: opts,
		Clock:        RealClock{},
		Logger:       NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SetClock replaces the clock used to complete bare days. Nil restores the real clock.
func (ce *CalculationEngine) SetClock(c Clock) {
	if c == nil {
		ce.Clock = RealClock{}
		return
	}
	ce.Clock = c
}

// ParseDate reads user input: surrounding blanks are dropped and a bare
// two-digit day is completed with the current month and year.
func (ce *CalculationEngine) ParseDate(text string) (dateutil.Date, error) {
	text = dateutil.CompleteDay(strings.TrimSpace(text), ce.Clock.Now())
	return dateutil.ParseWithOptions(text, ce.ParseOptions)
}

// Count computes the day count and calendar breakdown between two dates
func (ce *CalculationEngine) Count(req domain.CountRequest) (*domain.CountResult, error) {
	if err := domain.Validate(req); err != nil {
		return nil, err
	}
	start, err := ce.ParseDate(req.Start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	end, err := ce.ParseDate(req.End)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}

	inclusive := req.IncludeEnd()
	result := &domain.CountResult{
		Name:            req.Name,
		Start:           dateutil.Format(start),
		End:             dateutil.Format(end),
		IncludeEnd:      inclusive,
		Days:            dateutil.CountDays(start, end, inclusive),
		Span:            dateutil.Breakdown(start, end, inclusive),
		FractionalYears: dateutil.FractionalYears(start, end),
	}
	ce.Logger.Debugf("count %s -> %s inclusive=%t: %d days (%s)", result.Start, result.End, inclusive, result.Days, result.Span)
	return result, nil
}

// Offset computes the date reached by adding the requested offset to the base date
func (ce *CalculationEngine) Offset(req domain.OffsetRequest) (*domain.OffsetResult, error) {
	if err := domain.Validate(req); err != nil {
		return nil, err
	}
	base, err := ce.ParseDate(req.Base)
	if err != nil {
		return nil, fmt.Errorf("base date: %w", err)
	}

	inclusive := req.IncludeBase()
	got, err := dateutil.AddOffset(base, req.Offset(), inclusive)
	if err != nil {
		return nil, err
	}

	result := &domain.OffsetResult{
		Name:        req.Name,
		Base:        dateutil.Format(base),
		Offset:      req.Offset(),
		IncludeBase: inclusive,
		Result:      dateutil.Format(got),
	}
	ce.Logger.Debugf("offset %s + %+v inclusive=%t: %s", result.Base, result.Offset, inclusive, result.Result)
	return result, nil
}

// RunBatch evaluates every request of a batch in order. A failing request
// records its error in its own result and does not stop the batch; only
// cancellation of ctx does.
func (ce *CalculationEngine) RunBatch(ctx context.Context, batch *domain.Batch) (*domain.BatchResults, error) {
	results := &domain.BatchResults{
		GeneratedAt: ce.Clock.Now(),
		Counts:      make([]domain.CountResult, 0, len(batch.Counts)),
		Offsets:     make([]domain.OffsetResult, 0, len(batch.Offsets)),
	}

	for i, req := range batch.Counts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := ce.Count(req)
		if err != nil {
			ce.Logger.Warnf("count %d (%s): %v", i, req.Name, err)
			res = &domain.CountResult{Name: req.Name, Start: req.Start, End: req.End, IncludeEnd: req.IncludeEnd(), Error: err.Error()}
		}
		results.Counts = append(results.Counts, *res)
	}

	for i, req := range batch.Offsets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := ce.Offset(req)
		if err != nil {
			ce.Logger.Warnf("offset %d (%s): %v", i, req.Name, err)
			res = &domain.OffsetResult{Name: req.Name, Base: req.Base, Offset: req.Offset(), IncludeBase: req.IncludeBase(), Error: err.Error()}
		}
		results.Offsets = append(results.Offsets, *res)
	}

	ce.Logger.Infof("batch complete: %d calculations, %d failed", batch.Len(), results.Failed())
	return results, nil
}
