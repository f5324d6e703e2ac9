package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/day-counter/internal/calculation"
	"github.com/rpgo/day-counter/internal/config"
	"github.com/rpgo/day-counter/internal/domain"
	"github.com/rpgo/day-counter/internal/output"
	"github.com/rpgo/day-counter/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFile(t *testing.T, path string) *domain.BatchResults {
	t.Helper()
	parser := config.NewInputParser()
	batch, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, batch)

	engine := calculation.NewCalculationEngine()
	results, err := engine.RunBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, results.Counts, len(batch.Counts))
	require.Len(t, results.Offsets, len(batch.Offsets))
	return results
}

func TestEndToEndCalculation(t *testing.T) {
	results := runFile(t, "../testdata/example_batch.yaml")
	assert.Zero(t, results.Failed())

	counts := results.Counts
	assert.Equal(t, 31, counts[0].Days)
	assert.Equal(t, dateutil.Span{Months: 1}, counts[0].Span)

	assert.Equal(t, 60, counts[1].Days)
	assert.Equal(t, dateutil.Span{Months: 2}, counts[1].Span)

	assert.Equal(t, 2, counts[2].Days)
	assert.Equal(t, dateutil.Span{Days: 2}, counts[2].Span)

	// 10/03/2001 through 15/08/2030
	assert.Equal(t, dateutil.Span{Years: 29, Months: 5, Days: 6}, counts[3].Span)
	assert.Equal(t, "15/08/2030", counts[3].Start)

	assert.Equal(t, "01/03/2024", counts[4].Start)
	assert.Equal(t, 2, counts[4].Days)

	offsets := results.Offsets
	assert.Equal(t, "02/03/2024", offsets[0].Result)
	assert.Equal(t, "14/07/2025", offsets[1].Result)
	assert.Equal(t, "01/03/2025", offsets[2].Result)
	// 01/01/2000 + 10y = 2010, + 14m = 01/03/2011, + 399 days inclusive
	assert.Equal(t, "03/04/2012", offsets[3].Result)
}

func TestBreakdownMatchesFile(t *testing.T) {
	results := runFile(t, "../testdata/example_batch.yaml")
	for _, c := range results.Counts {
		start, err := dateutil.Parse(c.Start)
		require.NoError(t, err)
		end, err := dateutil.Parse(c.End)
		require.NoError(t, err)
		assert.Equal(t, dateutil.CountDays(start, end, c.IncludeEnd), c.Days, c.Name)
		assert.True(t, c.FractionalYears.GreaterThanOrEqual(decimal.Zero), c.Name)
	}
}

func TestInvalidBatchReportsEachFailure(t *testing.T) {
	results := runFile(t, "../testdata/invalid_batch.yaml")
	assert.Equal(t, 4, results.Failed())

	assert.Empty(t, results.Counts[0].Error)
	assert.Equal(t, 366, results.Counts[0].Days)
	assert.Contains(t, results.Counts[1].Error, "out of range")
	assert.Contains(t, results.Counts[2].Error, "not numeric")
	assert.Contains(t, results.Counts[3].Error, "out of range")
	assert.Contains(t, results.Offsets[0].Error, "malformed")
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()
	batch, err := parser.LoadFromFile("../testdata/example_batch.yaml")
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateBatch(batch))

	assert.Error(t, parser.ValidateBatch(&domain.Batch{}))
}

func TestOutputGeneration(t *testing.T) {
	results := runFile(t, "../testdata/example_batch.yaml")
	dir := t.TempDir()

	files, err := output.GenerateReport(results, "all", dir)
	require.NoError(t, err)
	assert.Len(t, files, len(output.AvailableFormatterNames()))

	for _, f := range files {
		assert.Equal(t, dir, filepath.Dir(f))
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), f)
	}
}

func TestSaveBatchRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	batch, err := parser.LoadFromFile("../testdata/example_batch.yaml")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "copy.yaml")
	require.NoError(t, config.SaveBatch(batch, path))

	again, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, batch, again)
}
