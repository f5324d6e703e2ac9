package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rpgo/day-counter/internal/calculation"
	"github.com/rpgo/day-counter/internal/config"
	"github.com/rpgo/day-counter/pkg/dateutil"
)

// debug_batch runs a batch file with debug logging and prints each result
// next to the parsed dates the engine worked from.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_batch <batch-file> [--strict]")
		return
	}
	p := config.NewInputParser()
	batch, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	strict := len(os.Args) > 2 && os.Args[2] == "--strict"

	engine := calculation.NewCalculationEngineWithOptions(dateutil.ParseOptions{Strict: strict})
	engine.SetLogger(calculation.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	res, err := engine.RunBatch(context.Background(), batch)
	if err != nil {
		panic(err)
	}

	for i, c := range res.Counts {
		req := batch.Counts[i]
		fmt.Printf("count %d %q\n", i, c.Name)
		fmt.Printf("  input:  %q -> %q exclude_end=%t\n", req.Start, req.End, req.ExcludeEnd)
		if c.Error != "" {
			fmt.Printf("  error:  %s\n", c.Error)
			continue
		}
		start, _ := engine.ParseDate(c.Start)
		end, _ := engine.ParseDate(c.End)
		fmt.Printf("  dates:  %#v -> %#v (ordinals %d, %d)\n", start, end, start.Ordinal(), end.Ordinal())
		fmt.Printf("  result: %d days, %s, %s years\n", c.Days, c.Span, c.FractionalYears)
	}
	for i, o := range res.Offsets {
		req := batch.Offsets[i]
		fmt.Printf("offset %d %q\n", i, o.Name)
		fmt.Printf("  input:  %q + %+v exclude_base=%t\n", req.Base, req.Offset(), req.ExcludeBase)
		if o.Error != "" {
			fmt.Printf("  error:  %s\n", o.Error)
			continue
		}
		base, _ := engine.ParseDate(o.Base)
		stepped := base.AddYears(o.Offset.Years)
		fmt.Printf("  steps:  %s +%dy=%s +%dm=%s\n", base, o.Offset.Years, stepped, o.Offset.Months, stepped.AddMonths(o.Offset.Months))
		fmt.Printf("  result: %s\n", o.Result)
	}
	fmt.Printf("%d calculations, %d failed\n", batch.Len(), res.Failed())
}
