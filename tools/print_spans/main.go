package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rpgo/day-counter/pkg/dateutil"
)

// print_spans prints the day count and breakdown from one start date to a
// run of end dates, to eyeball month-end and leap-year behaviour.
func main() {
	startText := flag.String("start", "31/01/2024", "start date DD/MM/YYYY")
	days := flag.Int("days", 70, "number of consecutive end dates")
	step := flag.Int("step", 1, "days between end dates")
	exclusive := flag.Bool("exclusive", false, "exclude the end date")
	flag.Parse()

	start, err := dateutil.Parse(*startText)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "END\tWEEKDAY\tDAYS\tY\tM\tD\tYEARS")
	for i := 0; i < *days; i++ {
		end := start.AddDays(i * *step)
		span := dateutil.Breakdown(start, end, !*exclusive)
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			end, end.Time().Weekday().String()[:3],
			dateutil.CountDays(start, end, !*exclusive),
			span.Years, span.Months, span.Days,
			dateutil.FractionalYears(start, end).StringFixed(4))
	}
	w.Flush()

	fmt.Printf("\nmonth ends of %d plus one month:\n", start.Year)
	for m := time.January; m <= time.December; m++ {
		base := dateutil.NewDate(start.Year, m, dateutil.DaysInMonth(start.Year, m))
		got, _ := dateutil.AddOffset(base, dateutil.Offset{Months: 1}, false)
		fmt.Printf("  %s -> %s\n", base, got)
	}
}
