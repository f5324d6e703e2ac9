package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/day-counter/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	cellStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(14).
			Align(lipgloss.Center)
)

// ConsoleFormatter renders each result as a small card: years, months and
// days side by side for counts, the result date for offsets.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	var buf bytes.Buffer

	for _, r := range results.Counts {
		fmt.Fprintln(&buf, titleStyle.Render(countTitle(r)))
		if r.Error != "" {
			fmt.Fprintln(&buf, errorStyle.Render("ERROR: "+r.Error))
			fmt.Fprintln(&buf)
			continue
		}
		fmt.Fprintln(&buf, lipgloss.JoinHorizontal(lipgloss.Top,
			cell("YEARS", intToString(r.Span.Years)),
			cell("MONTHS", intToString(r.Span.Months)),
			cell("DAYS", intToString(r.Span.Days)),
			cell("TOTAL DAYS", intToString(r.Days)),
		))
		fmt.Fprintln(&buf, subtleStyle.Render(fmt.Sprintf("Counting: %s, about %s years", countingMode(r.IncludeEnd), r.FractionalYears.String())))
		fmt.Fprintln(&buf)
	}

	for _, r := range results.Offsets {
		fmt.Fprintln(&buf, titleStyle.Render(offsetTitle(r)))
		if r.Error != "" {
			fmt.Fprintln(&buf, errorStyle.Render("ERROR: "+r.Error))
			fmt.Fprintln(&buf)
			continue
		}
		added := fmt.Sprintf("%dy %dm %dd", r.Offset.Years, r.Offset.Months, r.Offset.Days)
		fmt.Fprintln(&buf, lipgloss.JoinHorizontal(lipgloss.Top,
			cell("RESULT DATE", r.Result),
			cell("ADDED", added),
		))
		fmt.Fprintln(&buf, subtleStyle.Render("Counting: "+baseMode(r.IncludeBase)))
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}

func cell(label, value string) string {
	return cellStyle.Render(lipgloss.JoinVertical(lipgloss.Center, labelStyle.Render(label), value))
}

// TextFormatter provides a concise one-line-per-result summary.
type TextFormatter struct{}

func (t TextFormatter) Name() string { return "text" }

func (t TextFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range results.Counts {
		if r.Error != "" {
			fmt.Fprintf(&buf, "%s: error: %s\n", countTitle(r), r.Error)
			continue
		}
		fmt.Fprintf(&buf, "%s: %d days (%s) inclusive=%t\n", countTitle(r), r.Days, r.Span, r.IncludeEnd)
	}
	for _, r := range results.Offsets {
		if r.Error != "" {
			fmt.Fprintf(&buf, "%s: error: %s\n", offsetTitle(r), r.Error)
			continue
		}
		fmt.Fprintf(&buf, "%s: %s + %dy %dm %dd = %s inclusive=%t\n",
			offsetTitle(r), r.Base, r.Offset.Years, r.Offset.Months, r.Offset.Days, r.Result, r.IncludeBase)
	}
	return buf.Bytes(), nil
}
