package output

import (
	"strconv"

	"github.com/rpgo/day-counter/internal/domain"
)

// countTitle names a count result for display: its name, or the date range.
func countTitle(c domain.CountResult) string {
	if c.Name != "" {
		return c.Name
	}
	return c.Start + " to " + c.End
}

func offsetTitle(o domain.OffsetResult) string {
	if o.Name != "" {
		return o.Name
	}
	return "From " + o.Base
}

// countingMode mirrors the wording of the inclusion checkbox.
func countingMode(inclusive bool) string {
	if inclusive {
		return "Start date to End date (inclusive)"
	}
	return "Start date to Next day of End date"
}

func baseMode(inclusive bool) string {
	if inclusive {
		return "Starting from base date"
	}
	return "Starting from next day"
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
