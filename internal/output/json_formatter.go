package output

import (
	"encoding/json"

	"github.com/rpgo/day-counter/internal/domain"
)

// JSONFormatter serializes the batch results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
