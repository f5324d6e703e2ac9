package config

import (
	"fmt"
	"os"

	"github.com/rpgo/day-counter/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of batch input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a batch of calculations from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses and validates an in-memory batch document
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Batch, error) {
	var batch domain.Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateBatch(&batch); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	return &batch, nil
}

// ValidateBatch checks that the batch holds at least one calculation and
// that every request carries its required fields. Date texts themselves are
// checked when the batch runs so that one bad date only fails its own item.
func (ip *InputParser) ValidateBatch(batch *domain.Batch) error {
	if batch.Len() == 0 {
		return fmt.Errorf("no calculations provided")
	}
	return domain.Validate(batch)
}

// CreateExampleBatch returns a small batch that exercises both calculations
func (ip *InputParser) CreateExampleBatch() *domain.Batch {
	return &domain.Batch{
		Counts: []domain.CountRequest{
			{Name: "January", Start: "01/01/2024", End: "31/01/2024"},
			{Name: "Leap day span", Start: "28/02/2024", End: "01/03/2024", ExcludeEnd: true},
		},
		Offsets: []domain.OffsetRequest{
			{Name: "Thirty day notice", Base: "15/06/2025", Days: 30},
			{Name: "Month end", Base: "31/01/2024", Months: 1, ExcludeBase: true},
		},
	}
}

// SaveBatch writes a batch back out as YAML
func SaveBatch(batch *domain.Batch, filename string) error {
	b, err := yaml.Marshal(batch)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
