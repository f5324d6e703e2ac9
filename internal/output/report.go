package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/day-counter/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the batch results as YAML, in the same shape a
// batch file uses.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	return yaml.Marshal(results)
}

// GenerateReport writes results to a timestamped file in dir using the named format.
// "all" writes one file per registered formatter.
func GenerateReport(results *domain.BatchResults, format, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var files []string
		for _, name := range AvailableFormatterNames() {
			fn, err := WriteFormatted(GetFormatterByName(name), results, dir, extension(name))
			if err != nil {
				return files, err
			}
			files = append(files, fn)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	fn, err := WriteFormatted(f, results, dir, extension(f.Name()))
	if err != nil {
		return nil, fmt.Errorf("write %s report: %w", f.Name(), err)
	}
	return []string{fn}, nil
}

func extension(name string) string {
	switch name {
	case "console":
		return "console.txt"
	case "text":
		return "txt"
	default:
		return name
	}
}
