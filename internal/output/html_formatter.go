package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/day-counter/internal/domain"
)

// HTMLFormatter produces a standalone HTML page with one result card per calculation.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"countTitle":   countTitle,
	"offsetTitle":  offsetTitle,
	"countingMode": countingMode,
	"baseMode":     baseMode,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.BatchResults) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
