package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/spend-atlas/pkg/models/domain"
)

// Reporter prints an analysis report to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.AnalysisReport) error {
	tmpl := `
{{.Summary}}
Period: {{.Window.Start.Format "2006-01-02"}} to {{.Window.End.Format "2006-01-02"}} ({{.Window.Days}} days)

=== Patterns ===
Weekday average: {{.Patterns.WeekdayAverage.StringFixed 2}}
Weekend average: {{.Patterns.WeekendAverage.StringFixed 2}}
Evening total:   {{.Patterns.EveningTotal.StringFixed 2}}

{{if .Warnings}}=== Warnings ===
{{range .Warnings}}- [{{.Kind}}] {{.Message}}
{{end}}{{else}}No warnings for this period.
{{end}}`

	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
