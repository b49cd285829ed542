package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/spend-atlas/pkg/adapters"
	"github.com/de-tools/spend-atlas/pkg/models/domain"
)

// Reporter writes an analysis report as indented JSON, in the same wire
// shape the HTTP API serves, so CLI output can be piped into other tools.
type Reporter struct {
	writer io.Writer
	now    func() time.Time
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		now:    time.Now,
	}
}

func (c *Reporter) Handle(report *domain.AnalysisReport) error {
	response := adapters.MapAnalysisReportDomainToApi(*report, c.now())

	enc := json.NewEncoder(c.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(response); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
