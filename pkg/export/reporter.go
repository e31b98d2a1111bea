package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lvervaek/energy-app/pkg/adapters"
	"github.com/lvervaek/energy-app/pkg/models/domain"
)

// Format selects the report rendering.
type Format string

const (
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Reporter writes a cost report to an output stream in the requested
// format.
type Reporter struct {
	writer io.Writer
	format Format
}

func NewReporter(writer io.Writer, format Format) *Reporter {
	return &Reporter{writer: writer, format: format}
}

func (r *Reporter) Handle(report *domain.CostReport) error {
	switch r.format {
	case FormatJSON, "":
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapDomainReportToAPI(report))
	case FormatPDF:
		data, err := BuildReportPDF(report)
		if err != nil {
			return err
		}
		_, err = r.writer.Write(data)
		return err
	case FormatXLSX:
		data, err := BuildReportXLSX(report)
		if err != nil {
			return err
		}
		_, err = r.writer.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported report format: %s", r.format)
	}
}
