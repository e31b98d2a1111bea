package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvervaek/energy-app/pkg/models/domain"
	"github.com/lvervaek/energy-app/pkg/services/cost"
)

// BuildReportPDF renders the cost report as a one-page bill audit.
func BuildReportPDF(report *domain.CostReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Electricity Cost Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s",
		report.From.Format("Jan 2006"), report.To.Format("Jan 2006")))
	pdf.Ln(8)

	b := report.Breakdown
	rows := []struct {
		label string
		value float64
	}{
		{"Energy", b.Energy},
		{"Variable grid", b.VariableGrid},
		{"Capacity tariff", b.Capacity},
		{"Fixed costs", b.Fixed},
		{"Levies", b.Levies},
		{"VAT", b.VAT},
		{"Total", b.Total},
	}
	for _, row := range rows {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %.2f EUR", row.label, cost.Round2(row.value)))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// Monthly table
	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Month", "Energy", "Grid", "Capacity", "Fixed", "Levies", "VAT"}
	for _, h := range headers {
		pdf.CellFormat(26, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, m := range report.Monthly {
		pdf.CellFormat(26, 6, m.Month.Format("Jan 2006"), "1", 0, "C", false, 0, "")
		for _, v := range []float64{m.EnergyCost, m.GridCost, m.CapacityCost, m.DataCost, m.LeviesCost, m.VAT} {
			pdf.CellFormat(26, 6, fmt.Sprintf("%.2f", cost.Round2(v)), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(report.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		for _, w := range report.Warnings {
			pdf.Cell(0, 5, fmt.Sprintf("Warning (%s): %s", w.Component, w.Message))
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
