package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lvervaek/energy-app/pkg/models/domain"
	"github.com/lvervaek/energy-app/pkg/services/cost"
)

// BuildReportXLSX renders the cost report as a two-sheet workbook.
func BuildReportXLSX(report *domain.CostReport) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	monthlySheet := "monthly"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Electricity Cost Report")
	_ = f.SetCellValue(summarySheet, "A3", "Period")
	_ = f.SetCellValue(summarySheet, "B3", fmt.Sprintf("%s to %s",
		report.From.Format("Jan 2006"), report.To.Format("Jan 2006")))

	b := report.Breakdown
	summary := []struct {
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
	for i, row := range summary {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+5), row.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+5), cost.Round2(row.value))
	}

	headers := []string{"Month", "Energy", "Variable grid", "Capacity tariff", "Fixed costs", "Levies", "VAT", "kW peak"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(monthlySheet, cell, h)
	}
	for i, m := range report.Monthly {
		values := []any{
			m.Month.Format("Jan 2006"),
			cost.Round2(m.EnergyCost),
			cost.Round2(m.GridCost),
			cost.Round2(m.CapacityCost),
			cost.Round2(m.DataCost),
			cost.Round2(m.LeviesCost),
			cost.Round2(m.VAT),
			cost.Round2(m.KWPeak),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, i+2)
			_ = f.SetCellValue(monthlySheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
