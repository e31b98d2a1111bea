package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lvervaek/energy-app/pkg/models/api"
	"github.com/lvervaek/energy-app/pkg/models/domain"
)

func sampleReport() *domain.CostReport {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	return &domain.CostReport{
		Breakdown: domain.CostBreakdown{
			Energy: 400.8, VariableGrid: 2.4, Capacity: 240, Fixed: 3,
			Levies: 0.96, VAT: 38.8296, Total: 685.9896,
		},
		Monthly: []domain.MonthlyCost{
			{Month: jan, EnergyCost: 200.4, CapacityCost: 124, DataCost: 1.55, GridCost: 1.2, LeviesCost: 0.48, KWPeak: 40, VAT: 19.66},
			{Month: feb, EnergyCost: 200.4, CapacityCost: 116, DataCost: 1.45, GridCost: 1.2, LeviesCost: 0.48, KWPeak: 40, VAT: 19.17},
		},
		From: jan,
		To:   feb,
		Warnings: []domain.Warning{
			{Component: "grid", Message: "no levy rates for year 2023"},
		},
	}
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatJSON).Handle(sampleReport()))

	var report api.CostReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 400.8, report.CostBreakdown.Energy)
	require.Len(t, report.MonthlyData, 2)
	assert.Equal(t, "Feb", report.MonthlyData[1].Month)
}

func TestReporter_DefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, "").Handle(sampleReport()))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestReporter_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatPDF).Handle(sampleReport()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestReporter_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatXLSX).Handle(sampleReport()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	period, err := f.GetCellValue("summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Jan 2024 to Feb 2024", period)

	monthCell, err := f.GetCellValue("monthly", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jan 2024", monthCell)
}

func TestReporter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewReporter(&buf, "csv").Handle(sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
