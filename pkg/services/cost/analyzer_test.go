package cost_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvervaek/energy-app/pkg/adapters"
	"github.com/lvervaek/energy-app/pkg/models/domain"
	"github.com/lvervaek/energy-app/pkg/services/cost"
	"github.com/lvervaek/energy-app/pkg/store/refdata"
)

const exportHeader = "Van (datum);Van (tijdstip);Tot (datum);Tot (tijdstip);" +
	"EAN-code;Meter;Metertype;Register;Volume;Eenheid;Validatiestatus;Omschrijving"

func exportRow(date, clock, register, volume string) string {
	return strings.Join([]string{
		date, clock, date, clock,
		"541448123456789012", "1SAG1100000012", "Digitale meter",
		register, volume, "kWh", "Gevalideerd", "",
	}, ";")
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

// threeMonthExport has four 10 kWh offtake-peak intervals in each of
// Jan, Feb and Mar 2024.
func threeMonthExport() string {
	rows := []string{exportHeader}
	for _, date := range []string{"05/01/2024", "05/02/2024", "05/03/2024"} {
		for _, clock := range []string{"00:00", "00:15", "00:30", "00:45"} {
			rows = append(rows, exportRow(date, clock, "Afname Dag", "10,0"))
		}
	}
	return strings.Join(rows, "\n")
}

func analyzerStore() *refdata.Store {
	indexes := map[string]map[time.Time]float64{
		"epex": {
			month(2024, time.January):  100,
			month(2024, time.February): 100,
			month(2024, time.March):    100,
		},
	}
	formulas := []domain.TariffFormula{
		{ProductID: "acme_flex", Flow: domain.FlowOfftakePeak, IndexName: "epex", A: 50, B: 10},
		{ProductID: "acme_flex", Flow: domain.FlowOfftakeOffpeak, IndexName: "epex", A: 50, B: 10},
		{ProductID: "acme_flex", Flow: domain.FlowInjectionPeak, IndexName: "epex", A: 50, B: 10},
		{ProductID: "acme_flex", Flow: domain.FlowInjectionOffpeak, IndexName: "epex", A: 50, B: 10},
	}
	return refdata.NewStore(
		[]domain.CatalogEntry{{Supplier: "Acme", Product: "Flex", ProductID: "acme_flex"}},
		formulas,
		indexes,
		map[string]string{"9000": "Fluvius Gent"},
		[]domain.GridLevyRate{{
			Operator: "Fluvius Gent", Year: 2024,
			CapacityPerKWDay: 0.1, DataTariffPerDay: 0.05,
			GridCostPerMWh: 30, LeviesCostPerMWh: 12,
		}},
	)
}

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

var testRequest = cost.AnalyzeRequest{Supplier: "Acme", Product: "Flex", PostalCode: "9000"}

func TestAnalyze_HandComputedScenario(t *testing.T) {
	analyzer := cost.NewAnalyzer(analyzerStore())

	report, err := analyzer.Analyze(testContext(), strings.NewReader(threeMonthExport()), testRequest)
	require.NoError(t, err)
	require.Len(t, report.Monthly, 3)
	assert.Empty(t, report.Warnings)

	// Unit price: (50*100 + 10)/1000 = 5.01 EUR/kWh. Monthly volume
	// 40 kWh, peak interval 10 kWh -> 40 kW demand.
	days := []float64{31, 29, 31}
	for i, line := range report.Monthly {
		assert.InDelta(t, 200.4, line.EnergyCost, 1e-9, "month %d energy", i)
		assert.InDelta(t, 40*0.1*days[i], line.CapacityCost, 1e-9, "month %d capacity", i)
		assert.InDelta(t, 0.05*days[i], line.DataCost, 1e-9, "month %d data", i)
		assert.InDelta(t, 40*30*0.001, line.GridCost, 1e-9, "month %d grid", i)
		assert.InDelta(t, 40*12*0.001, line.LeviesCost, 1e-9, "month %d levies", i)
		assert.Equal(t, 40.0, line.KWPeak)
		assert.InDelta(t, line.TotalExclVAT*1.06, line.TotalInclVAT, 1e-9)
	}

	assert.Equal(t, month(2024, time.January), report.From)
	assert.Equal(t, month(2024, time.March), report.To)
	assert.InDelta(t, 601.2, report.Breakdown.Energy, 1e-9)
}

func TestAnalyze_Deterministic(t *testing.T) {
	analyzer := cost.NewAnalyzer(analyzerStore())

	first, err := analyzer.Analyze(testContext(), strings.NewReader(threeMonthExport()), testRequest)
	require.NoError(t, err)
	second, err := analyzer.Analyze(testContext(), strings.NewReader(threeMonthExport()), testRequest)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(adapters.MapDomainReportToAPI(first))
	require.NoError(t, err)
	secondJSON, err := json.Marshal(adapters.MapDomainReportToAPI(second))
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAnalyze_UnknownProduct(t *testing.T) {
	analyzer := cost.NewAnalyzer(analyzerStore())

	report, err := analyzer.Analyze(testContext(), strings.NewReader(threeMonthExport()),
		cost.AnalyzeRequest{Supplier: "Acme", Product: "DoesNotExist", PostalCode: "9000"})

	var unknown *domain.UnknownProductError
	require.ErrorAs(t, err, &unknown)
	assert.Nil(t, report)
}

func TestAnalyze_UnknownPostalCode(t *testing.T) {
	analyzer := cost.NewAnalyzer(analyzerStore())

	_, err := analyzer.Analyze(testContext(), strings.NewReader(threeMonthExport()),
		cost.AnalyzeRequest{Supplier: "Acme", Product: "Flex", PostalCode: "0000"})

	var unknown *domain.UnknownPostalCodeError
	require.ErrorAs(t, err, &unknown)
}

func TestAnalyze_MissingIndexMonthWarns(t *testing.T) {
	// No March index value: March energy drops to zero and the gap is
	// surfaced as a warning.
	indexes := map[string]map[time.Time]float64{
		"epex": {
			month(2024, time.January):  100,
			month(2024, time.February): 100,
		},
	}
	partial := refdata.NewStore(
		[]domain.CatalogEntry{{Supplier: "Acme", Product: "Flex", ProductID: "acme_flex"}},
		[]domain.TariffFormula{{ProductID: "acme_flex", Flow: domain.FlowOfftakePeak, IndexName: "epex", A: 50, B: 10}},
		indexes,
		map[string]string{"9000": "Fluvius Gent"},
		[]domain.GridLevyRate{{Operator: "Fluvius Gent", Year: 2024, CapacityPerKWDay: 0.1, DataTariffPerDay: 0.05, GridCostPerMWh: 30, LeviesCostPerMWh: 12}},
	)

	report, err := cost.NewAnalyzer(partial).Analyze(testContext(), strings.NewReader(threeMonthExport()), testRequest)
	require.NoError(t, err)
	require.Len(t, report.Monthly, 3)

	assert.InDelta(t, 200.4, report.Monthly[0].EnergyCost, 1e-9)
	assert.Equal(t, 0.0, report.Monthly[2].EnergyCost)
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0].Message, "epex")
}

func TestAnalyze_EmptyExportRejected(t *testing.T) {
	analyzer := cost.NewAnalyzer(analyzerStore())

	_, err := analyzer.Analyze(testContext(), strings.NewReader(exportHeader), testRequest)
	var corrupted *domain.CorruptedInputError
	require.ErrorAs(t, err, &corrupted)
}

func ExampleAnalyzer() {
	report, err := cost.NewAnalyzer(analyzerStore()).
		Analyze(testContext(), strings.NewReader(threeMonthExport()), testRequest)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d months, total %.2f EUR\n", len(report.Monthly), report.Breakdown.Total)
	// Output: 3 months, total 1033.28 EUR
}
