package adapters

import (
	"fmt"

	"github.com/lvervaek/energy-app/pkg/models/api"
	"github.com/lvervaek/energy-app/pkg/models/domain"
	"github.com/lvervaek/energy-app/pkg/services/cost"
)

// MapDomainReportToAPI renders a cost report into the wire shape:
// months as 3-letter abbreviations, every amount rounded to 2
// decimals, analysis period as a human string.
func MapDomainReportToAPI(report *domain.CostReport) api.CostReport {
	out := api.CostReport{
		CostBreakdown: api.CostBreakdown{
			Energy:         cost.Round2(report.Breakdown.Energy),
			VariableGrid:   cost.Round2(report.Breakdown.VariableGrid),
			CapacityTariff: cost.Round2(report.Breakdown.Capacity),
			FixedCosts:     cost.Round2(report.Breakdown.Fixed),
			Levies:         cost.Round2(report.Breakdown.Levies),
			VAT:            cost.Round2(report.Breakdown.VAT),
			Total:          cost.Round2(report.Breakdown.Total),
		},
		MonthlyData: make([]api.MonthlyCost, 0, len(report.Monthly)),
		AnalysisPeriod: fmt.Sprintf("Data analyzed for %s to %s",
			report.From.Format("Jan 2006"), report.To.Format("Jan 2006")),
	}

	for _, m := range report.Monthly {
		out.MonthlyData = append(out.MonthlyData, api.MonthlyCost{
			Month:          m.Month.Format("Jan"),
			Energy:         cost.Round2(m.EnergyCost),
			VariableGrid:   cost.Round2(m.GridCost),
			CapacityTariff: cost.Round2(m.CapacityCost),
			FixedCosts:     cost.Round2(m.DataCost),
			Levies:         cost.Round2(m.LeviesCost),
			VAT:            cost.Round2(m.VAT),
		})
	}

	for _, w := range report.Warnings {
		out.Warnings = append(out.Warnings, fmt.Sprintf("%s: %s", w.Component, w.Message))
	}

	return out
}

// MapCatalogToAPI lists the selectable supplier/product pairs.
func MapCatalogToAPI(entries []domain.CatalogEntry) []api.CatalogEntry {
	out := make([]api.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.CatalogEntry{Supplier: e.Supplier, Product: e.Product})
	}
	return out
}
