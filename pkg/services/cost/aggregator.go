package cost

import (
	"math"
	"sort"
	"time"

	"github.com/lvervaek/energy-app/pkg/models/domain"
)

// vatRate is the flat residential VAT applied to the excl.-VAT total.
const vatRate = 0.06

// Aggregate outer-joins the three monthly series on month, derives VAT
// and totals per month, and builds the final report. A month present
// in any series appears in the result; fields it lacks stay zero.
func Aggregate(
	energy map[time.Time]float64,
	capacity map[time.Time]CapacityLine,
	grid map[time.Time]GridLine,
	warnings []domain.Warning,
) *domain.CostReport {
	monthSet := make(map[time.Time]bool)
	for m := range energy {
		monthSet[m] = true
	}
	for m := range capacity {
		monthSet[m] = true
	}
	for m := range grid {
		monthSet[m] = true
	}

	months := make([]time.Time, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	report := &domain.CostReport{Warnings: warnings}
	var breakdown domain.CostBreakdown
	for _, m := range months {
		capLine := capacity[m]
		gridLine := grid[m]

		line := domain.MonthlyCost{
			Month:        m,
			EnergyCost:   energy[m],
			GridCost:     gridLine.GridCost,
			LeviesCost:   gridLine.LeviesCost,
			CapacityCost: capLine.CapacityCost,
			DataCost:     capLine.DataCost,
			KWPeak:       capLine.KWPeak,
		}
		line.TotalExclVAT = line.CapacityCost + line.DataCost + line.EnergyCost + line.GridCost + line.LeviesCost
		line.VAT = line.TotalExclVAT * vatRate
		line.TotalInclVAT = line.TotalExclVAT + line.VAT

		breakdown.Energy += line.EnergyCost
		breakdown.VariableGrid += line.GridCost
		breakdown.Capacity += line.CapacityCost
		breakdown.Fixed += line.DataCost
		breakdown.Levies += line.LeviesCost
		breakdown.VAT += line.VAT
		breakdown.Total += line.TotalInclVAT

		report.Monthly = append(report.Monthly, line)
	}

	report.Breakdown = breakdown
	if len(months) > 0 {
		report.From = months[0]
		report.To = months[len(months)-1]
	}
	return report
}

// Round2 rounds to two decimals for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
