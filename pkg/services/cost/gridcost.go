package cost

import (
	"fmt"
	"sort"
	"time"

	"github.com/lvervaek/energy-app/pkg/models/domain"
)

// GridLine is one month of variable network and levy charges.
type GridLine struct {
	GridCost   float64
	LeviesCost float64
}

// GridCosts charges the summed monthly offtake volume at the
// operator's per-MWh network and levy rates. A month whose year has no
// rate row charges zero and produces a warning.
func GridCosts(
	readings []domain.IntervalReading,
	rates map[int]domain.GridLevyRate,
) (map[time.Time]GridLine, []domain.Warning) {
	offtake := make(map[time.Time]float64)
	for key, volume := range MonthlyVolumes(readings) {
		if key.Flow.Offtake() {
			offtake[key.Month] += volume
		}
	}

	months := make([]time.Time, 0, len(offtake))
	for m := range offtake {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make(map[time.Time]GridLine, len(offtake))
	var warnings []domain.Warning
	for _, month := range months {
		volume := offtake[month]
		var line GridLine
		if rate, ok := rates[month.Year()]; ok {
			line.GridCost = volume * rate.GridCostPerMWh * perMWhToPerKWh
			line.LeviesCost = volume * rate.LeviesCostPerMWh * perMWhToPerKWh
		} else {
			warnings = append(warnings, domain.Warning{
				Component: "grid",
				Message:   fmt.Sprintf("no levy rates for year %d", month.Year()),
			})
		}
		out[month] = line
	}

	return out, warnings
}
