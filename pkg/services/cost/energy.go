package cost

import (
	"fmt"
	"sort"
	"time"

	"github.com/lvervaek/energy-app/pkg/models/domain"
)

// perMWhToPerKWh converts a EUR/MWh price to EUR/kWh.
const perMWhToPerKWh = 0.001

// MonthlyVolumes sums reading volumes per (month, flow).
func MonthlyVolumes(readings []domain.IntervalReading) map[domain.MonthFlow]float64 {
	out := make(map[domain.MonthFlow]float64)
	for _, r := range readings {
		out[domain.MonthFlow{Month: r.Month, Flow: r.Flow}] += r.VolumeKWh
	}
	return out
}

// EnergyCosts computes the signed monthly energy charge. Each monthly
// register volume is joined to its indexed tariff row; the unit price
// is a*index + b expressed per MWh. Injection flows are credited,
// offtake flows charged. A volume with no tariff row or no index value
// contributes zero and produces a warning.
func EnergyCosts(
	readings []domain.IntervalReading,
	indexed []domain.IndexedTariffRow,
) (map[time.Time]float64, []domain.Warning) {
	tariffs := make(map[domain.MonthFlow]domain.IndexedTariffRow, len(indexed))
	for _, row := range indexed {
		tariffs[domain.MonthFlow{Month: row.Month, Flow: row.Flow}] = row
	}

	volumes := MonthlyVolumes(readings)
	keys := make([]domain.MonthFlow, 0, len(volumes))
	for k := range volumes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].Month.Equal(keys[j].Month) {
			return keys[i].Month.Before(keys[j].Month)
		}
		return keys[i].Flow < keys[j].Flow
	})

	costs := make(map[time.Time]float64)
	var warnings []domain.Warning
	for _, key := range keys {
		if _, ok := costs[key.Month]; !ok {
			costs[key.Month] = 0
		}

		row, ok := tariffs[key]
		if !ok {
			warnings = append(warnings, domain.Warning{
				Component: "energy",
				Message:   fmt.Sprintf("no tariff row for flow %s in %s", key.Flow, key.Month.Format("Jan 2006")),
			})
			continue
		}
		if row.IndexValue == nil {
			warnings = append(warnings, domain.Warning{
				Component: "energy",
				Message:   fmt.Sprintf("no %s index value for %s", row.IndexName, key.Month.Format("Jan 2006")),
			})
			continue
		}

		unitPrice := (row.A*(*row.IndexValue) + row.B) * perMWhToPerKWh
		sign := 1.0
		if key.Flow.Injection() {
			sign = -1
		}
		costs[key.Month] += unitPrice * volumes[key] * sign
	}

	return costs, warnings
}
