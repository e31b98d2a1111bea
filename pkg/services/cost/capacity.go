package cost

import (
	"fmt"
	"sort"
	"time"

	"github.com/lvervaek/energy-app/pkg/models/domain"
)

const (
	// quartersPerHour scales a quarter-hour kWh volume to kW demand.
	quartersPerHour = 4
	// minContractedKW is the regulated floor on the billed peak.
	minContractedKW = 2.5
)

// CapacityLine is one month of capacity and fixed charges.
type CapacityLine struct {
	KWPeak       float64
	CapacityCost float64
	DataCost     float64
}

// CapacityCosts derives per-month capacity and data charges from the
// worst quarter-hour offtake demand. The billed peak is never below
// the contractual minimum. Months without a levy rate row for their
// year keep the peak but charge zero, with a warning.
func CapacityCosts(
	readings []domain.IntervalReading,
	rates map[int]domain.GridLevyRate,
) (map[time.Time]CapacityLine, []domain.Warning) {
	peaks := make(map[time.Time]float64)
	for _, r := range readings {
		if !r.Flow.Offtake() {
			continue
		}
		if v, ok := peaks[r.Month]; !ok || r.VolumeKWh > v {
			peaks[r.Month] = r.VolumeKWh
		}
	}

	months := make([]time.Time, 0, len(peaks))
	for m := range peaks {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make(map[time.Time]CapacityLine, len(peaks))
	var warnings []domain.Warning
	for _, month := range months {
		kw := peaks[month] * quartersPerHour
		if kw < minContractedKW {
			kw = minContractedKW
		}

		line := CapacityLine{KWPeak: kw}
		rate, ok := rates[month.Year()]
		if ok {
			days := float64(daysInMonth(month))
			line.CapacityCost = kw * rate.CapacityPerKWDay * days
			line.DataCost = rate.DataTariffPerDay * days
		} else {
			warnings = append(warnings, domain.Warning{
				Component: "capacity",
				Message:   fmt.Sprintf("no levy rates for year %d", month.Year()),
			})
		}
		out[month] = line
	}

	return out, warnings
}

func daysInMonth(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
