package domain

import "time"

// Flow is the canonical register direction of an interval reading.
type Flow string

const (
	FlowOfftakePeak      Flow = "offtake_peak"
	FlowOfftakeOffpeak   Flow = "offtake_offpeak"
	FlowInjectionPeak    Flow = "injection_peak"
	FlowInjectionOffpeak Flow = "injection_offpeak"
)

// ParseFlow maps a canonical flow name to its Flow value.
func ParseFlow(s string) (Flow, bool) {
	switch Flow(s) {
	case FlowOfftakePeak, FlowOfftakeOffpeak, FlowInjectionPeak, FlowInjectionOffpeak:
		return Flow(s), true
	}
	return "", false
}

// Offtake reports whether the flow draws energy from the grid.
func (f Flow) Offtake() bool {
	return f == FlowOfftakePeak || f == FlowOfftakeOffpeak
}

// Injection reports whether the flow feeds energy into the grid.
func (f Flow) Injection() bool {
	return f == FlowInjectionPeak || f == FlowInjectionOffpeak
}

// IntervalReading is one quarter-hour meter record after ingestion.
// Month is the reading's start time truncated to the first day of its
// month in UTC, precomputed because every downstream join keys on it.
type IntervalReading struct {
	Start            time.Time
	End              time.Time
	Meter            string
	EAN              string
	Flow             Flow
	VolumeKWh        float64
	ValidationStatus string
	Month            time.Time
}

// MonthFlow keys the monthly register volume aggregation.
type MonthFlow struct {
	Month time.Time
	Flow  Flow
}
