package domain

import "time"

// MonthlyCost is the merged cost line for one calendar month. A field
// is zero when the month had no contribution from that series.
type MonthlyCost struct {
	Month        time.Time
	EnergyCost   float64
	GridCost     float64
	LeviesCost   float64
	CapacityCost float64
	DataCost     float64
	KWPeak       float64
	TotalExclVAT float64
	VAT          float64
	TotalInclVAT float64
}

// CostBreakdown sums each cost field across the analyzed period.
type CostBreakdown struct {
	Energy       float64
	VariableGrid float64
	Capacity     float64
	Fixed        float64
	Levies       float64
	VAT          float64
	Total        float64
}

// Warning records a reference-data gap encountered during analysis,
// such as a month with no published index value. The affected cost
// contributes zero instead of failing the request.
type Warning struct {
	Component string
	Message   string
}

// CostReport is the final output of one analysis run.
type CostReport struct {
	Breakdown CostBreakdown
	Monthly   []MonthlyCost
	From      time.Time
	To        time.Time
	Warnings  []Warning
}
