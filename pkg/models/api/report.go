package api

// CostBreakdown carries the period totals, rounded to 2 decimals.
type CostBreakdown struct {
	Energy         float64 `json:"energy"`
	VariableGrid   float64 `json:"variableGrid"`
	CapacityTariff float64 `json:"capacityTariff"`
	FixedCosts     float64 `json:"fixedCosts"`
	Levies         float64 `json:"levies"`
	VAT            float64 `json:"vat"`
	Total          float64 `json:"total"`
}

// MonthlyCost is one month of the report, month as "Jan".."Dec".
type MonthlyCost struct {
	Month          string  `json:"month"`
	Energy         float64 `json:"energy"`
	VariableGrid   float64 `json:"variableGrid"`
	CapacityTariff float64 `json:"capacityTariff"`
	FixedCosts     float64 `json:"fixedCosts"`
	Levies         float64 `json:"levies"`
	VAT            float64 `json:"vat"`
}

// CostReport is the analyze response body.
type CostReport struct {
	CostBreakdown  CostBreakdown `json:"costBreakdown"`
	MonthlyData    []MonthlyCost `json:"monthlyData"`
	AnalysisPeriod string        `json:"analysisperiod"`
	Warnings       []string      `json:"warnings,omitempty"`
}

// CatalogEntry is one selectable supplier/product pair.
type CatalogEntry struct {
	Supplier string `json:"supplier"`
	Product  string `json:"product"`
}

// Error is the body of every non-200 response.
type Error struct {
	Error string `json:"error"`
}
