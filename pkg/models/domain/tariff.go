package domain

import "time"

// TariffFormula is one row of the product tariff table: the linear
// price formula `a*index + b` (EUR/MWh) for a single flow.
type TariffFormula struct {
	ProductID string
	Flow      Flow
	IndexName string
	A         float64
	B         float64
}

// IndexedTariffRow is a tariff formula joined to a user month and, when
// the market index table has a matching value, to that value.
// IndexValue is nil when no (index, month) match exists.
type IndexedTariffRow struct {
	TariffFormula
	Month      time.Time
	IndexValue *float64
}

// CatalogEntry maps the user-facing supplier and product names to the
// backend product identifier used by the tariff table.
type CatalogEntry struct {
	Supplier  string
	Product   string
	ProductID string
}

// GridLevyRate holds one grid operator's rates for one calendar year.
type GridLevyRate struct {
	Operator         string
	Year             int
	CapacityPerKWDay float64 // EUR/kW.day
	DataTariffPerDay float64 // EUR/day
	GridCostPerMWh   float64 // EUR/MWh
	LeviesCostPerMWh float64 // EUR/MWh
}
