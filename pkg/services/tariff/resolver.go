package tariff

import (
	"time"

	"github.com/lvervaek/energy-app/pkg/models/domain"
	"github.com/lvervaek/energy-app/pkg/store/refdata"
)

// Resolver maps user-facing supplier/product names to tariff formulas
// and attaches market index values per month.
type Resolver struct {
	store *refdata.Store
}

func NewResolver(store *refdata.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve finds the backend product id for a supplier/product pair,
// matching case-insensitively on both names.
func (r *Resolver) Resolve(supplier, product string) (string, error) {
	id, ok := r.store.ResolveProduct(supplier, product)
	if !ok {
		return "", &domain.UnknownProductError{Supplier: supplier, Product: product}
	}
	return id, nil
}

// IndexedRows builds the cross product of the product's formula rows
// and the given months, left-joined to the market index table. Rows
// without a published index value keep a nil IndexValue; the cost
// stage turns those into warnings.
func (r *Resolver) IndexedRows(productID string, months []time.Time) []domain.IndexedTariffRow {
	formulas := r.store.FormulasFor(productID)
	rows := make([]domain.IndexedTariffRow, 0, len(formulas)*len(months))
	for _, f := range formulas {
		for _, m := range months {
			row := domain.IndexedTariffRow{TariffFormula: f, Month: m}
			if v, ok := r.store.IndexValue(f.IndexName, m); ok {
				value := v
				row.IndexValue = &value
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// MonthsBetween returns the inclusive monthly sequence from the floor
// of first to the floor of last.
func MonthsBetween(first, last time.Time) []time.Time {
	start := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)

	var months []time.Time
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}
