package refdata

import (
	"strings"
	"time"

	"github.com/lvervaek/energy-app/pkg/models/domain"
)

type indexKey struct {
	name  string
	month time.Time
}

type levyKey struct {
	operator string
	year     int
}

// Store holds the five reference tables, fully normalized at load
// time. It is immutable after construction and safe for concurrent
// reads without synchronization.
type Store struct {
	catalog   []domain.CatalogEntry
	formulas  map[string][]domain.TariffFormula
	indexes   map[indexKey]float64
	operators map[string]string
	levies    map[levyKey]domain.GridLevyRate
}

// NewStore builds a store from already-parsed tables. Lookup keys are
// case-folded here so per-request code never has to touch the shared
// data. Duplicate catalog pairs keep the first row.
func NewStore(
	catalog []domain.CatalogEntry,
	formulas []domain.TariffFormula,
	indexes map[string]map[time.Time]float64,
	operators map[string]string,
	levies []domain.GridLevyRate,
) *Store {
	s := &Store{
		formulas:  make(map[string][]domain.TariffFormula),
		indexes:   make(map[indexKey]float64),
		operators: make(map[string]string),
		levies:    make(map[levyKey]domain.GridLevyRate),
	}

	seen := make(map[[2]string]bool)
	for _, e := range catalog {
		key := [2]string{fold(e.Supplier), fold(e.Product)}
		if seen[key] {
			continue
		}
		seen[key] = true
		s.catalog = append(s.catalog, domain.CatalogEntry{
			Supplier:  key[0],
			Product:   key[1],
			ProductID: e.ProductID,
		})
	}

	for _, f := range formulas {
		f.IndexName = fold(f.IndexName)
		pid := fold(f.ProductID)
		s.formulas[pid] = append(s.formulas[pid], f)
	}

	for name, byMonth := range indexes {
		for month, value := range byMonth {
			s.indexes[indexKey{fold(name), monthFloor(month)}] = value
		}
	}

	for code, operator := range operators {
		s.operators[strings.TrimSpace(code)] = operator
	}

	for _, r := range levies {
		s.levies[levyKey{fold(r.Operator), r.Year}] = r
	}

	return s
}

// Catalog returns every supplier/product pair, names case-folded.
func (s *Store) Catalog() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// ResolveProduct finds the backend product id for a supplier/product
// pair, case-insensitively. The first catalog row wins on duplicates.
func (s *Store) ResolveProduct(supplier, product string) (string, bool) {
	sf, pf := fold(supplier), fold(product)
	for _, e := range s.catalog {
		if e.Supplier == sf && e.Product == pf {
			return e.ProductID, true
		}
	}
	return "", false
}

// FormulasFor returns the tariff formula rows of a product.
func (s *Store) FormulasFor(productID string) []domain.TariffFormula {
	rows := s.formulas[fold(productID)]
	out := make([]domain.TariffFormula, len(rows))
	copy(out, rows)
	return out
}

// IndexValue looks up a market index value by name and month.
func (s *Store) IndexValue(name string, month time.Time) (float64, bool) {
	v, ok := s.indexes[indexKey{fold(name), monthFloor(month)}]
	return v, ok
}

// OperatorFor maps a postal code to its grid operator.
func (s *Store) OperatorFor(postalCode string) (string, bool) {
	op, ok := s.operators[strings.TrimSpace(postalCode)]
	return op, ok
}

// LevyRates returns every levy rate year known for an operator.
func (s *Store) LevyRates(operator string) []domain.GridLevyRate {
	var out []domain.GridLevyRate
	of := fold(operator)
	for key, rate := range s.levies {
		if key.operator == of {
			out = append(out, rate)
		}
	}
	return out
}

// LevyRate returns the rate row for an operator and year.
func (s *Store) LevyRate(operator string, year int) (domain.GridLevyRate, bool) {
	r, ok := s.levies[levyKey{fold(operator), year}]
	return r, ok
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func monthFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
