package grid

import (
	"sort"

	"github.com/lvervaek/energy-app/pkg/models/domain"
	"github.com/lvervaek/energy-app/pkg/store/refdata"
)

// Resolver maps a postal code to its grid operator and that operator's
// levy rate table.
type Resolver struct {
	store *refdata.Store
}

func NewResolver(store *refdata.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the operator for a postal code together with every
// levy rate year known for it, sorted by year.
func (r *Resolver) Resolve(postalCode string) (string, []domain.GridLevyRate, error) {
	operator, ok := r.store.OperatorFor(postalCode)
	if !ok {
		return "", nil, &domain.UnknownPostalCodeError{PostalCode: postalCode}
	}

	rates := r.store.LevyRates(operator)
	if len(rates) == 0 {
		return "", nil, &domain.UnknownOperatorError{Operator: operator}
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Year < rates[j].Year })

	return operator, rates, nil
}
