package cost

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/lvervaek/energy-app/pkg/models/domain"
	"github.com/lvervaek/energy-app/pkg/services/grid"
	"github.com/lvervaek/energy-app/pkg/services/meterdata"
	"github.com/lvervaek/energy-app/pkg/services/tariff"
	"github.com/lvervaek/energy-app/pkg/store/refdata"
)

// AnalyzeRequest carries the user parameters of one analysis run.
type AnalyzeRequest struct {
	Supplier   string
	Product    string
	PostalCode string
}

// Analyzer runs the full cost pipeline for one meter export.
type Analyzer interface {
	Analyze(ctx context.Context, file io.Reader, req AnalyzeRequest) (*domain.CostReport, error)
}

type analyzer struct {
	ingestor *meterdata.Ingestor
	tariffs  *tariff.Resolver
	grid     *grid.Resolver
}

// NewAnalyzer wires the pipeline stages around the shared reference
// data store.
func NewAnalyzer(store *refdata.Store) Analyzer {
	return &analyzer{
		ingestor: meterdata.NewIngestor(),
		tariffs:  tariff.NewResolver(store),
		grid:     grid.NewResolver(store),
	}
}

func (a *analyzer) Analyze(ctx context.Context, file io.Reader, req AnalyzeRequest) (*domain.CostReport, error) {
	logger := zerolog.Ctx(ctx)

	readings, err := a.ingestor.Parse(file)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, &domain.CorruptedInputError{Reason: "no readings in file"}
	}

	productID, err := a.tariffs.Resolve(req.Supplier, req.Product)
	if err != nil {
		return nil, err
	}

	_, levyRates, err := a.grid.Resolve(req.PostalCode)
	if err != nil {
		return nil, err
	}
	ratesByYear := make(map[int]domain.GridLevyRate, len(levyRates))
	for _, r := range levyRates {
		ratesByYear[r.Year] = r
	}

	first, last := readings[0].Start, readings[0].Start
	for _, r := range readings[1:] {
		if r.Start.Before(first) {
			first = r.Start
		}
		if r.Start.After(last) {
			last = r.Start
		}
	}
	months := tariff.MonthsBetween(first, last)
	indexed := a.tariffs.IndexedRows(productID, months)

	energy, energyWarnings := EnergyCosts(readings, indexed)
	capacity, capacityWarnings := CapacityCosts(readings, ratesByYear)
	gridCosts, gridWarnings := GridCosts(readings, ratesByYear)

	var warnings []domain.Warning
	warnings = append(warnings, energyWarnings...)
	warnings = append(warnings, capacityWarnings...)
	warnings = append(warnings, gridWarnings...)
	for _, w := range warnings {
		logger.Warn().Str("component", w.Component).Msg(w.Message)
	}

	report := Aggregate(energy, capacity, gridCosts, warnings)
	logger.Info().
		Int("readings", len(readings)).
		Int("months", len(report.Monthly)).
		Str("product", productID).
		Msg("analysis complete")

	return report, nil
}
