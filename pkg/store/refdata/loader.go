package refdata

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lvervaek/energy-app/pkg/models/domain"
)

// Reference workbook file names, matching the original data set.
const (
	CatalogFile    = "supplier_product.xlsx"
	TariffsFile    = "supplier_product_tariffs.xlsx"
	IndexesFile    = "indexes.xlsx"
	PostalCodeFile = "dnb_postalcode.xlsx"
	LeviesFile     = "grid_and_levies.xlsx"
)

// indexMonthLayout matches the month column of indexes.xlsx, e.g. "Jan-25".
const indexMonthLayout = "Jan-06"

// Load reads the five reference workbooks from dir and builds the
// immutable store. It is called once at process start.
func Load(dir string) (*Store, error) {
	catalog, err := loadCatalog(filepath.Join(dir, CatalogFile))
	if err != nil {
		return nil, fmt.Errorf("loading supplier catalog: %w", err)
	}
	formulas, err := loadTariffs(filepath.Join(dir, TariffsFile))
	if err != nil {
		return nil, fmt.Errorf("loading tariff formulas: %w", err)
	}
	indexes, err := loadIndexes(filepath.Join(dir, IndexesFile))
	if err != nil {
		return nil, fmt.Errorf("loading market indexes: %w", err)
	}
	operators, err := loadPostalCodes(filepath.Join(dir, PostalCodeFile))
	if err != nil {
		return nil, fmt.Errorf("loading postal code map: %w", err)
	}
	levies, err := loadLevies(filepath.Join(dir, LeviesFile))
	if err != nil {
		return nil, fmt.Errorf("loading levy rates: %w", err)
	}
	return NewStore(catalog, formulas, indexes, operators, levies), nil
}

func loadCatalog(path string) ([]domain.CatalogEntry, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	var out []domain.CatalogEntry
	for i, row := range rows[1:] {
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: expected 3 columns, got %d", i+2, len(row))
		}
		out = append(out, domain.CatalogEntry{
			Supplier:  row[0],
			Product:   row[1],
			ProductID: row[2],
		})
	}
	return out, nil
}

func loadTariffs(path string) ([]domain.TariffFormula, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	var out []domain.TariffFormula
	for i, row := range rows[1:] {
		if len(row) < 5 {
			return nil, fmt.Errorf("row %d: expected 5 columns, got %d", i+2, len(row))
		}
		flow, ok := domain.ParseFlow(strings.TrimSpace(strings.ToLower(row[1])))
		if !ok {
			return nil, fmt.Errorf("row %d: unknown flow %q", i+2, row[1])
		}
		a, err := parseNumber(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: coefficient a: %w", i+2, err)
		}
		b, err := parseNumber(row[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: coefficient b: %w", i+2, err)
		}
		out = append(out, domain.TariffFormula{
			ProductID: row[0],
			Flow:      flow,
			IndexName: row[2],
			A:         a,
			B:         b,
		})
	}
	return out, nil
}

// loadIndexes reads the wide-format index table (one column per index
// name) into per-index month series.
func loadIndexes(path string) (map[string]map[time.Time]float64, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("index table needs a month column and at least one index column")
	}
	out := make(map[string]map[time.Time]float64)
	for _, name := range header[1:] {
		out[name] = make(map[time.Time]float64)
	}
	for i, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		month, err := time.Parse(indexMonthLayout, strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: month %q: %w", i+2, row[0], err)
		}
		for c, name := range header[1:] {
			if c+1 >= len(row) || strings.TrimSpace(row[c+1]) == "" {
				continue
			}
			v, err := parseNumber(row[c+1])
			if err != nil {
				return nil, fmt.Errorf("row %d: index %q: %w", i+2, name, err)
			}
			out[name][month] = v
		}
	}
	return out, nil
}

func loadPostalCodes(path string) (map[string]string, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: expected 2 columns, got %d", i+2, len(row))
		}
		out[strings.TrimSpace(row[0])] = row[1]
	}
	return out, nil
}

func loadLevies(path string) ([]domain.GridLevyRate, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	var out []domain.GridLevyRate
	for i, row := range rows[1:] {
		if len(row) < 6 {
			return nil, fmt.Errorf("row %d: expected 6 columns, got %d", i+2, len(row))
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: year %q: %w", i+2, row[1], err)
		}
		nums := make([]float64, 4)
		for c := 0; c < 4; c++ {
			nums[c], err = parseNumber(row[c+2])
			if err != nil {
				return nil, fmt.Errorf("row %d: column %d: %w", i+2, c+3, err)
			}
		}
		out = append(out, domain.GridLevyRate{
			Operator:         row[0],
			Year:             year,
			CapacityPerKWDay: nums[0],
			DataTariffPerDay: nums[1],
			GridCostPerMWh:   nums[2],
			LeviesCostPerMWh: nums[3],
		})
	}
	return out, nil
}

func sheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty sheet", filepath.Base(path))
	}
	return rows, nil
}

// parseNumber accepts both decimal point and decimal comma, since the
// source workbooks mix locales.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}
