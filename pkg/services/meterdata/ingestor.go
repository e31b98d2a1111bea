package meterdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lvervaek/energy-app/pkg/models/domain"
)

// ExpectedColumns are the headers of a genuine Fluvius interval
// export, in export order.
var ExpectedColumns = []string{
	"Van (datum)", "Van (tijdstip)", "Tot (datum)", "Tot (tijdstip)",
	"EAN-code", "Meter", "Metertype", "Register", "Volume",
	"Eenheid", "Validatiestatus", "Omschrijving",
}

var requiredColumns = []string{
	"Van (datum)", "Van (tijdstip)", "Tot (datum)", "Tot (tijdstip)",
	"EAN-code", "Meter", "Register", "Volume", "Validatiestatus",
}

// registerFlows maps the export's register vocabulary (Dutch, plus the
// English variant some portals produce) to canonical flows.
var registerFlows = map[string]domain.Flow{
	"afname dag":        domain.FlowOfftakePeak,
	"afname nacht":      domain.FlowOfftakeOffpeak,
	"injectie dag":      domain.FlowInjectionPeak,
	"injectie nacht":    domain.FlowInjectionOffpeak,
	"day offtake":       domain.FlowOfftakePeak,
	"night offtake":     domain.FlowOfftakeOffpeak,
	"day injection":     domain.FlowInjectionPeak,
	"night injection":   domain.FlowInjectionOffpeak,
	"offtake_peak":      domain.FlowOfftakePeak,
	"offtake_offpeak":   domain.FlowOfftakeOffpeak,
	"injection_peak":    domain.FlowInjectionPeak,
	"injection_offpeak": domain.FlowInjectionOffpeak,
}

var integerVolume = regexp.MustCompile(`^\d+$`)

// dateLayouts covers the day-first date renderings seen in exports.
var dateLayouts = []string{"02/01/2006", "02-01-2006", "2/1/2006", "02.01.2006"}

var timeLayouts = []string{"15:04:05", "15:04"}

// Ingestor parses a raw interval export into normalized readings.
type Ingestor struct{}

func NewIngestor() *Ingestor {
	return &Ingestor{}
}

// Parse validates and normalizes one semicolon-delimited export. The
// corruption heuristics run on the raw records before any field is
// interpreted, so downstream stages can assume clean typed input.
func (in *Ingestor) Parse(r io.Reader) ([]domain.IntervalReading, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &domain.CorruptedInputError{Reason: fmt.Sprintf("unreadable file: %v", err)}
	}
	if len(records) == 0 {
		return nil, &domain.CorruptedInputError{Reason: "empty file"}
	}

	header := records[0]
	cols, err := checkColumns(header, records[1:])
	if err != nil {
		return nil, err
	}

	readings := make([]domain.IntervalReading, 0, len(records)-1)
	for i, row := range records[1:] {
		line := i + 2
		volumeRaw := field(row, cols["Volume"])
		if strings.TrimSpace(volumeRaw) == "" {
			continue
		}
		volume, err := strconv.ParseFloat(strings.ReplaceAll(volumeRaw, ",", "."), 64)
		if err != nil {
			return nil, &domain.NumericParseError{Field: "Volume", Value: volumeRaw, Line: line}
		}
		if volume < 0 || math.IsNaN(volume) || math.IsInf(volume, 0) {
			return nil, &domain.NumericParseError{Field: "Volume", Value: volumeRaw, Line: line}
		}

		start, err := parseTimestamp(field(row, cols["Van (datum)"]), field(row, cols["Van (tijdstip)"]), line)
		if err != nil {
			return nil, err
		}
		end, err := parseTimestamp(field(row, cols["Tot (datum)"]), field(row, cols["Tot (tijdstip)"]), line)
		if err != nil {
			return nil, err
		}

		register := strings.ToLower(strings.TrimSpace(field(row, cols["Register"])))
		flow, ok := registerFlows[register]
		if !ok {
			return nil, &domain.CorruptedInputError{
				Reason: fmt.Sprintf("unrecognized register %q on line %d", register, line),
			}
		}

		readings = append(readings, domain.IntervalReading{
			Start:            start,
			End:              end,
			Meter:            field(row, cols["Meter"]),
			EAN:              field(row, cols["EAN-code"]),
			Flow:             flow,
			VolumeKWh:        volume,
			ValidationStatus: field(row, cols["Validatiestatus"]),
			Month:            time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC),
		})
	}

	return readings, nil
}

// checkColumns runs the corruption heuristics and resolves the header
// positions of the required columns.
func checkColumns(header []string, rows [][]string) (map[string]int, error) {
	if len(header) > len(ExpectedColumns) {
		return nil, &domain.CorruptedInputError{
			Reason: fmt.Sprintf("%d columns where at most %d are expected", len(header), len(ExpectedColumns)),
		}
	}
	if strings.Count(header[0], ";") >= 5 {
		return nil, &domain.CorruptedInputError{Reason: "header collapsed into a single field, wrong delimiter"}
	}

	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	if idx, ok := cols["Volume"]; ok && allIntegerVolumes(rows, idx) {
		return nil, &domain.CorruptedInputError{Reason: "volume column lost its decimals, wrong export encoding"}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.MissingColumnsError{Columns: missing}
	}
	return cols, nil
}

// allIntegerVolumes reports whether every non-empty volume value looks
// like a plain integer, the symptom of decimal commas getting dropped
// by a spreadsheet round trip.
func allIntegerVolumes(rows [][]string, idx int) bool {
	seen := false
	for _, row := range rows {
		v := strings.TrimSpace(field(row, idx))
		if v == "" {
			continue
		}
		if !integerVolume.MatchString(v) {
			return false
		}
		seen = true
	}
	return seen
}

func parseTimestamp(date, clock string, line int) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	for _, dl := range dateLayouts {
		for _, tl := range timeLayouts {
			t, err := time.ParseInLocation(dl+" "+tl, date+" "+clock, time.UTC)
			if err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, &domain.NumericParseError{Field: "timestamp", Value: date + " " + clock, Line: line}
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
