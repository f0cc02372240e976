package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hrpower/meetreport/internal/division"
	"github.com/hrpower/meetreport/internal/results"
	"github.com/hrpower/meetreport/internal/scoring"
)

// oplHeaderOffsets are the preamble lengths tried, in order, when locating
// the header row of an OPL export. Matches what the exports actually ship.
var oplHeaderOffsets = []int{5, 4, 6, 0}

// requiredColumns must be present in any results header.
var requiredColumns = []string{"Name", "Sex", "Event"}

// Loader reads result exports into entries.
type Loader struct {
	classifier *division.Classifier
}

// NewLoader creates a Loader using the given classifier to tag equipped
// divisions at the ingestion boundary.
func NewLoader(c *division.Classifier) *Loader {
	return &Loader{classifier: c}
}

// LoadFile reads a results file in the given format.
func (l *Loader) LoadFile(path string, format Format) ([]*results.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	offsets := []int{0}
	if format == FormatOPL {
		offsets = oplHeaderOffsets
	}

	for _, skip := range offsets {
		if skip >= len(records) {
			continue
		}
		header := records[skip]
		if !hasRequiredColumns(header) {
			continue
		}
		return l.mapRows(header, records[skip+1:])
	}

	return nil, fmt.Errorf("datoteka %s ne sadrži potrebne kolone %v", path, requiredColumns)
}

func hasRequiredColumns(header []string) bool {
	cols := make(map[string]bool, len(header))
	for _, h := range header {
		cols[strings.TrimSpace(h)] = true
	}
	for _, want := range requiredColumns {
		if !cols[want] {
			return false
		}
	}
	return true
}

// mapRows converts raw records under a named header into entries. Rows
// without a placement and "Best ..." award pseudo-divisions are dropped, as
// in the source exports.
func (l *Loader) mapRows(header []string, rows [][]string) ([]*results.Entry, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var entries []*results.Entry
	for _, row := range rows {
		place := field(row, "Place")
		divisionLabel := field(row, "Division")
		if place == "" || strings.HasPrefix(divisionLabel, "Best") {
			continue
		}

		event := scoring.Event(field(row, "Event"))
		total := parseFloat(field(row, "TotalKg"))
		bestBench := parseFloatPtr(field(row, "Best3BenchKg"))
		if event == scoring.EventBench && total == 0 && bestBench != nil {
			// Bench-only exports often leave TotalKg blank; the scored
			// total is the best bench.
			total = *bestBench
		}

		e := &results.Entry{
			Place:        place,
			Name:         field(row, "Name"),
			Club:         field(row, "Team"),
			Sex:          scoring.Sex(field(row, "Sex")),
			BirthYear:    parseInt(field(row, "BirthYear")),
			Division:     divisionLabel,
			Equipped:     l.classifier.IsEquipped(divisionLabel),
			BodyweightKg: parseFloat(field(row, "BodyweightKg")),
			WeightClass:  field(row, "WeightClassKg"),
			Squat1:       parseFloatPtr(field(row, "Squat1Kg")),
			Squat2:       parseFloatPtr(field(row, "Squat2Kg")),
			Squat3:       parseFloatPtr(field(row, "Squat3Kg")),
			BestSquat:    parseFloatPtr(field(row, "Best3SquatKg")),
			Bench1:       parseFloatPtr(field(row, "Bench1Kg")),
			Bench2:       parseFloatPtr(field(row, "Bench2Kg")),
			Bench3:       parseFloatPtr(field(row, "Bench3Kg")),
			BestBench:    bestBench,
			Deadlift1:    parseFloatPtr(field(row, "Deadlift1Kg")),
			Deadlift2:    parseFloatPtr(field(row, "Deadlift2Kg")),
			Deadlift3:    parseFloatPtr(field(row, "Deadlift3Kg")),
			BestDeadlift: parseFloatPtr(field(row, "Best3DeadliftKg")),
			TotalKg:      total,
			Points:       parseFloat(field(row, "Points")),
			Event:        event,
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// parseFloat returns 0 for anything that is not a number, the way the
// exports treat blank numeric cells.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseFloatPtr(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(v)
}
