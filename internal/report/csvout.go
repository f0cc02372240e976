package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/hrpower/meetreport/internal/rankings"
	"github.com/hrpower/meetreport/internal/results"
)

// processedColumns is the layout of the processed interchange CSV, kept
// identical to what downstream spreadsheet tooling already expects.
var processedColumns = []string{
	"Place", "Name", "Club", "Sex", "BirthYear", "Division",
	"BodyweightKg", "WeightClassKg",
	"Squat1Kg", "Squat2Kg", "Squat3Kg", "Best3SquatKg",
	"Bench1Kg", "Bench2Kg", "Bench3Kg", "Best3BenchKg",
	"Deadlift1Kg", "Deadlift2Kg", "Deadlift3Kg", "Best3DeadliftKg",
	"TotalKg", "Points", "Event",
}

// WriteProcessed writes the full processed result set to path.
func WriteProcessed(path string, entries []*results.Entry) error {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, processedColumns)
	for _, e := range entries {
		rows = append(rows, []string{
			e.Place, e.Name, e.Club, string(e.Sex), intCell(e.BirthYear), e.Division,
			floatCell(e.BodyweightKg), e.WeightClass,
			optCell(e.Squat1), optCell(e.Squat2), optCell(e.Squat3), optCell(e.BestSquat),
			optCell(e.Bench1), optCell(e.Bench2), optCell(e.Bench3), optCell(e.BestBench),
			optCell(e.Deadlift1), optCell(e.Deadlift2), optCell(e.Deadlift3), optCell(e.BestDeadlift),
			floatCell(e.TotalKg), floatCell(e.Points), string(e.Event),
		})
	}
	return writeCSV(path, rows)
}

// WriteClubMembers writes the per-club counted lifters for one category.
func WriteClubMembers(path string, members []rankings.ClubMember) error {
	rows := [][]string{{"Club", "Rank", "Name", "Division", "BodyweightKg", "TotalKg", "Points"}}
	for _, m := range members {
		rows = append(rows, []string{
			m.Club, strconv.Itoa(m.Rank), m.Name, m.Division,
			floatCell(m.BodyweightKg), floatCell(m.TotalKg), floatCell(m.Points),
		})
	}
	return writeCSV(path, rows)
}

// WriteClubRanking writes one category's club standings.
func WriteClubRanking(path string, standings []rankings.ClubStanding) error {
	rows := [][]string{{"Place", "Club", "Points"}}
	for _, s := range standings {
		rows = append(rows, []string{strconv.Itoa(s.Place), s.Club, floatCell(s.Points)})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

func floatCell(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intCell(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
