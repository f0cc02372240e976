package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hrpower/meetreport/internal/rankings"
	"github.com/hrpower/meetreport/internal/results"
	"github.com/hrpower/meetreport/internal/scoring"
)

// Workbook colors, carried over from the published report template.
const (
	bannerColor = "0F2B47"
	headerColor = "2F5597"
	borderColor = "D9D9D9"
	goldColor   = "FFD700"
	silverColor = "C0C0C0"
	bronzeColor = "CD7F32"
)

var sbdColumns = []string{
	"Place", "Name", "Club", "BirthYear", "BodyweightKg",
	"Squat1Kg", "Squat2Kg", "Squat3Kg", "Best3SquatKg",
	"Bench1Kg", "Bench2Kg", "Bench3Kg", "Best3BenchKg",
	"Deadlift1Kg", "Deadlift2Kg", "Deadlift3Kg", "Best3DeadliftKg",
	"TotalKg", "Points",
}

var benchColumns = []string{
	"Place", "Name", "Club", "BirthYear", "BodyweightKg",
	"Bench1Kg", "Bench2Kg", "Bench3Kg", "Best3BenchKg",
	"TotalKg", "Points",
}

type workbookStyles struct {
	banner  int
	title   int
	heading int
	header  int
	data    int
	gold    int
	silver  int
	bronze  int
}

type workbook struct {
	f      *excelize.File
	styles workbookStyles
	topN   int
}

// BuildWorkbook renders the full Excel report: one sheet per sex and
// discipline, the club rankings sheet and the statistics sheet.
func BuildWorkbook(table *results.Table, meetName string, topPerClub int) (*excelize.File, error) {
	f := excelize.NewFile()

	wb := &workbook{f: f, topN: topPerClub}
	if err := wb.makeStyles(); err != nil {
		return nil, err
	}

	sheets := []struct {
		sex   scoring.Sex
		event scoring.Event
	}{
		{scoring.SexMale, scoring.EventSBD},
		{scoring.SexFemale, scoring.EventSBD},
		{scoring.SexMale, scoring.EventBench},
		{scoring.SexFemale, scoring.EventBench},
	}

	for _, s := range sheets {
		name := EventTitle(s.sex, s.event)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		if err := wb.writeResultSheet(name, table, s.sex, s.event); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet("Rang Klubova"); err != nil {
		return nil, err
	}
	if err := wb.writeClubSheet("Rang Klubova", table, sheetsOrder()); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Statistika"); err != nil {
		return nil, err
	}
	if err := wb.writeStatsSheet("Statistika", table, meetName); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

func sheetsOrder() []struct {
	Sex   scoring.Sex
	Event scoring.Event
} {
	return []struct {
		Sex   scoring.Sex
		Event scoring.Event
	}{
		{scoring.SexMale, scoring.EventSBD},
		{scoring.SexFemale, scoring.EventSBD},
		{scoring.SexMale, scoring.EventBench},
		{scoring.SexFemale, scoring.EventBench},
	}
}

func (w *workbook) makeStyles() error {
	var err error

	thin := []excelize.Border{
		{Type: "left", Color: borderColor, Style: 1},
		{Type: "right", Color: borderColor, Style: 1},
		{Type: "top", Color: borderColor, Style: 1},
		{Type: "bottom", Color: borderColor, Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	if w.styles.banner, err = w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 14, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{bannerColor}, Pattern: 1},
		Alignment: center,
	}); err != nil {
		return err
	}
	if w.styles.title, err = w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 16, Bold: true},
	}); err != nil {
		return err
	}
	if w.styles.heading, err = w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 12, Bold: true},
	}); err != nil {
		return err
	}
	if w.styles.header, err = w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: center,
		Border:    thin,
	}); err != nil {
		return err
	}
	if w.styles.data, err = w.f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    thin,
	}); err != nil {
		return err
	}

	medal := func(color string) (int, error) {
		return w.f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: center,
			Border:    thin,
		})
	}
	if w.styles.gold, err = medal(goldColor); err != nil {
		return err
	}
	if w.styles.silver, err = medal(silverColor); err != nil {
		return err
	}
	if w.styles.bronze, err = medal(bronzeColor); err != nil {
		return err
	}

	return nil
}

// writeResultSheet lays out one discipline sheet: a banner per division,
// one table per weight class, medal fills for places 1-3. Raw and equipped
// lifters rank in separate pools, so the raw tables come first and the EQ
// tables follow under their own banners.
func (w *workbook) writeResultSheet(sheet string, table *results.Table, sex scoring.Sex, event scoring.Event) error {
	columns := sbdColumns
	if event == scoring.EventBench {
		columns = benchColumns
	}
	headers := TranslateColumns(columns)

	row := 1
	var currentDivision string

	for _, equipment := range []results.Equipment{results.EquipmentRaw, results.EquipmentEquipped} {
		entries := table.Filter(results.Filter{Sex: sex, Event: event, Equipment: equipment})
		equipped := equipment == results.EquipmentEquipped

		for _, cat := range table.GroupByCategory(entries) {
			banner := DivisionBanner(cat.Division, equipped)
			if banner != currentDivision {
				if currentDivision != "" {
					row += 2
				}
				cell, _ := excelize.CoordinatesToCellName(1, row)
				end, _ := excelize.CoordinatesToCellName(len(columns), row)
				w.f.SetCellValue(sheet, cell, "═══ "+banner+" KATEGORIJA ═══")
				w.f.SetCellStyle(sheet, cell, end, w.styles.banner)
				w.f.MergeCell(sheet, cell, end)
				currentDivision = banner
				row += 3
			}

			first := cat.Entries[0]
			title := fmt.Sprintf("%s - %skg",
				TranslateDivision(cat.Division, first.Sex, equipped), cat.WeightClass)
			cell, _ := excelize.CoordinatesToCellName(1, row)
			w.f.SetCellValue(sheet, cell, title)
			w.f.SetCellStyle(sheet, cell, cell, w.styles.heading)
			row += 2

			w.writeRow(sheet, row, toCells(headers), w.styles.header)
			row++

			for _, e := range cat.Entries {
				style := w.styles.data
				switch e.Place {
				case "1":
					style = w.styles.gold
				case "2":
					style = w.styles.silver
				case "3":
					style = w.styles.bronze
				}
				w.writeRow(sheet, row, entryCells(e, columns), style)
				row++
			}
			row += 2
		}
	}

	return w.autoWidth(sheet, len(columns))
}

// writeClubSheet lays out the club rankings: a RAW block and, when any
// equipped lifters competed, an EQ block below it.
func (w *workbook) writeClubSheet(sheet string, table *results.Table, categories []struct {
	Sex   scoring.Sex
	Event scoring.Event
}) error {
	row := 1

	blocks := []struct {
		label     string
		equipment results.Equipment
	}{
		{"RAW POREDAK KLUBOVA", results.EquipmentRaw},
		{"EQ POREDAK KLUBOVA", results.EquipmentEquipped},
	}

	for _, block := range blocks {
		any := false
		for _, cat := range categories {
			entries := table.Competitive(results.Filter{
				Sex: cat.Sex, Event: cat.Event, Equipment: block.equipment,
			})
			if len(entries) > 0 {
				any = true
			}
		}
		if !any {
			continue
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		w.f.SetCellValue(sheet, cell, "═══ "+block.label+" ═══")
		w.f.SetCellStyle(sheet, cell, cell, w.styles.title)
		row += 2

		for _, cat := range categories {
			entries := table.Competitive(results.Filter{
				Sex: cat.Sex, Event: cat.Event, Equipment: block.equipment,
			})
			standings := rankings.Clubs(entries, w.topN)
			if len(standings) == 0 {
				continue
			}

			cell, _ = excelize.CoordinatesToCellName(1, row)
			w.f.SetCellValue(sheet, cell, EventTitle(cat.Sex, cat.Event))
			w.f.SetCellStyle(sheet, cell, cell, w.styles.heading)
			row += 2

			w.writeRow(sheet, row, toCells([]string{"Plasman", "Klub", "GL Bodovi"}), w.styles.header)
			row++
			for _, s := range standings {
				style := w.styles.data
				switch s.Place {
				case 1:
					style = w.styles.gold
				case 2:
					style = w.styles.silver
				case 3:
					style = w.styles.bronze
				}
				w.writeRow(sheet, row, []interface{}{s.Place, s.Club, s.Points}, style)
				row++
			}
			row += 2
		}
	}

	return w.autoWidth(sheet, 3)
}

// writeStatsSheet lays out general statistics, then top-5 sections per
// discipline: overall first, then one per division present in the data.
func (w *workbook) writeStatsSheet(sheet string, table *results.Table, meetName string) error {
	stats := ComputeStats(table)

	row := 1
	cell, _ := excelize.CoordinatesToCellName(1, row)
	title := "Statistika Natjecanja"
	if meetName != "" {
		title = meetName + " - Statistika"
	}
	w.f.SetCellValue(sheet, cell, title)
	w.f.SetCellStyle(sheet, cell, cell, w.styles.title)
	row += 2

	general := [][]interface{}{
		{"Broj natjecatelja", stats.Records},
		{"Broj klubova", stats.Clubs},
		{"Prosječni GL bodovi", stats.Overall.Average},
		{"Najviši GL bodovi", stats.Overall.Max},
		{"Izračunati bodovi (formula)", stats.Repaired},
		{"Rezultati bez bodova", stats.ZeroPoints},
	}
	for _, kv := range general {
		w.writeRow(sheet, row, kv, w.styles.data)
		row++
	}
	row += 2

	for _, cat := range sheetsOrder() {
		entries := table.Competitive(results.Filter{Sex: cat.Sex, Event: cat.Event})
		if len(entries) == 0 {
			continue
		}

		row = w.writeTopSection(sheet, row, "Top 5 "+EventTitle(cat.Sex, cat.Event), entries)

		for _, cat2 := range table.GroupByDivision(entries) {
			heading := fmt.Sprintf("Top 5 %s", TranslateDivision(cat2.Division, cat.Sex, false))
			if cat.Event == scoring.EventBench {
				heading += " Potisak s klupe"
			} else {
				heading += " Powerlifting"
			}
			row = w.writeTopSection(sheet, row, heading, cat2.Entries)
		}
	}

	return w.autoWidth(sheet, 6)
}

func (w *workbook) writeTopSection(sheet string, row int, heading string, entries []*results.Entry) int {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	w.f.SetCellValue(sheet, cell, heading)
	w.f.SetCellStyle(sheet, cell, cell, w.styles.heading)
	row++

	w.writeRow(sheet, row, toCells([]string{"#", "Ime i prezime", "Klub", "Kategorija", "Ukupno (kg)", "GL Bodovi"}), w.styles.header)
	row++

	for i, e := range rankings.Top(entries, rankings.DefaultTopPerformers) {
		w.writeRow(sheet, row, []interface{}{i + 1, e.Name, e.Club, e.Division, e.TotalKg, e.Points}, w.styles.data)
		row++
	}
	return row + 2
}

func (w *workbook) writeRow(sheet string, row int, values []interface{}, style int) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		w.f.SetCellValue(sheet, cell, v)
		w.f.SetCellStyle(sheet, cell, cell, style)
	}
}

// autoWidth applies sensible fixed widths; excelize has no measuring
// auto-fit, so names and clubs get wide columns and the rest a default.
func (w *workbook) autoWidth(sheet string, columns int) error {
	if err := w.f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	if err := w.f.SetColWidth(sheet, "B", "C", 26); err != nil {
		return err
	}
	if columns < 4 {
		return nil
	}
	last, _ := excelize.ColumnNumberToName(columns)
	return w.f.SetColWidth(sheet, "D", last, 13)
}

func toCells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func entryCells(e *results.Entry, columns []string) []interface{} {
	out := make([]interface{}, 0, len(columns))
	for _, c := range columns {
		switch c {
		case "Place":
			out = append(out, e.Place)
		case "Name":
			out = append(out, e.Name)
		case "Club":
			out = append(out, e.Club)
		case "BirthYear":
			out = append(out, blankZero(e.BirthYear))
		case "BodyweightKg":
			out = append(out, e.BodyweightKg)
		case "Squat1Kg":
			out = append(out, optVal(e.Squat1))
		case "Squat2Kg":
			out = append(out, optVal(e.Squat2))
		case "Squat3Kg":
			out = append(out, optVal(e.Squat3))
		case "Best3SquatKg":
			out = append(out, optVal(e.BestSquat))
		case "Bench1Kg":
			out = append(out, optVal(e.Bench1))
		case "Bench2Kg":
			out = append(out, optVal(e.Bench2))
		case "Bench3Kg":
			out = append(out, optVal(e.Bench3))
		case "Best3BenchKg":
			out = append(out, optVal(e.BestBench))
		case "Deadlift1Kg":
			out = append(out, optVal(e.Deadlift1))
		case "Deadlift2Kg":
			out = append(out, optVal(e.Deadlift2))
		case "Deadlift3Kg":
			out = append(out, optVal(e.Deadlift3))
		case "Best3DeadliftKg":
			out = append(out, optVal(e.BestDeadlift))
		case "TotalKg":
			out = append(out, e.TotalKg)
		case "Points":
			out = append(out, e.Points)
		default:
			out = append(out, "")
		}
	}
	return out
}

func optVal(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func blankZero(v int) interface{} {
	if v == 0 {
		return ""
	}
	return v
}
