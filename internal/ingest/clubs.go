package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// clubsHeaderRow is where the nominations file keeps its header: two
// title/empty rows come first.
const clubsHeaderRow = 2

// ClubLookup resolves athlete names to club and birth year, with
// case/whitespace-normalized keys.
type ClubLookup struct {
	clubs      map[string]string
	birthYears map[string]int
}

// NormalizeName collapses whitespace and lowercases a full name so lookups
// survive the usual source-data sloppiness.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Club returns the club for a name, or "".
func (c *ClubLookup) Club(name string) string {
	return c.clubs[NormalizeName(name)]
}

// BirthYear returns the birth year for a name, or 0.
func (c *ClubLookup) BirthYear(name string) int {
	return c.birthYears[NormalizeName(name)]
}

// Size returns the number of club mappings.
func (c *ClubLookup) Size() int {
	return len(c.clubs)
}

// LoadClubs reads the nominations file (IME, PREZIME, KLUB, GODIŠTE
// columns, header on the third row). Rows with missing name parts or
// repeated header text are skipped; a bad birth year only loses that one
// mapping.
func LoadClubs(path string) (*ClubLookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datoteka s klubovima nije pronađena: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1
	r.Comma = detectDelimiter(path)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse clubs file: %w", err)
	}

	if len(records) <= clubsHeaderRow {
		return nil, fmt.Errorf("datoteka s klubovima nema header na retku %d", clubsHeaderRow+1)
	}

	header := records[clubsHeaderRow]
	nameCol, surnameCol, clubCol, yearCol := -1, -1, -1, -1
	for i, h := range header {
		switch strings.ToUpper(strings.TrimSpace(h)) {
		case "IME":
			nameCol = i
		case "PREZIME":
			surnameCol = i
		case "KLUB":
			clubCol = i
		case "GODIŠTE", "GODISTE", "BIRTHYEAR":
			yearCol = i
		}
	}

	if nameCol < 0 || surnameCol < 0 || clubCol < 0 {
		return nil, fmt.Errorf("datoteka s klubovima ne sadrži kolone IME, PREZIME, KLUB (pronađeno: %v)", header)
	}

	lookup := &ClubLookup{
		clubs:      make(map[string]string),
		birthYears: make(map[string]int),
	}

	for _, row := range records[clubsHeaderRow+1:] {
		ime := cell(row, nameCol)
		prezime := cell(row, surnameCol)
		if ime == "" || prezime == "" ||
			strings.EqualFold(ime, "IME") || strings.EqualFold(prezime, "PREZIME") {
			continue
		}

		key := NormalizeName(ime + " " + prezime)

		if klub := cell(row, clubCol); klub != "" {
			lookup.clubs[key] = klub
		}

		if yearCol >= 0 {
			if year, err := strconv.ParseFloat(cell(row, yearCol), 64); err == nil && year > 0 {
				lookup.birthYears[key] = int(year)
			}
		}
	}

	return lookup, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// detectDelimiter sniffs between comma and semicolon: nomination files come
// in both flavors depending on which spreadsheet exported them.
func detectDelimiter(path string) rune {
	f, err := os.Open(path)
	if err != nil {
		return ','
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	semis, commas := 0, 0
	for i := 0; scanner.Scan() && i < 5; i++ {
		semis += strings.Count(scanner.Text(), ";")
		commas += strings.Count(scanner.Text(), ",")
	}
	if semis > commas {
		return ';'
	}
	return ','
}
