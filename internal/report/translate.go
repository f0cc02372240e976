// Package report renders the pipeline output: intermediate CSV files, the
// statistics summary and the styled Excel workbook. All user-facing report
// text is Croatian.
package report

import (
	"strings"

	"github.com/hrpower/meetreport/internal/division"
	"github.com/hrpower/meetreport/internal/scoring"
)

// columnTranslations maps export column names to Croatian report headers.
var columnTranslations = map[string]string{
	"Place":           "Plasman",
	"Name":            "Ime i prezime",
	"Club":            "Klub",
	"Sex":             "Spol",
	"BirthYear":       "Godina rođenja",
	"Division":        "Kategorija",
	"BodyweightKg":    "Tjelesna masa (kg)",
	"WeightClassKg":   "Težinska kategorija (kg)",
	"Squat1Kg":        "Čučanj 1 (kg)",
	"Squat2Kg":        "Čučanj 2 (kg)",
	"Squat3Kg":        "Čučanj 3 (kg)",
	"Best3SquatKg":    "Najbolji čučanj (kg)",
	"Bench1Kg":        "Potisak s klupe 1 (kg)",
	"Bench2Kg":        "Potisak s klupe 2 (kg)",
	"Bench3Kg":        "Potisak s klupe 3 (kg)",
	"Best3BenchKg":    "Najbolji potisak s klupe (kg)",
	"Deadlift1Kg":     "Mrtvo dizanje 1 (kg)",
	"Deadlift2Kg":     "Mrtvo dizanje 2 (kg)",
	"Deadlift3Kg":     "Mrtvo dizanje 3 (kg)",
	"Best3DeadliftKg": "Najbolje mrtvo dizanje (kg)",
	"TotalKg":         "Ukupno (kg)",
	"Points":          "GL Bodovi",
	"Event":           "Disciplina",
}

// divisionTranslations maps division types to Croatian names used in
// category titles and sheet banners.
var divisionTranslations = map[division.Type]string{
	division.SubJunior: "Kadeti",
	division.Junior:    "Juniori",
	division.Open:      "Seniori",
	division.MasterI:   "Veterani 1",
	division.MasterII:  "Veterani 2",
	division.MasterIII: "Veterani 3",
	division.MasterIV:  "Veterani 4",
}

// TranslateColumns maps export column names to Croatian headers. Unknown
// columns pass through unchanged.
func TranslateColumns(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		if t, ok := columnTranslations[c]; ok {
			out[i] = t
		} else {
			out[i] = c
		}
	}
	return out
}

// TranslateDivision builds the Croatian category title for a division type:
// gender prefix, localized division name, optional EQ suffix.
func TranslateDivision(t division.Type, sex scoring.Sex, equipped bool) string {
	prefix := "Ženski "
	if sex == scoring.SexMale {
		prefix = "Muški "
	}
	name := divisionTranslations[t]
	if name == "" {
		name = t.String()
	}
	if equipped {
		name += " EQ"
	}
	return prefix + name
}

// DivisionBanner returns the uppercase banner text for a division section.
func DivisionBanner(t division.Type, equipped bool) string {
	name := divisionTranslations[t]
	if name == "" {
		name = t.String()
	}
	name = strings.ToUpper(name)
	if equipped {
		name += " EQ"
	}
	return name
}

// EventTitle returns the Croatian discipline name used in sheet names and
// ranking section headings.
func EventTitle(sex scoring.Sex, event scoring.Event) string {
	prefix := "Ženski"
	if sex == scoring.SexMale {
		prefix = "Muški"
	}
	if event == scoring.EventBench {
		return prefix + " Potisak s klupe"
	}
	return prefix + " Powerlifting"
}
