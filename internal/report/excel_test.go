package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpower/meetreport/internal/results"
	"github.com/hrpower/meetreport/internal/scoring"
)

func TestBuildWorkbook_Sheets(t *testing.T) {
	f, err := BuildWorkbook(sampleTable(), "Test Kup", 5)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Muški Powerlifting")
	assert.Contains(t, sheets, "Ženski Powerlifting")
	assert.Contains(t, sheets, "Muški Potisak s klupe")
	assert.Contains(t, sheets, "Ženski Potisak s klupe")
	assert.Contains(t, sheets, "Rang Klubova")
	assert.Contains(t, sheets, "Statistika")
	assert.NotContains(t, sheets, "Sheet1")
}

func TestBuildWorkbook_ResultSheetContent(t *testing.T) {
	f, err := BuildWorkbook(sampleTable(), "Test Kup", 5)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Muški Powerlifting")
	require.NoError(t, err)

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	assert.Contains(t, flat, "Ivan Horvat")
	assert.Contains(t, flat, "KSD Bjelovar")
}

func TestBuildWorkbook_EquippedClassGetsOwnTable(t *testing.T) {
	table := sampleTable()
	table.Add(&results.Entry{Place: "1", Name: "Luka Lukić", Club: "PK Zagreb", Sex: scoring.SexMale, Division: "Men's Open-EQ", Equipped: true, WeightClass: "83", BodyweightKg: 82.5, TotalKg: 510, Event: scoring.EventSBD})

	f, err := BuildWorkbook(table, "Test Kup", 5)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Muški Powerlifting")
	require.NoError(t, err)

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}

	// Raw and equipped lifters rank in separate pools, so the 83 class gets
	// one table per pool, each with its own first place.
	assert.GreaterOrEqual(t, indexOf(flat, "Muški Seniori - 83kg"), 0)
	assert.GreaterOrEqual(t, indexOf(flat, "Muški Seniori EQ - 83kg"), 0)

	eqBanner := indexOf(flat, "═══ SENIORI EQ KATEGORIJA ═══")
	require.GreaterOrEqual(t, eqBanner, 0)
	assert.Less(t, indexOf(flat, "Ivan Horvat"), eqBanner)
	assert.Greater(t, indexOf(flat, "Luka Lukić"), eqBanner)
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}

func TestBuildWorkbook_StatsSheetTitle(t *testing.T) {
	f, err := BuildWorkbook(sampleTable(), "Test Kup", 5)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Statistika", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Test Kup - Statistika", title)
}
