package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpower/meetreport/internal/division"
	"github.com/hrpower/meetreport/internal/scoring"
)

func newTable() *Table {
	return New(division.New())
}

func TestTable_AddRepairsMissingPoints(t *testing.T) {
	table := newTable()

	table.Add(&Entry{
		Place: "1", Name: "Ivan Horvat", Club: "KSD Bjelovar",
		Sex: scoring.SexMale, Division: "Men's Open", WeightClass: "83",
		BodyweightKg: 83.4, TotalKg: 500, Event: scoring.EventSBD,
	})

	require.Equal(t, 1, table.Len())
	assert.InDelta(t, 69.05, table.Entries()[0].Points, 1e-9)
	assert.Equal(t, 1, table.Repaired())
	assert.Equal(t, 0, table.ZeroPoints())
}

func TestTable_AddKeepsSuppliedPoints(t *testing.T) {
	table := newTable()

	// A nonzero source value always wins over the formula.
	table.Add(&Entry{
		Place: "1", Name: "Ivan Horvat", Sex: scoring.SexMale,
		BodyweightKg: 83.4, TotalKg: 500, Event: scoring.EventSBD,
		Points: 70.00,
	})

	assert.Equal(t, 70.00, table.Entries()[0].Points)
	assert.Equal(t, 0, table.Repaired())
}

func TestTable_AddCountsZeroPoints(t *testing.T) {
	table := newTable()

	// DQ row: no total, so the formula cannot repair it.
	table.Add(&Entry{
		Place: "DQ", Name: "Marko Marić", Sex: scoring.SexMale,
		BodyweightKg: 93, TotalKg: 0, Event: scoring.EventSBD,
	})

	assert.Equal(t, 0.0, table.Entries()[0].Points)
	assert.Equal(t, 1, table.ZeroPoints())
	assert.Equal(t, 0, table.Repaired())
}

func TestTable_Filter(t *testing.T) {
	table := newTable()
	table.Add(&Entry{Place: "1", Name: "A", Sex: scoring.SexMale, BodyweightKg: 83, TotalKg: 500, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "1", Name: "B", Sex: scoring.SexFemale, BodyweightKg: 63, TotalKg: 380, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "1", Name: "C", Sex: scoring.SexMale, BodyweightKg: 93, TotalKg: 120, Event: scoring.EventBench})
	table.Add(&Entry{Place: "1", Name: "D", Sex: scoring.SexMale, BodyweightKg: 85, TotalKg: 510, Event: scoring.EventSBD, Equipped: true, Division: "Open-EQ"})

	males := table.Filter(Filter{Sex: scoring.SexMale})
	assert.Len(t, males, 3)

	sbd := table.Filter(Filter{Event: scoring.EventSBD})
	assert.Len(t, sbd, 3)

	rawMaleSBD := table.Filter(Filter{Sex: scoring.SexMale, Event: scoring.EventSBD, Equipment: EquipmentRaw})
	require.Len(t, rawMaleSBD, 1)
	assert.Equal(t, "A", rawMaleSBD[0].Name)

	eq := table.Filter(Filter{Equipment: EquipmentEquipped})
	require.Len(t, eq, 1)
	assert.Equal(t, "D", eq[0].Name)

	// Insertion order is preserved.
	all := table.Filter(Filter{})
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "D", all[3].Name)
}

func TestTable_CompetitiveExcludesUnrankedGuestsAndOSI(t *testing.T) {
	table := newTable()
	table.Add(&Entry{Place: "1", Name: "Ranked", Club: "K1", Sex: scoring.SexMale, Division: "Open", BodyweightKg: 83, TotalKg: 500, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "DQ", Name: "Disqualified", Club: "K1", Sex: scoring.SexMale, Division: "Open", BodyweightKg: 83, TotalKg: 500, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "2", Name: "Guest lifter", Club: "K2", Sex: scoring.SexMale, Division: "Guest", BodyweightKg: 83, TotalKg: 480, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "3", Name: "Paralympic", Club: "K2", Sex: scoring.SexMale, Division: "Open-OSI", BodyweightKg: 83, TotalKg: 470, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "4", Name: "Zero score", Club: "K3", Sex: scoring.SexMale, Division: "Open", BodyweightKg: 83, TotalKg: 0, Event: scoring.EventSBD})

	competitive := table.Competitive(Filter{Sex: scoring.SexMale, Event: scoring.EventSBD})
	require.Len(t, competitive, 1)
	assert.Equal(t, "Ranked", competitive[0].Name)
}

func TestTable_SortForDisplay(t *testing.T) {
	table := newTable()
	table.Add(&Entry{Place: "1", Name: "OpenHeavy", Division: "Men's Open", WeightClass: "120+", Sex: scoring.SexMale, BodyweightKg: 125, TotalKg: 700, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "2", Name: "JuniorSecond", Division: "Men's Raw Juniors", WeightClass: "83", Sex: scoring.SexMale, BodyweightKg: 82, TotalKg: 490, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "1", Name: "JuniorFirst", Division: "Men's Raw Juniors", WeightClass: "83", Sex: scoring.SexMale, BodyweightKg: 81, TotalKg: 520, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "1", Name: "SubJunior", Division: "Men's Raw Sub-Juniors", WeightClass: "66", Sex: scoring.SexMale, BodyweightKg: 65, TotalKg: 350, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "DQ", Name: "JuniorDQ", Division: "Men's Raw Juniors", WeightClass: "83", Sex: scoring.SexMale, BodyweightKg: 83, TotalKg: 0, Event: scoring.EventSBD})

	entries := table.Entries()
	table.SortForDisplay(entries)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"SubJunior", "JuniorFirst", "JuniorSecond", "JuniorDQ", "OpenHeavy"}, names)
}

func TestTable_GroupByCategory(t *testing.T) {
	table := newTable()
	table.Add(&Entry{Place: "1", Name: "A", Division: "Men's Open", WeightClass: "83", Sex: scoring.SexMale, BodyweightKg: 83, TotalKg: 500, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "1", Name: "B", Division: "Men's Open", WeightClass: "93", Sex: scoring.SexMale, BodyweightKg: 92, TotalKg: 520, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "2", Name: "C", Division: "Men's Open", WeightClass: "83", Sex: scoring.SexMale, BodyweightKg: 82, TotalKg: 480, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "1", Name: "D", Division: "Men's Raw Juniors", WeightClass: "83", Sex: scoring.SexMale, BodyweightKg: 83, TotalKg: 450, Event: scoring.EventSBD})

	cats := table.GroupByCategory(table.Entries())
	require.Len(t, cats, 3)

	assert.Equal(t, division.Junior, cats[0].Division)
	assert.Equal(t, "83", cats[0].WeightClass)

	assert.Equal(t, division.Open, cats[1].Division)
	assert.Equal(t, "83", cats[1].WeightClass)
	require.Len(t, cats[1].Entries, 2)
	assert.Equal(t, "A", cats[1].Entries[0].Name)
	assert.Equal(t, "C", cats[1].Entries[1].Name)

	assert.Equal(t, division.Open, cats[2].Division)
	assert.Equal(t, "93", cats[2].WeightClass)
}

func TestTable_CheckClubs(t *testing.T) {
	table := newTable()
	table.Add(&Entry{Place: "1", Name: "Has Club", Club: "KSD Bjelovar", Sex: scoring.SexMale, BodyweightKg: 83, TotalKg: 500, Event: scoring.EventSBD})
	assert.NoError(t, table.CheckClubs())

	table.Add(&Entry{Place: "2", Name: "No Club", Sex: scoring.SexMale, BodyweightKg: 83, TotalKg: 480, Event: scoring.EventSBD})

	err := table.CheckClubs()
	require.Error(t, err)

	var missing *MissingClubError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"No Club"}, missing.Names)
	assert.Contains(t, err.Error(), "No Club")
}

func TestTable_CheckClubsIgnoresUnranked(t *testing.T) {
	table := newTable()

	// DQ and guest-coded rows without a club are fine: they never enter a
	// club ranking.
	table.Add(&Entry{Place: "DQ", Name: "No Club DQ", Sex: scoring.SexMale, BodyweightKg: 83, TotalKg: 0, Event: scoring.EventSBD})
	table.Add(&Entry{Place: "G", Name: "No Club Guest", Sex: scoring.SexMale, BodyweightKg: 83, TotalKg: 400, Event: scoring.EventSBD})

	assert.NoError(t, table.CheckClubs())
}

func TestMissingClubError_PreviewCap(t *testing.T) {
	names := make([]string, 14)
	for i := range names {
		names[i] = "Lifter"
	}
	err := &MissingClubError{Names: names}
	assert.Contains(t, err.Error(), "14 natjecatelja")
	assert.Contains(t, err.Error(), "i još 4")
}

func TestEntry_RankedPlace(t *testing.T) {
	tests := []struct {
		place  string
		want   int
		ranked bool
	}{
		{"1", 1, true},
		{"12", 12, true},
		{" 3 ", 3, true},
		{"DQ", 0, false},
		{"NS", 0, false},
		{"G", 0, false},
		{"", 0, false},
		{"0", 0, false},
		{"-1", 0, false},
	}

	for _, tt := range tests {
		e := &Entry{Place: tt.place}
		got, ok := e.RankedPlace()
		assert.Equal(t, tt.want, got, tt.place)
		assert.Equal(t, tt.ranked, ok, tt.place)
	}
}
