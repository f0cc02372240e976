package rankings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpower/meetreport/internal/results"
)

func entry(name, club string, points float64) *results.Entry {
	return &results.Entry{Place: "1", Name: name, Club: club, Points: points}
}

func TestClubs_TopFivePerClub(t *testing.T) {
	// Alpha has six lifters; only the best five count.
	entries := []*results.Entry{
		entry("A1", "Alpha", 60),
		entry("A2", "Alpha", 55),
		entry("A3", "Alpha", 50),
		entry("A4", "Alpha", 45),
		entry("A5", "Alpha", 45),
		entry("A6", "Alpha", 40), // dropped
		entry("B1", "Beta", 70),
		entry("B2", "Beta", 70),
		entry("B3", "Beta", 60),
	}

	standings := Clubs(entries, 5)
	require.Len(t, standings, 2)

	assert.Equal(t, 1, standings[0].Place)
	assert.Equal(t, "Alpha", standings[0].Club)
	assert.Equal(t, 255.0, standings[0].Points)
	assert.Equal(t, 5, standings[0].Counted)

	assert.Equal(t, 2, standings[1].Place)
	assert.Equal(t, "Beta", standings[1].Club)
	assert.Equal(t, 200.0, standings[1].Points)
	assert.Equal(t, 3, standings[1].Counted)
}

func TestClubs_SmallClubCountsAll(t *testing.T) {
	entries := []*results.Entry{
		entry("Solo", "Gamma", 80),
	}

	standings := Clubs(entries, 5)
	require.Len(t, standings, 1)
	assert.Equal(t, 80.0, standings[0].Points)
	assert.Equal(t, 1, standings[0].Counted)
}

func TestClubs_TieBrokenByName(t *testing.T) {
	entries := []*results.Entry{
		entry("Z1", "Zagreb", 100),
		entry("A1", "Apatovac", 100),
	}

	standings := Clubs(entries, 5)
	require.Len(t, standings, 2)
	assert.Equal(t, "Apatovac", standings[0].Club)
	assert.Equal(t, 1, standings[0].Place)
	assert.Equal(t, "Zagreb", standings[1].Club)
	assert.Equal(t, 2, standings[1].Place)
}

func TestClubs_UnroundedComparison(t *testing.T) {
	// 50.004 + 50.004 = 100.008 beats 100.005 even though both display
	// as 100.01 vs 100.01/100.0 after rounding: ordering uses raw sums.
	entries := []*results.Entry{
		entry("A1", "Alpha", 50.004),
		entry("A2", "Alpha", 50.004),
		entry("B1", "Beta", 100.005),
	}

	standings := Clubs(entries, 5)
	require.Len(t, standings, 2)
	assert.Equal(t, "Alpha", standings[0].Club)
}

func TestClubs_SkipsEmptyClub(t *testing.T) {
	entries := []*results.Entry{
		entry("A1", "Alpha", 60),
		entry("Nobody", "", 90),
	}

	standings := Clubs(entries, 5)
	require.Len(t, standings, 1)
	assert.Equal(t, "Alpha", standings[0].Club)
}

func TestClubs_Idempotent(t *testing.T) {
	entries := []*results.Entry{
		entry("A1", "Alpha", 60),
		entry("B1", "Beta", 70),
		entry("A2", "Alpha", 55),
	}

	first := Clubs(entries, 5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Clubs(entries, 5))
	}
}

func TestClubs_PlacesHaveNoGaps(t *testing.T) {
	entries := []*results.Entry{
		entry("A1", "Alpha", 60),
		entry("B1", "Beta", 60),
		entry("C1", "Gamma", 50),
	}

	standings := Clubs(entries, 5)
	require.Len(t, standings, 3)
	for i, s := range standings {
		assert.Equal(t, i+1, s.Place)
	}
}

func TestClubMembers(t *testing.T) {
	entries := []*results.Entry{
		entry("A1", "Alpha", 60),
		entry("A2", "Alpha", 70),
		entry("A3", "Alpha", 50),
		entry("B1", "Beta", 90),
	}

	members := ClubMembers(entries, 2)
	require.Len(t, members, 3)

	// Clubs alphabetical, members by in-club rank.
	assert.Equal(t, "Alpha", members[0].Club)
	assert.Equal(t, "A2", members[0].Name)
	assert.Equal(t, 1, members[0].Rank)
	assert.Equal(t, "A1", members[1].Name)
	assert.Equal(t, 2, members[1].Rank)
	assert.Equal(t, "Beta", members[2].Club)
	assert.Equal(t, "B1", members[2].Name)
}

func TestTop(t *testing.T) {
	entries := []*results.Entry{
		entry("Third", "X", 60),
		entry("First", "X", 90),
		entry("Second", "X", 70),
	}

	top := Top(entries, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "First", top[0].Name)
	assert.Equal(t, "Second", top[1].Name)

	// Input slice untouched.
	assert.Equal(t, "Third", entries[0].Name)
}

func TestTop_StableOnTies(t *testing.T) {
	entries := []*results.Entry{
		entry("Earlier", "X", 70),
		entry("Later", "X", 70),
		entry("Best", "X", 90),
	}

	top := Top(entries, 5)
	require.Len(t, top, 3)
	assert.Equal(t, "Best", top[0].Name)
	assert.Equal(t, "Earlier", top[1].Name)
	assert.Equal(t, "Later", top[2].Name)
}

func TestTop_FewerThanN(t *testing.T) {
	entries := []*results.Entry{entry("Only", "X", 50)}
	assert.Len(t, Top(entries, 5), 1)
	assert.Empty(t, Top(nil, 5))
}
