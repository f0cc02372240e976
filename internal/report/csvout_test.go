package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpower/meetreport/internal/rankings"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteProcessed(t *testing.T) {
	table := sampleTable()
	path := filepath.Join(t.TempDir(), "obradjeno.csv")

	require.NoError(t, WriteProcessed(path, table.Entries()))

	rows := readCSV(t, path)
	require.Len(t, rows, 5)
	assert.Equal(t, processedColumns, rows[0])
	assert.Equal(t, "Ivan Horvat", rows[1][1])
	assert.Equal(t, "69.05", rows[1][21])

	// DQ row keeps its code and a zero score.
	assert.Equal(t, "DQ", rows[4][0])
	assert.Equal(t, "0", rows[4][21])
}

func TestWriteClubRanking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.csv")
	standings := []rankings.ClubStanding{
		{Place: 1, Club: "Alpha", Points: 255, Counted: 5},
		{Place: 2, Club: "Beta", Points: 200, Counted: 3},
	}

	require.NoError(t, WriteClubRanking(path, standings))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Place", "Club", "Points"}, rows[0])
	assert.Equal(t, []string{"1", "Alpha", "255"}, rows[1])
	assert.Equal(t, []string{"2", "Beta", "200"}, rows[2])
}

func TestWriteClubMembers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.csv")
	members := []rankings.ClubMember{
		{Club: "Alpha", Rank: 1, Name: "A1", Division: "Open", BodyweightKg: 83, TotalKg: 500, Points: 69.05},
	}

	require.NoError(t, WriteClubMembers(path, members))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "A1", rows[1][2])
	assert.Equal(t, "69.05", rows[1][6])
}
