package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpower/meetreport/internal/api"
	"github.com/hrpower/meetreport/internal/division"
	"github.com/hrpower/meetreport/internal/pipeline"
	"github.com/hrpower/meetreport/internal/results"
	"github.com/hrpower/meetreport/internal/scoring"
	"github.com/hrpower/meetreport/pkg/config"
	"github.com/hrpower/meetreport/pkg/logger"
)

func testServer(t *testing.T, table *results.Table) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Env: "development", LogLevel: "error", LogFormat: "json",
		TopPerClub: 5, StripSuffixes: []string{"-EQ", "-OSI"},
	}
	log := logger.New(cfg)

	store := api.NewStore()
	if table != nil {
		store.Update(table)
	}

	handler := NewResultsHandler(store, pipeline.NewRunner(cfg, log), log)
	router := api.NewRouter(api.RouterDeps{Results: handler}, log)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func testTable() *results.Table {
	table := results.New(division.New())
	table.Add(&results.Entry{Place: "1", Name: "Ivan Horvat", Club: "KSD Bjelovar", Sex: scoring.SexMale, Division: "Men's Open", WeightClass: "83", BodyweightKg: 83.4, TotalKg: 500, Event: scoring.EventSBD})
	table.Add(&results.Entry{Place: "2", Name: "Marko Marić", Club: "PK Zagreb", Sex: scoring.SexMale, Division: "Men's Open", WeightClass: "83", BodyweightKg: 82.1, TotalKg: 475, Event: scoring.EventSBD})
	table.Add(&results.Entry{Place: "1", Name: "Ana Anić", Club: "PK Split", Sex: scoring.SexFemale, Division: "Women's Open", WeightClass: "63", BodyweightKg: 63, TotalKg: 380, Event: scoring.EventSBD})
	return table
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestGetResults(t *testing.T) {
	srv := testServer(t, testTable())

	var rows []ResultRow
	status := getJSON(t, srv.URL+"/api/results", &rows)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, rows, 3)

	// Display order: women's 63 sorts within Open by weight before 83.
	assert.Equal(t, "Ana Anić", rows[0].Name)
	assert.Equal(t, "Ivan Horvat", rows[1].Name)
	assert.Equal(t, "Marko Marić", rows[2].Name)
}

func TestGetResults_Filtered(t *testing.T) {
	srv := testServer(t, testTable())

	var rows []ResultRow
	status := getJSON(t, srv.URL+"/api/results?sex=F", &rows)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Anić", rows[0].Name)
}

func TestGetResults_EmptyStore(t *testing.T) {
	srv := testServer(t, nil)

	status := getJSON(t, srv.URL+"/api/results", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestGetRankings(t *testing.T) {
	srv := testServer(t, testTable())

	var standings []struct {
		Place  int     `json:"place"`
		Club   string  `json:"club"`
		Points float64 `json:"points"`
	}
	status := getJSON(t, srv.URL+"/api/rankings/M/SBD", &standings)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, standings, 2)
	assert.Equal(t, "KSD Bjelovar", standings[0].Club)
	assert.Equal(t, 1, standings[0].Place)
}

func TestGetTop(t *testing.T) {
	srv := testServer(t, testTable())

	var rows []ResultRow
	status := getJSON(t, srv.URL+"/api/top/M/SBD", &rows)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ivan Horvat", rows[0].Name)
}

func TestGetStats(t *testing.T) {
	srv := testServer(t, testTable())

	var payload struct {
		Stats struct {
			Records int `json:"records"`
			Clubs   int `json:"clubs"`
		} `json:"stats"`
	}
	status := getJSON(t, srv.URL+"/api/stats", &payload)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, payload.Stats.Records)
	assert.Equal(t, 3, payload.Stats.Clubs)
}

func TestHealth(t *testing.T) {
	srv := testServer(t, nil)

	status := getJSON(t, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, status)
}
