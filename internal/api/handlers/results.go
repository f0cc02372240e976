// Package handlers implements the report server's JSON endpoints.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/hrpower/meetreport/internal/api"
	"github.com/hrpower/meetreport/internal/pipeline"
	"github.com/hrpower/meetreport/internal/rankings"
	"github.com/hrpower/meetreport/internal/report"
	"github.com/hrpower/meetreport/internal/results"
	"github.com/hrpower/meetreport/internal/scoring"
	"github.com/hrpower/meetreport/pkg/logger"
)

// ResultsHandler serves the generated report data.
type ResultsHandler struct {
	store  *api.Store
	runner *pipeline.Runner
	logger *logger.Logger
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(store *api.Store, runner *pipeline.Runner, log *logger.Logger) *ResultsHandler {
	return &ResultsHandler{store: store, runner: runner, logger: log}
}

// ResultRow is the JSON shape of one result listing row.
type ResultRow struct {
	Place        string  `json:"place"`
	Name         string  `json:"name"`
	Club         string  `json:"club"`
	Sex          string  `json:"sex"`
	BirthYear    int     `json:"birth_year,omitempty"`
	Division     string  `json:"division"`
	WeightClass  string  `json:"weight_class"`
	BodyweightKg float64 `json:"bodyweight_kg"`
	TotalKg      float64 `json:"total_kg"`
	Points       float64 `json:"points"`
	Event        string  `json:"event"`
}

// GetResults returns the result listing in canonical display order.
// GET /api/results?sex=M|F&event=SBD|B
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	table, _, ok := h.store.Snapshot()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "rezultati još nisu učitani")
		return
	}

	filter := results.Filter{
		Sex:   scoring.Sex(strings.ToUpper(r.URL.Query().Get("sex"))),
		Event: scoring.Event(strings.ToUpper(r.URL.Query().Get("event"))),
	}

	entries := table.Filter(filter)
	table.SortForDisplay(entries)

	rows := make([]ResultRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, toRow(e))
	}
	writeJSON(w, rows)
}

// GetRankings returns the club standings for one category.
// GET /api/rankings/{sex}/{event}?equipment=raw|eq
func (h *ResultsHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	table, _, ok := h.store.Snapshot()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "rezultati još nisu učitani")
		return
	}

	cat, ok := h.categoryFromRequest(table, r)
	if !ok {
		writeError(w, http.StatusNotFound, "nepoznata kategorija")
		return
	}

	writeJSON(w, h.runner.Standings(table, cat))
}

// GetTop returns the top-5 performers for one category slice.
// GET /api/top/{sex}/{event}
func (h *ResultsHandler) GetTop(w http.ResponseWriter, r *http.Request) {
	table, _, ok := h.store.Snapshot()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "rezultati još nisu učitani")
		return
	}

	vars := mux.Vars(r)
	entries := table.Competitive(results.Filter{
		Sex:   scoring.Sex(strings.ToUpper(vars["sex"])),
		Event: scoring.Event(strings.ToUpper(vars["event"])),
	})

	rows := make([]ResultRow, 0, rankings.DefaultTopPerformers)
	for _, e := range rankings.Top(entries, rankings.DefaultTopPerformers) {
		rows = append(rows, toRow(e))
	}
	writeJSON(w, rows)
}

// GetStats returns the run statistics summary.
// GET /api/stats
func (h *ResultsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	table, builtAt, ok := h.store.Snapshot()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "rezultati još nisu učitani")
		return
	}

	writeJSON(w, struct {
		BuiltAt time.Time    `json:"built_at"`
		Stats   report.Stats `json:"stats"`
	}{BuiltAt: builtAt, Stats: report.ComputeStats(table)})
}

func (h *ResultsHandler) categoryFromRequest(table *results.Table, r *http.Request) (pipeline.Category, bool) {
	vars := mux.Vars(r)
	sex := scoring.Sex(strings.ToUpper(vars["sex"]))
	event := scoring.Event(strings.ToUpper(vars["event"]))

	equipment := results.EquipmentRaw
	if q := strings.ToLower(r.URL.Query().Get("equipment")); q == "eq" || q == "equipped" {
		equipment = results.EquipmentEquipped
	}

	for _, cat := range h.runner.Categories(table) {
		if cat.Sex == sex && cat.Event == event && cat.Equipment == equipment {
			return cat, true
		}
	}
	return pipeline.Category{}, false
}

func toRow(e *results.Entry) ResultRow {
	return ResultRow{
		Place:        e.Place,
		Name:         e.Name,
		Club:         e.Club,
		Sex:          string(e.Sex),
		BirthYear:    e.BirthYear,
		Division:     e.Division,
		WeightClass:  e.WeightClass,
		BodyweightKg: e.BodyweightKg,
		TotalKg:      e.TotalKg,
		Points:       e.Points,
		Event:        string(e.Event),
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
