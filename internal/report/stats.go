package report

import (
	"math"

	"github.com/hrpower/meetreport/internal/rankings"
	"github.com/hrpower/meetreport/internal/results"
	"github.com/hrpower/meetreport/internal/scoring"
)

// GroupStats summarizes GL points over one slice of the result set.
type GroupStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
}

// Stats is the run summary published on the statistics sheet and the stats
// endpoint.
type Stats struct {
	Records    int                   `json:"records"`
	Clubs      int                   `json:"clubs"`
	Overall    GroupStats            `json:"overall"`
	ByEvent    map[string]GroupStats `json:"by_event"`
	BySex      map[string]GroupStats `json:"by_sex"`
	Top        []TopEntry            `json:"top"`
	Repaired   int                   `json:"repaired"`
	ZeroPoints int                   `json:"zero_points"`
}

// TopEntry is one row of the top performances table.
type TopEntry struct {
	Name         string  `json:"name"`
	Club         string  `json:"club"`
	Sex          string  `json:"sex"`
	Division     string  `json:"division"`
	BodyweightKg float64 `json:"bodyweight_kg"`
	TotalKg      float64 `json:"total_kg"`
	Points       float64 `json:"points"`
	Event        string  `json:"event"`
}

// topTableSize is the length of the overall top performances table.
const topTableSize = 10

// ComputeStats builds the run summary from a result table.
func ComputeStats(table *results.Table) Stats {
	entries := table.Entries()

	stats := Stats{
		Records:    len(entries),
		ByEvent:    make(map[string]GroupStats),
		BySex:      make(map[string]GroupStats),
		Repaired:   table.Repaired(),
		ZeroPoints: table.ZeroPoints(),
	}

	clubs := make(map[string]bool)
	for _, e := range entries {
		if e.Club != "" {
			clubs[e.Club] = true
		}
	}
	stats.Clubs = len(clubs)

	stats.Overall = groupStats(entries)
	for _, event := range []scoring.Event{scoring.EventSBD, scoring.EventBench} {
		stats.ByEvent[string(event)] = groupStats(table.Filter(results.Filter{Event: event}))
	}
	for _, sex := range []scoring.Sex{scoring.SexMale, scoring.SexFemale} {
		stats.BySex[string(sex)] = groupStats(table.Filter(results.Filter{Sex: sex}))
	}

	for _, e := range rankings.Top(entries, topTableSize) {
		stats.Top = append(stats.Top, TopEntry{
			Name:         e.Name,
			Club:         e.Club,
			Sex:          string(e.Sex),
			Division:     e.Division,
			BodyweightKg: e.BodyweightKg,
			TotalKg:      e.TotalKg,
			Points:       e.Points,
			Event:        string(e.Event),
		})
	}

	return stats
}

func groupStats(entries []*results.Entry) GroupStats {
	gs := GroupStats{Min: math.Inf(1)}
	var sum float64
	for _, e := range entries {
		gs.Count++
		sum += e.Points
		if e.Points > gs.Max {
			gs.Max = e.Points
		}
		if e.Points < gs.Min {
			gs.Min = e.Points
		}
	}
	if gs.Count == 0 {
		return GroupStats{}
	}
	gs.Average = scoring.Round2(sum / float64(gs.Count))
	return gs
}
