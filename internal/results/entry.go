// Package results holds the in-memory result set for one competition run.
package results

import (
	"strconv"
	"strings"

	"github.com/hrpower/meetreport/internal/scoring"
)

// Equipment is the supportive-gear category of an entry.
type Equipment string

const (
	EquipmentAny      Equipment = ""
	EquipmentRaw      Equipment = "Raw"
	EquipmentEquipped Equipment = "Equipped"
)

// Entry is one competitor's result in one event.
//
// Place is kept as the raw source string: numeric for ranked finishers,
// codes like DQ, NS or G otherwise. Attempt fields are nil when the source
// column was blank. Missed attempts carry the negative value the export
// uses.
type Entry struct {
	Place     string
	Name      string
	Club      string
	Sex       scoring.Sex
	BirthYear int // 0 when unknown
	Division  string
	Equipped  bool

	BodyweightKg float64
	WeightClass  string

	Squat1, Squat2, Squat3, BestSquat             *float64
	Bench1, Bench2, Bench3, BestBench             *float64
	Deadlift1, Deadlift2, Deadlift3, BestDeadlift *float64

	// TotalKg is the scored lift total: full total for SBD, best bench for
	// bench only.
	TotalKg float64
	Points  float64
	Event   scoring.Event
}

// RankedPlace returns the numeric placement and whether the entry is a
// ranked finisher at all.
func (e *Entry) RankedPlace() (int, bool) {
	p, err := strconv.Atoi(strings.TrimSpace(e.Place))
	if err != nil || p <= 0 {
		return 0, false
	}
	return p, true
}

// Ranked reports whether the entry has a numeric placement. Disqualified,
// no-show and guest-coded entries stay visible in listings but never enter
// ranking or top-N computations.
func (e *Entry) Ranked() bool {
	_, ok := e.RankedPlace()
	return ok
}

// Equipment returns the gear category of the entry.
func (e *Entry) Equipment() Equipment {
	if e.Equipped {
		return EquipmentEquipped
	}
	return EquipmentRaw
}
