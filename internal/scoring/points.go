// Package scoring computes IPF GL points from bodyweight, lifted total,
// sex and event using the official 2020 coefficient tables.
package scoring

import "math"

// Sex is the competitor sex code as it appears in result exports.
type Sex string

// Event is the event code as it appears in result exports.
type Event string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"

	// EventSBD is the full powerlifting total (squat, bench, deadlift).
	EventSBD Event = "SBD"
	// EventBench is the single-lift bench press event.
	EventBench Event = "B"
)

// coefficients holds one (A, B, C) row of the IPF GL table.
type coefficients struct {
	a, b, c float64
}

// Official IPF GL coefficients, Classic, from IPF_GL_Coefficients-2020.
var glTable = map[Event]map[Sex]coefficients{
	EventSBD: {
		SexMale:   {a: 1199.72839, b: 1025.18162, c: 0.00921},
		SexFemale: {a: 610.32796, b: 1045.59282, c: 0.03048},
	},
	EventBench: {
		SexMale:   {a: 320.98041, b: 281.40258, c: 0.01008},
		SexFemale: {a: 142.40398, b: 442.52671, c: 0.04724},
	},
}

// Points computes IPF GL points: 100/(A-B*exp(-C*bodyweight)) * total,
// rounded half-up to two decimals.
//
// Missing or zero bodyweight/total yields 0, as does any arithmetic
// breakdown in the formula. Scoring never fails: bad input data is worth
// zero points, not an aborted run.
func Points(bodyweightKg, totalKg float64, sex Sex, event Event) float64 {
	if bodyweightKg <= 0 || math.IsNaN(bodyweightKg) {
		return 0
	}
	if totalKg <= 0 || math.IsNaN(totalKg) {
		return 0
	}

	// Anything that is not the full three-lift event scores as bench only,
	// and anything that is not male scores on the female table. Mirrors how
	// the source exports encode these columns.
	ev := EventBench
	if event == EventSBD {
		ev = EventSBD
	}
	sx := SexFemale
	if sex == SexMale {
		sx = SexMale
	}

	co := glTable[ev][sx]
	denom := co.a - co.b*math.Exp(-co.c*bodyweightKg)
	if denom == 0 {
		return 0
	}

	points := 100 / denom * totalKg
	if math.IsNaN(points) || math.IsInf(points, 0) || points < 0 {
		return 0
	}

	return Round2(points)
}

// Round2 rounds half-up to two decimal places. Used for the formula output
// and for club aggregate display; rankings always compare unrounded sums.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
