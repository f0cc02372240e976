// Package category defines the canonical ordering of result rows: division
// first, then weight class, then placement. Every report variant sorts with
// this one key.
package category

import (
	"math"
	"strconv"
	"strings"

	"github.com/hrpower/meetreport/internal/division"
)

// Sentinel weight for labels that are not numeric at all ("All Guest" and
// similar placeholders). Sorts after every real weight class.
const unknownWeight = 9999.0

// Key is a totally ordered sort key for one result row.
type Key struct {
	DivisionOrder int
	Weight        float64
	Place         float64
}

// Make builds a Key from a classified division, the raw weight-class label
// and the raw placement string.
func Make(div division.Type, weightClass, place string) Key {
	return Key{
		DivisionOrder: div.Order(),
		Weight:        Weight(weightClass),
		Place:         placeKey(place),
	}
}

// Less orders keys division, then weight class, then placement.
func (k Key) Less(other Key) bool {
	if k.DivisionOrder != other.DivisionOrder {
		return k.DivisionOrder < other.DivisionOrder
	}
	if k.Weight != other.Weight {
		return k.Weight < other.Weight
	}
	return k.Place < other.Place
}

// Weight parses a weight-class label into a sortable number. A trailing "+"
// (superheavyweight) adds 0.5 so that "120+" lands between "120" and "125".
// Unparseable labels get the unknownWeight sentinel.
func Weight(label string) float64 {
	s := strings.TrimSpace(label)
	if strings.Contains(s, "+") {
		base, err := strconv.ParseFloat(strings.ReplaceAll(s, "+", ""), 64)
		if err != nil {
			return unknownWeight
		}
		return base + 0.5
	}

	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return unknownWeight
	}
	return w
}

// placeKey parses a placement. Non-numeric codes (DQ, NS, G) sort after all
// ranked finishers.
func placeKey(place string) float64 {
	p, err := strconv.ParseFloat(strings.TrimSpace(place), 64)
	if err != nil {
		return math.Inf(1)
	}
	return p
}
