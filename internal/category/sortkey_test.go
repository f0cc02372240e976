package category

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hrpower/meetreport/internal/division"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"59", 59},
		{"83", 83},
		{"120", 120},
		{"120+", 120.5},
		{"84+", 84.5},
		{" 74 ", 74},
		{"All Guest", unknownWeight},
		{"", unknownWeight},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, Weight(tt.label))
		})
	}
}

func TestWeight_SuperheavyBetweenClasses(t *testing.T) {
	// "120+" must land between "120" and "125".
	assert.Less(t, Weight("120"), Weight("120+"))
	assert.Less(t, Weight("120+"), Weight("125"))
}

func TestKey_Less(t *testing.T) {
	// Division dominates weight, weight dominates placement.
	junior := Make(division.Junior, "120", "1")
	open := Make(division.Open, "59", "1")
	assert.True(t, junior.Less(open))
	assert.False(t, open.Less(junior))

	light := Make(division.Open, "74", "9")
	heavy := Make(division.Open, "83", "1")
	assert.True(t, light.Less(heavy))

	first := Make(division.Open, "83", "1")
	second := Make(division.Open, "83", "2")
	assert.True(t, first.Less(second))
}

func TestKey_UnrankedSortLast(t *testing.T) {
	ranked := Make(division.Open, "83", "12")
	dq := Make(division.Open, "83", "DQ")
	ns := Make(division.Open, "83", "NS")

	assert.True(t, ranked.Less(dq))
	assert.True(t, ranked.Less(ns))
	assert.Equal(t, math.Inf(1), dq.Place)
}

func TestKey_FullOrdering(t *testing.T) {
	keys := []Key{
		Make(division.Open, "83", "DQ"),
		Make(division.MasterI, "59", "1"),
		Make(division.Open, "120+", "1"),
		Make(division.SubJunior, "66", "2"),
		Make(division.Open, "83", "1"),
		Make(division.SubJunior, "66", "1"),
		Make(division.Open, "125", "1"),
	}

	sort.SliceStable(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	want := []Key{
		Make(division.SubJunior, "66", "1"),
		Make(division.SubJunior, "66", "2"),
		Make(division.Open, "83", "1"),
		Make(division.Open, "83", "DQ"),
		Make(division.Open, "120+", "1"),
		Make(division.Open, "125", "1"),
		Make(division.MasterI, "59", "1"),
	}
	assert.Equal(t, want, keys)
}
