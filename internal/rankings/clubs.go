// Package rankings aggregates scored entries into club standings and top
// performer lists.
package rankings

import (
	"sort"

	"github.com/hrpower/meetreport/internal/results"
	"github.com/hrpower/meetreport/internal/scoring"
)

// DefaultTopPerClub is how many lifters count toward a club's score.
const DefaultTopPerClub = 5

// ClubStanding is one row of a club ranking.
type ClubStanding struct {
	Place int     `json:"place"`
	Club  string  `json:"club"`
	// Points is the club's aggregate, rounded to two decimals for display.
	Points float64 `json:"points"`
	// Counted is how many lifters entered the sum: min(topN, club size).
	Counted int `json:"counted"`
}

// Clubs ranks clubs by the summed points of each club's best topN entries.
//
// Callers pass ranked, competitive entries only (see Table.Competitive);
// entries with an empty club are an upstream contract violation and are
// skipped here as a last line of defense. Sums are compared unrounded so
// display rounding can never flip an order. Equal sums are ordered by club
// name ascending, and places run 1..N with no gaps.
func Clubs(entries []*results.Entry, topN int) []ClubStanding {
	if topN <= 0 {
		topN = DefaultTopPerClub
	}

	var order []string
	byClub := make(map[string][]*results.Entry)
	for _, e := range entries {
		if e.Club == "" {
			continue
		}
		if _, ok := byClub[e.Club]; !ok {
			order = append(order, e.Club)
		}
		byClub[e.Club] = append(byClub[e.Club], e)
	}

	type clubSum struct {
		club    string
		sum     float64
		counted int
	}

	sums := make([]clubSum, 0, len(order))
	for _, club := range order {
		members := append([]*results.Entry(nil), byClub[club]...)
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Points > members[j].Points
		})
		if len(members) > topN {
			members = members[:topN]
		}

		var sum float64
		for _, m := range members {
			sum += m.Points
		}
		sums = append(sums, clubSum{club: club, sum: sum, counted: len(members)})
	}

	sort.SliceStable(sums, func(i, j int) bool {
		if sums[i].sum != sums[j].sum {
			return sums[i].sum > sums[j].sum
		}
		return sums[i].club < sums[j].club
	})

	out := make([]ClubStanding, 0, len(sums))
	for i, s := range sums {
		out = append(out, ClubStanding{
			Place:   i + 1,
			Club:    s.club,
			Points:  scoring.Round2(s.sum),
			Counted: s.counted,
		})
	}
	return out
}

// ClubMember is one lifter counted toward a club's score.
type ClubMember struct {
	Club string `json:"club"`
	// Rank is the lifter's position within the club, 1..topN.
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	Division     string  `json:"division"`
	BodyweightKg float64 `json:"bodyweight_kg"`
	TotalKg      float64 `json:"total_kg"`
	Points       float64 `json:"points"`
}

// ClubMembers lists, per club, the topN entries that enter the club sum,
// ordered by club name and then in-club rank. This is the per-club results
// listing published next to the ranking.
func ClubMembers(entries []*results.Entry, topN int) []ClubMember {
	if topN <= 0 {
		topN = DefaultTopPerClub
	}

	byClub := make(map[string][]*results.Entry)
	var clubs []string
	for _, e := range entries {
		if e.Club == "" {
			continue
		}
		if _, ok := byClub[e.Club]; !ok {
			clubs = append(clubs, e.Club)
		}
		byClub[e.Club] = append(byClub[e.Club], e)
	}
	sort.Strings(clubs)

	var out []ClubMember
	for _, club := range clubs {
		members := append([]*results.Entry(nil), byClub[club]...)
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Points > members[j].Points
		})
		if len(members) > topN {
			members = members[:topN]
		}
		for rank, m := range members {
			out = append(out, ClubMember{
				Club:         club,
				Rank:         rank + 1,
				Name:         m.Name,
				Division:     m.Division,
				BodyweightKg: m.BodyweightKg,
				TotalKg:      m.TotalKg,
				Points:       m.Points,
			})
		}
	}
	return out
}
