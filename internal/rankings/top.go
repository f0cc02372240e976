package rankings

import (
	"sort"

	"github.com/hrpower/meetreport/internal/results"
)

// DefaultTopPerformers is the length of published top performer lists.
const DefaultTopPerformers = 5

// Top returns the n highest-scoring entries, points descending. Ties keep
// input order (stable), so reruns over the same data are identical. The
// input slice is not modified.
func Top(entries []*results.Entry, n int) []*results.Entry {
	if n <= 0 {
		n = DefaultTopPerformers
	}

	sorted := append([]*results.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
