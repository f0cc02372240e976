package results

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hrpower/meetreport/internal/category"
	"github.com/hrpower/meetreport/internal/division"
	"github.com/hrpower/meetreport/internal/scoring"
)

// missingClubPreview caps how many offending names a MissingClubError
// spells out before switching to a count.
const missingClubPreview = 10

// Table owns the full set of entries for one run. Entries are never shared
// across runs and never mutated after insertion, except for the one-time
// points repair in Add.
type Table struct {
	classifier *division.Classifier
	entries    []*Entry
	repaired   int
	zeroPoints int
}

// New creates an empty table using the given classifier for grouping and
// ordering.
func New(c *division.Classifier) *Table {
	return &Table{classifier: c}
}

// Classifier returns the division classifier the table orders by.
func (t *Table) Classifier() *division.Classifier {
	return t.classifier
}

// Add stores an entry, filling in Points from the GL formula when the
// source did not supply a nonzero value. A supplied value always wins; the
// formula is a fallback, never an override.
func (t *Table) Add(e *Entry) {
	if e.Points == 0 {
		e.Points = scoring.Points(e.BodyweightKg, e.TotalKg, e.Sex, e.Event)
		if e.Points > 0 {
			t.repaired++
		}
	}
	if e.Points == 0 {
		t.zeroPoints++
	}
	t.entries = append(t.entries, e)
}

// Entries returns all entries in insertion order.
func (t *Table) Entries() []*Entry {
	return t.entries
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Repaired returns how many entries had their points filled from the
// formula. Reported in the run summary.
func (t *Table) Repaired() int {
	return t.repaired
}

// ZeroPoints returns how many entries ended up with a zero score. Reported
// in the run summary; never aborts the run.
func (t *Table) ZeroPoints() int {
	return t.zeroPoints
}

// Filter selects entries matching the given fields, preserving insertion
// order. Zero values match everything.
type Filter struct {
	Sex       scoring.Sex
	Event     scoring.Event
	Equipment Equipment
}

// Filter returns the subset of entries matching f, in insertion order.
func (t *Table) Filter(f Filter) []*Entry {
	out := make([]*Entry, 0, len(t.entries))
	for _, e := range t.entries {
		if f.Sex != "" && e.Sex != f.Sex {
			continue
		}
		if f.Event != "" && e.Event != f.Event {
			continue
		}
		if f.Equipment != EquipmentAny && e.Equipment() != f.Equipment {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Competitive returns the entries that count toward rankings and top lists:
// ranked finishers with a positive score, excluding guests and paralympic
// divisions.
func (t *Table) Competitive(f Filter) []*Entry {
	out := make([]*Entry, 0, len(t.entries))
	for _, e := range t.Filter(f) {
		if !e.Ranked() || e.Points <= 0 {
			continue
		}
		if t.classifier.IsGuest(e.Division) || t.classifier.IsParalympic(e.Division) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortForDisplay orders entries in place by the canonical category key.
func (t *Table) SortForDisplay(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return t.sortKey(entries[i]).Less(t.sortKey(entries[j]))
	})
}

func (t *Table) sortKey(e *Entry) category.Key {
	return category.Make(t.classifier.Classify(e.Division), e.WeightClass, e.Place)
}

// Category is one (division, weight class) bucket.
type Category struct {
	Division    division.Type
	WeightClass string
	// Label is the raw division label of the bucket's first entry, kept for
	// report headings.
	Label   string
	Entries []*Entry
}

// GroupByCategory partitions entries into (division type, weight class)
// buckets. Buckets and their contents follow the canonical display order.
func (t *Table) GroupByCategory(entries []*Entry) []Category {
	sorted := append([]*Entry(nil), entries...)
	t.SortForDisplay(sorted)

	type key struct {
		div    division.Type
		weight string
	}

	var order []key
	buckets := make(map[key]*Category)
	for _, e := range sorted {
		k := key{div: t.classifier.Classify(e.Division), weight: e.WeightClass}
		b, ok := buckets[k]
		if !ok {
			b = &Category{Division: k.div, WeightClass: k.weight, Label: e.Division}
			buckets[k] = b
			order = append(order, k)
		}
		b.Entries = append(b.Entries, e)
	}

	out := make([]Category, 0, len(order))
	for _, k := range order {
		out = append(out, *buckets[k])
	}
	return out
}

// DivisionGroup is one division-type slice of a result subset.
type DivisionGroup struct {
	Division division.Type
	Entries  []*Entry
}

// GroupByDivision partitions entries by division type, in display order.
// Divisions with no entries are omitted.
func (t *Table) GroupByDivision(entries []*Entry) []DivisionGroup {
	byType := make(map[division.Type][]*Entry)
	for _, e := range entries {
		d := t.classifier.Classify(e.Division)
		byType[d] = append(byType[d], e)
	}

	var out []DivisionGroup
	for _, d := range division.Types() {
		if len(byType[d]) > 0 {
			out = append(out, DivisionGroup{Division: d, Entries: byType[d]})
		}
	}
	return out
}

// MissingClubs lists the names of ranked entries with no club affiliation.
// A non-empty result is a fatal data-quality problem: the run must stop
// before producing any report.
func (t *Table) MissingClubs() []string {
	var names []string
	for _, e := range t.entries {
		if e.Ranked() && strings.TrimSpace(e.Club) == "" {
			names = append(names, e.Name)
		}
	}
	return names
}

// CheckClubs returns a MissingClubError when any ranked entry lacks a club.
func (t *Table) CheckClubs() error {
	names := t.MissingClubs()
	if len(names) == 0 {
		return nil
	}
	return &MissingClubError{Names: names}
}

// MissingClubError reports ranked entries without a club affiliation. The
// source data has to be fixed; the pipeline never proceeds with partial
// club rankings.
type MissingClubError struct {
	Names []string
}

func (e *MissingClubError) Error() string {
	preview := e.Names
	suffix := ""
	if len(preview) > missingClubPreview {
		suffix = fmt.Sprintf(" … i još %d", len(preview)-missingClubPreview)
		preview = preview[:missingClubPreview]
	}
	return fmt.Sprintf("%d natjecatelja bez kluba: %s%s — dopunite datoteku s nominacijama",
		len(e.Names), strings.Join(preview, ", "), suffix)
}
