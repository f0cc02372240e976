// Package division normalizes free-text division labels into a fixed set of
// age division types.
//
// Label text is inconsistent across data sources (roman numerals, digits,
// localized terms), so matching runs most-specific-first: "Master IV" must
// be recognized before "Master I", "Sub-Junior" before "Junior".
package division

import "strings"

// Type is a normalized age division.
type Type int

const (
	SubJunior Type = iota + 1
	Junior
	Open
	MasterI
	MasterII
	MasterIII
	MasterIV
)

// String returns the canonical English division name.
func (t Type) String() string {
	switch t {
	case SubJunior:
		return "Sub-Junior"
	case Junior:
		return "Junior"
	case Open:
		return "Open"
	case MasterI:
		return "Master I"
	case MasterII:
		return "Master II"
	case MasterIII:
		return "Master III"
	case MasterIV:
		return "Master IV"
	default:
		return "Unknown"
	}
}

// Order returns the display rank of the division. Unrecognized values sort
// after every known division.
func (t Type) Order() int {
	if t >= SubJunior && t <= MasterIV {
		return int(t)
	}
	return 999
}

// Types lists all divisions in display order.
func Types() []Type {
	return []Type{SubJunior, Junior, Open, MasterI, MasterII, MasterIII, MasterIV}
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithStripSuffixes sets venue-specific suffixes (e.g. "-EQ", "-OSI") that
// are removed from labels before matching.
func WithStripSuffixes(suffixes ...string) Option {
	return func(c *Classifier) {
		c.stripSuffixes = append([]string(nil), suffixes...)
	}
}

// Classifier maps raw division labels to Types.
type Classifier struct {
	stripSuffixes []string
}

// New creates a Classifier with the given options.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		stripSuffixes: []string{"-EQ", "-OSI"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps a raw label to a Type. It is total: every input, including
// the empty string, maps to exactly one division. Unrecognized text
// defaults to Open.
func (c *Classifier) Classify(label string) Type {
	t, _ := c.classify(label)
	return t
}

// Recognized reports whether the label actually matched a known pattern.
// Unrecognized labels still classify as Open, but operators want to hear
// about them: they usually signal dirty source data.
func (c *Classifier) Recognized(label string) bool {
	_, ok := c.classify(label)
	return ok
}

func (c *Classifier) classify(label string) (Type, bool) {
	l := strings.ToLower(strings.TrimSpace(c.clean(label)))

	switch {
	case strings.Contains(l, "master iv"), strings.Contains(l, "masters 4"), l == "master 4":
		return MasterIV, true
	case strings.Contains(l, "master iii"), strings.Contains(l, "masters 3"), l == "master 3":
		return MasterIII, true
	case strings.Contains(l, "master ii"), strings.Contains(l, "masters 2"), l == "master 2":
		return MasterII, true
	case strings.Contains(l, "master i"), strings.Contains(l, "masters 1"), l == "master 1":
		return MasterI, true
	case strings.Contains(l, "sub-junior"), l == "kadet":
		return SubJunior, true
	case strings.Contains(l, "junior"):
		return Junior, true
	case strings.Contains(l, "open"), strings.Contains(l, "guest"):
		return Open, true
	default:
		return Open, false
	}
}

// IsEquipped reports whether the label marks an equipped (EQ) division.
func (c *Classifier) IsEquipped(label string) bool {
	return hasTag(label, "EQ")
}

// IsParalympic reports whether the label marks an OSI (paralympic)
// division. OSI competitors appear in listings but not in rankings.
func (c *Classifier) IsParalympic(label string) bool {
	return hasTag(label, "OSI")
}

// IsGuest reports whether the label marks a guest lifter. Guests classify
// as Open for display but are excluded from club rankings and top lists.
func (c *Classifier) IsGuest(label string) bool {
	return strings.Contains(strings.ToLower(label), "guest")
}

// clean removes configured venue suffixes from the label.
func (c *Classifier) clean(label string) string {
	for _, s := range c.stripSuffixes {
		label = strings.ReplaceAll(label, s, "")
		label = strings.ReplaceAll(label, " "+strings.TrimPrefix(s, "-"), "")
	}
	return label
}

// hasTag matches "-TAG" anywhere or "TAG" as a dash-separated token.
func hasTag(label, tag string) bool {
	if strings.Contains(label, "-"+tag) {
		return true
	}
	for _, part := range strings.Split(strings.ToUpper(label), "-") {
		if strings.TrimSpace(part) == tag {
			return true
		}
	}
	return false
}
