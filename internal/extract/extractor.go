// Package extract locates LaTeX command invocations by pattern and turns them
// into offset-tagged items: citation keys, image references, figure
// environments and bibliography entries.
package extract

import "slices"

// Match is a single pattern hit. Offsets are byte offsets into the scanned
// text and are never recomputed by searching the text again.
type Match struct {
	Pattern      PatternID
	Start        int // Start of the whole match
	End          int
	PayloadStart int
	PayloadEnd   int
	Text         string // Whole match
	Payload      string // Capture group, untrimmed
}

// Offset is the position used for document ordering
func (m Match) Offset() int {
	return m.Start
}

// FindAll scans the whole text with every pattern in the table and returns
// all matches ordered by offset. Matches from different patterns may overlap;
// all of them are kept. Ties keep table order.
func (t *Table) FindAll(text string) []Match {
	var matches []Match
	for i, re := range t.patterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			matches = append(matches, t.match(i, text, loc))
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return a.Start - b.Start
	})
	return matches
}

// FindFirst returns the earliest match of any pattern in the table. Each
// pattern stops at its first hit, so the cost is bounded by the distance to
// that hit rather than the length of the text. Ties keep table order.
func (t *Table) FindFirst(text string) (Match, bool) {
	var (
		best  Match
		found bool
	)
	for i, re := range t.patterns {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil || (found && loc[0] >= best.Start) {
			continue
		}
		best, found = t.match(i, text, loc), true
	}
	return best, found
}

func (t *Table) match(i int, text string, loc []int) Match {
	m := Match{
		Pattern: t.ids[i],
		Start:   loc[0],
		End:     loc[1],
		Text:    text[loc[0]:loc[1]],
	}
	if loc[2] >= 0 {
		m.PayloadStart, m.PayloadEnd = loc[2], loc[3]
		m.Payload = text[loc[2]:loc[3]]
	} else {
		m.PayloadStart, m.PayloadEnd = loc[1], loc[1]
	}
	return m
}
