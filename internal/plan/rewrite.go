package plan

import (
	"fmt"
	"slices"
	"strings"
)

// Edit replaces Old, which was found at Offset in the original text, with New
type Edit struct {
	Offset int
	Old    string
	New    string
}

func (e Edit) end() int {
	return e.Offset + len(e.Old)
}

// RewriteResult is the outcome of Apply
type RewriteResult struct {
	Text     string
	Applied  int
	Warnings []string
}

// Apply performs all edits against the original text in one left-to-right
// pass. Edits are located by their recorded offsets, never by searching, so
// byte-identical commands at different places are rewritten independently.
// An edit whose span no longer holds Old, or that overlaps an earlier edit, is
// skipped with a warning; the remaining edits still apply.
func Apply(text string, edits []Edit) RewriteResult {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		return a.Offset - b.Offset
	})

	var (
		b      strings.Builder
		result RewriteResult
		cursor int
	)
	b.Grow(len(text))

	for _, e := range sorted {
		if e.Offset < 0 || e.end() > len(text) || text[e.Offset:e.end()] != e.Old {
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not find command to replace at offset %d: %s", e.Offset, e.Old))
			continue
		}
		if e.Offset < cursor {
			result.Warnings = append(result.Warnings, fmt.Sprintf("overlapping replacement at offset %d skipped: %s", e.Offset, e.Old))
			continue
		}
		b.WriteString(text[cursor:e.Offset])
		b.WriteString(e.New)
		cursor = e.end()
		result.Applied++
	}
	b.WriteString(text[cursor:])

	result.Text = b.String()
	return result
}
