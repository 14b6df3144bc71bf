// Package plan turns ordered extraction results into output: the
// citation-ordered bibliography, the figure rename plan, and the rewritten
// document text.
package plan

import (
	"fmt"
	"strings"

	"github.com/ppiankov/texsift/internal/model"
)

// OrderBibliography projects the bibliography through the cited keys in
// citation order. Cited keys with no entry are skipped.
func OrderBibliography(citedKeys []string, bib model.Bibliography) []model.BibEntry {
	index := bib.Index()
	ordered := make([]model.BibEntry, 0, len(citedKeys))
	for _, key := range citedKeys {
		if entry, ok := index[key]; ok {
			ordered = append(ordered, entry)
		}
	}
	return ordered
}

// FormatBibliography renders ordered entries as a .bib file: a comment header,
// then each entry verbatim, blank-line separated and newline terminated.
func FormatBibliography(entries []model.BibEntry, texFile, bibFile string) string {
	var b strings.Builder

	b.WriteString("% Ordered Bibliography File\n")
	fmt.Fprintf(&b, "%% Generated from: %s and %s\n", texFile, bibFile)
	fmt.Fprintf(&b, "%% Total entries: %d\n", len(entries))
	b.WriteString("% Ordered by citation appearance in LaTeX document\n\n")

	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(entry.RawText)
		if !strings.HasSuffix(entry.RawText, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Preview lists the first limit cited keys with their availability.
// A limit <= 0 lists every key.
func Preview(citedKeys []string, bib model.Bibliography, limit int) []model.CitationStatus {
	index := bib.Index()
	if limit <= 0 || limit > len(citedKeys) {
		limit = len(citedKeys)
	}

	rows := make([]model.CitationStatus, 0, limit)
	for i, key := range citedKeys[:limit] {
		_, ok := index[key]
		rows = append(rows, model.CitationStatus{Order: i + 1, Key: key, Available: ok})
	}
	return rows
}

// Percent returns part/whole as a percentage, or 0 when whole is 0
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
