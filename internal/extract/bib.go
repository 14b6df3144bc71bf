package extract

import (
	"strings"

	"github.com/ppiankov/texsift/internal/model"
)

// ParseBibliography splits .bib text into keyed entries, preserving each
// entry's text verbatim (trailing whitespace trimmed).
//
// An entry starts at an "@type{key," header and ends just before the first
// line break that is followed by a blank line, by a line starting with "@",
// or by the end of the text. When a key is defined more than once the first
// definition is kept and the key is listed in Duplicates.
func ParseBibliography(text string) model.Bibliography {
	bib := model.Bibliography{
		Entries:    []model.BibEntry{},
		Duplicates: []string{},
	}
	seen := make(map[string]bool)

	for cursor := 0; cursor < len(text); {
		header, ok := bibEntryTable.FindFirst(text[cursor:])
		if !ok {
			break
		}
		start := cursor + header.Start
		end := entryEnd(text, cursor+header.End)
		cursor = end

		key := strings.TrimSpace(header.Payload)
		if key == "" {
			continue
		}
		if seen[key] {
			bib.Duplicates = append(bib.Duplicates, key)
			continue
		}
		seen[key] = true

		raw := strings.TrimRightFunc(text[start:end], isSpace)
		entryType := ""
		if m := bibEntryTypeRegex.FindStringSubmatch(raw); m != nil {
			entryType = strings.ToLower(m[1])
		}
		bib.Entries = append(bib.Entries, model.BibEntry{
			Key:      key,
			Type:     entryType,
			RawText:  raw,
			Position: start,
		})
	}
	return bib
}

// entryEnd returns the offset of the line break that closes an entry whose
// body starts at from.
func entryEnd(text string, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		j := i + 1
		for j < len(text) && isInlineSpace(text[j]) {
			j++
		}
		if j == len(text) || text[j] == '\n' || text[j] == '@' {
			return i
		}
	}
	return len(text)
}

func isInlineSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}
