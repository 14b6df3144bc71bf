package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/texsift/internal/extract"
	"github.com/ppiankov/texsift/internal/model"
)

const bibText = `@article{a,
  title = {Alpha}
}

@article{b,
  title = {Beta}
}

@book{c,
  title = {Gamma}
}
`

func TestOrderBibliography_CitationOrder(t *testing.T) {
	bib := extract.ParseBibliography(bibText)
	ordered := OrderBibliography([]string{"c", "missing", "a"}, bib)

	require.Len(t, ordered, 2)
	assert.Equal(t, "c", ordered[0].Key)
	assert.Equal(t, "a", ordered[1].Key)
	assert.Equal(t, "@book{c,\n  title = {Gamma}\n}", ordered[0].RawText)
}

func TestFormatBibliography(t *testing.T) {
	entries := []model.BibEntry{
		{Key: "x", RawText: "@misc{x,\n note={1}\n}"},
		{Key: "y", RawText: "@misc{y,\n note={2}\n}\n"},
	}

	out := FormatBibliography(entries, "paper.tex", "refs.bib")
	want := "% Ordered Bibliography File\n" +
		"% Generated from: paper.tex and refs.bib\n" +
		"% Total entries: 2\n" +
		"% Ordered by citation appearance in LaTeX document\n\n" +
		"@misc{x,\n note={1}\n}\n" +
		"\n" +
		"@misc{y,\n note={2}\n}\n"
	assert.Equal(t, want, out)
}

func TestFormatBibliography_RoundTrip(t *testing.T) {
	bib := extract.ParseBibliography(bibText)
	ordered := OrderBibliography([]string{"b", "c", "a"}, bib)

	reparsed := extract.ParseBibliography(FormatBibliography(ordered, "d.tex", "r.bib"))
	require.Len(t, reparsed.Entries, 3)
	assert.Equal(t, []string{"b", "c", "a"}, reparsed.Keys())

	original := bib.Index()
	for _, e := range reparsed.Entries {
		assert.Equal(t, original[e.Key].RawText, e.RawText)
	}
}

func TestPreview(t *testing.T) {
	bib := extract.ParseBibliography(bibText)
	rows := Preview([]string{"a", "zz", "b"}, bib, 2)

	assert.Equal(t, []model.CitationStatus{
		{Order: 1, Key: "a", Available: true},
		{Order: 2, Key: "zz", Available: false},
	}, rows)

	assert.Len(t, Preview([]string{"a", "b"}, bib, 0), 2)
	assert.Len(t, Preview([]string{"a", "b"}, bib, 10), 2)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(3, 0))
	assert.InDelta(t, 50.0, Percent(1, 2), 1e-9)
	assert.InDelta(t, 66.666, Percent(2, 3), 0.01)
}
