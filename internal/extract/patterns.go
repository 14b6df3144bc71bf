package extract

import (
	"fmt"
	"regexp"
	"slices"
)

// PatternID names an entry in a pattern table
type PatternID string

// Pattern describes one command to look for.
// Expr must contain exactly one capture group; that group is the payload
// (a path, or a comma-joined list of keys).
type Pattern struct {
	ID              PatternID
	Expr            string
	CaseInsensitive bool
	DotAll          bool // "." also matches newlines
}

// Table is a compiled, ordered set of patterns
type Table struct {
	ids      []PatternID
	patterns []*regexp.Regexp
}

// Compile compiles patterns into a table. Table order is discovery order for
// matches that start at the same offset.
func Compile(patterns ...Pattern) (*Table, error) {
	t := &Table{}
	for _, p := range patterns {
		flags := ""
		if p.CaseInsensitive {
			flags += "i"
		}
		if p.DotAll {
			flags += "s"
		}
		expr := p.Expr
		if flags != "" {
			expr = "(?" + flags + ")" + expr
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %s: %w", p.ID, err)
		}
		if re.NumSubexp() != 1 {
			return nil, fmt.Errorf("pattern %s: want exactly one capture group, got %d", p.ID, re.NumSubexp())
		}

		t.ids = append(t.ids, p.ID)
		t.patterns = append(t.patterns, re)
	}
	return t, nil
}

// MustCompile is Compile for package-level tables
func MustCompile(patterns ...Pattern) *Table {
	t, err := Compile(patterns...)
	if err != nil {
		panic(err)
	}
	return t
}

// IDs returns the pattern ids in table order
func (t *Table) IDs() []PatternID {
	return slices.Clone(t.ids)
}

// citeArgs matches an optional star and any optional [..] arguments between a
// citation command name and its key list.
const citeArgs = `\*?(?:\s*\[[^\]]*\])*\s*\{([^}]+)\}`

// CitationPatterns is the \cite family. Matching is case-insensitive, so
// \Cite, \Citep and \Citet are covered by their lower-case rows.
var CitationPatterns = []Pattern{
	{ID: "cite", Expr: `\\cite` + citeArgs, CaseInsensitive: true},
	{ID: "citep", Expr: `\\citep` + citeArgs, CaseInsensitive: true},
	{ID: "citet", Expr: `\\citet` + citeArgs, CaseInsensitive: true},
	{ID: "citealp", Expr: `\\citealp` + citeArgs, CaseInsensitive: true},
	{ID: "citealt", Expr: `\\citealt` + citeArgs, CaseInsensitive: true},
	{ID: "citeauthor", Expr: `\\citeauthor` + citeArgs, CaseInsensitive: true},
	{ID: "citeyear", Expr: `\\citeyear` + citeArgs, CaseInsensitive: true},
	{ID: "nocite", Expr: `\\nocite` + citeArgs, CaseInsensitive: true},
}

// IncludeGraphicsPattern matches \includegraphics with at most one optional
// argument; used for the revision diff.
var IncludeGraphicsPattern = Pattern{
	ID:   "includegraphics",
	Expr: `\\includegraphics(?:\s*\[[^\]]*\])?\s*\{([^}]+)\}`,
}

// FigureImagePattern matches \includegraphics with any number of optional
// arguments; used inside figure environments.
var FigureImagePattern = Pattern{
	ID:   "figure-image",
	Expr: `\\includegraphics(?:\s*\[[^\]]*\])*\s*\{([^}]+)\}`,
}

// FigureEnvironmentPattern matches a whole figure or figure* block.
// The payload is the body between \begin and \end.
var FigureEnvironmentPattern = Pattern{
	ID:     "figure",
	Expr:   `\\begin\{figure\*?\}(.*?)\\end\{figure\*?\}`,
	DotAll: true,
}

// AppendixPattern matches the \appendix marker. The empty group satisfies the
// one-capture rule.
var AppendixPattern = Pattern{
	ID:   "appendix",
	Expr: `\\appendix\b()`,
}

// BibEntryHeaderPattern matches the start of a bibliography entry up to the
// comma after its key. The payload is the key.
var BibEntryHeaderPattern = Pattern{
	ID:   "bib-entry",
	Expr: `@\w+\s*\{\s*([^,\s}]+)\s*,`,
}

var (
	citationTable     = MustCompile(CitationPatterns...)
	includeTable      = MustCompile(IncludeGraphicsPattern)
	figureTable       = MustCompile(FigureEnvironmentPattern)
	figureImageTable  = MustCompile(FigureImagePattern)
	appendixTable     = MustCompile(AppendixPattern)
	bibEntryTable     = MustCompile(BibEntryHeaderPattern)
	bibEntryTypeRegex = regexp.MustCompile(`^@(\w+)`)
)
