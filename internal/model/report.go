package model

import "time"

// ImagesReport is the result of diffing image references between two revisions
type ImagesReport struct {
	OldFile     string           `json:"old_file" yaml:"old_file"`
	NewFile     string           `json:"new_file" yaml:"new_file"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Extensions  []string         `json:"extensions" yaml:"extensions"`
	Comparison  ComparisonResult `json:"comparison" yaml:"comparison"`
	Copy        *CopyResult      `json:"copy,omitempty" yaml:"copy,omitempty"` // Nil when nothing was added or on dry run
	DryRun      bool             `json:"dry_run" yaml:"dry_run"`
	Notices     []Notice         `json:"notices,omitempty" yaml:"notices,omitempty"`
}

// BibliographyReport is the result of reconciling citations with a bibliography
type BibliographyReport struct {
	TexFile     string    `json:"tex_file" yaml:"tex_file"`
	BibFile     string    `json:"bib_file" yaml:"bib_file"`
	Output      string    `json:"output" yaml:"output"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	TotalCitations int      `json:"total_citations" yaml:"total_citations"` // Including repeats
	UniqueKeys     []string `json:"unique_keys" yaml:"unique_keys"`         // First-citation order
	BibEntries     int      `json:"bib_entries" yaml:"bib_entries"`
	Matched        int      `json:"matched" yaml:"matched"`
	Missing        []string `json:"missing" yaml:"missing"`       // Citation order
	Unused         []string `json:"unused" yaml:"unused"`         // Alphabetical
	Duplicates     []string `json:"duplicates" yaml:"duplicates"` // Redefined keys in the .bib

	Coverage   float64 `json:"coverage_pct" yaml:"coverage_pct"`     // Matched / unique cited
	Efficiency float64 `json:"efficiency_pct" yaml:"efficiency_pct"` // Matched / bib entries

	Preview []CitationStatus `json:"preview" yaml:"preview"`
	Written bool             `json:"written" yaml:"written"`
	DryRun  bool             `json:"dry_run" yaml:"dry_run"`
	Notices []Notice         `json:"notices,omitempty" yaml:"notices,omitempty"`
}

// FiguresReport is the result of renumbering figure images
type FiguresReport struct {
	TexFile     string    `json:"tex_file" yaml:"tex_file"`
	TexOutput   string    `json:"tex_output" yaml:"tex_output"`
	OutputDir   string    `json:"output_dir" yaml:"output_dir"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	AppendixOffset int                 `json:"appendix_offset" yaml:"appendix_offset"` // -1 when the document has no \appendix
	Figures        []FigureEnvironment `json:"figures" yaml:"figures"`
	Plan           []RenameEntry       `json:"plan" yaml:"plan"`
	Summary        FigureSummary       `json:"summary" yaml:"summary"`

	Replacements int         `json:"replacements" yaml:"replacements"`
	Rewritten    bool        `json:"rewritten" yaml:"rewritten"`
	Copy         *CopyResult `json:"copy,omitempty" yaml:"copy,omitempty"`
	DryRun       bool        `json:"dry_run" yaml:"dry_run"`
	Notices      []Notice    `json:"notices,omitempty" yaml:"notices,omitempty"`
}

// Notice is a non-fatal, per-item diagnostic attached to a report
type Notice struct {
	Severity    NoticeSeverity `json:"severity" yaml:"severity"`
	Description string         `json:"description" yaml:"description"`
}

// NoticeSeverity indicates the importance of the notice
type NoticeSeverity string

const (
	SeverityInfo     NoticeSeverity = "info"
	SeverityWarning  NoticeSeverity = "warning"
	SeverityCritical NoticeSeverity = "critical" // An output artifact was not produced
)
