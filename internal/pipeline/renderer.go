package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/texsift/internal/model"
)

const rule = "═══════════════════════════════════════════════════════════"

// Renderer writes machine-readable reports and prints human summaries
type Renderer struct {
	fs FileSystem
}

// NewRenderer creates a renderer that writes through fs
func NewRenderer(fs FileSystem) *Renderer {
	return &Renderer{fs: fs}
}

// RenderJSON writes report as indented JSON
func (r *Renderer) RenderJSON(report any, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	return r.fs.WriteText(path, string(data)+"\n")
}

// RenderYAML writes report as YAML
func (r *Renderer) RenderYAML(report any, path string) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	return r.fs.WriteText(path, string(data))
}

// RenderFiles writes the JSON and YAML reports whose paths are non-empty
func (r *Renderer) RenderFiles(report any, jsonPath, yamlPath string) error {
	if jsonPath != "" {
		if err := r.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
	}
	if yamlPath != "" {
		if err := r.RenderYAML(report, yamlPath); err != nil {
			return fmt.Errorf("render YAML: %w", err)
		}
	}
	return nil
}

// RenderImagesSummary prints the image comparison and copy outcome
func (r *Renderer) RenderImagesSummary(w io.Writer, report *model.ImagesReport) {
	c := report.Comparison
	header(w, "Image Comparison")
	fmt.Fprintf(w, "Old: %s (%d images)\n", report.OldFile, len(c.Old))
	fmt.Fprintf(w, "New: %s (%d images)\n\n", report.NewFile, len(c.New))

	list(w, "Added", c.Added)
	list(w, "Removed", c.Removed)
	fmt.Fprintf(w, "Common: %d\n", len(c.Common))

	if report.Copy != nil {
		fmt.Fprintln(w)
		renderCopy(w, report.Copy)
	}
	renderNotices(w, report.Notices)
}

// RenderBibliographySummary prints citation statistics and the order preview
func (r *Renderer) RenderBibliographySummary(w io.Writer, report *model.BibliographyReport) {
	header(w, "Bibliography Reconciliation")
	fmt.Fprintf(w, "Citations:        %d (%d unique keys)\n", report.TotalCitations, len(report.UniqueKeys))
	fmt.Fprintf(w, "Bib entries:      %d\n", report.BibEntries)
	fmt.Fprintf(w, "Matched:          %d\n", report.Matched)
	fmt.Fprintf(w, "Coverage:         %.1f%%\n", report.Coverage)
	fmt.Fprintf(w, "Efficiency:       %.1f%%\n\n", report.Efficiency)

	list(w, "Missing (cited, not in bib)", report.Missing)
	list(w, "Unused (in bib, not cited)", report.Unused)
	if len(report.Duplicates) > 0 {
		list(w, "Duplicate keys", report.Duplicates)
	}

	if len(report.Preview) > 0 {
		fmt.Fprintf(w, "Citation order (first %d):\n", len(report.Preview))
		for _, row := range report.Preview {
			mark := "✓"
			if !row.Available {
				mark = "✗"
			}
			fmt.Fprintf(w, "  %3d. %s %s\n", row.Order, mark, row.Key)
		}
		fmt.Fprintln(w)
	}

	if report.Written {
		fmt.Fprintf(w, "✓ Wrote %d entries to %s\n", report.Matched, report.Output)
	}
	renderNotices(w, report.Notices)
}

// RenderFiguresSummary prints the rename plan and its outcome
func (r *Renderer) RenderFiguresSummary(w io.Writer, report *model.FiguresReport) {
	s := report.Summary
	header(w, "Figure Renumbering")
	fmt.Fprintf(w, "Figures:          %d (%d main, %d appendix)\n", s.Environments, s.MainFigures, s.AppendixFigures)
	fmt.Fprintf(w, "Images:           %d (%d main, %d appendix)\n", s.Images, s.MainImages, s.AppendixImages)
	fmt.Fprintf(w, "To rename:        %d\n", s.ToRename)
	fmt.Fprintf(w, "Already correct:  %d\n\n", s.AlreadyCorrect)

	for _, e := range report.Plan {
		if e.NeedsRename {
			fmt.Fprintf(w, "  %-8s %s -> %s\n", e.FigureLabel, e.OriginalPath, e.NewPath)
		} else {
			fmt.Fprintf(w, "  %-8s %s (ok)\n", e.FigureLabel, e.OriginalPath)
		}
	}
	if len(report.Plan) > 0 {
		fmt.Fprintln(w)
	}

	if report.Rewritten {
		fmt.Fprintf(w, "✓ Wrote %s (%d replacements)\n", report.TexOutput, report.Replacements)
	}
	if report.Copy != nil {
		renderCopy(w, report.Copy)
	}
	renderNotices(w, report.Notices)
}

func header(w io.Writer, title string) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

func list(w io.Writer, label string, items []string) {
	fmt.Fprintf(w, "%s: %d\n", label, len(items))
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
	fmt.Fprintln(w)
}

func renderCopy(w io.Writer, c *model.CopyResult) {
	fmt.Fprintf(w, "Copy to %s: %d copied, %d skipped, %d missing, %d failed (of %d)\n",
		c.Destination, len(c.Copied), len(c.Skipped), len(c.Missing), len(c.Failed), c.TotalAttempted)
	for _, name := range c.Missing {
		fmt.Fprintf(w, "  missing: %s\n", name)
	}
	for _, f := range c.Failed {
		fmt.Fprintf(w, "  failed:  %s (%s)\n", f.Name, f.Reason)
	}
}

func renderNotices(w io.Writer, notices []model.Notice) {
	if len(notices) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, n := range notices {
		fmt.Fprintf(w, "[%s] %s\n", strings.ToUpper(string(n.Severity)), n.Description)
	}
}
