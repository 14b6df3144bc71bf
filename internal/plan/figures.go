package plan

import (
	"regexp"

	"github.com/ppiankov/texsift/internal/extract"
	"github.com/ppiankov/texsift/internal/model"
)

// prefixPattern matches a basename that already carries a figure prefix
var prefixPattern = regexp.MustCompile(`^fig_s?\d+_(.+)$`)

// FigurePlan is the renumbering outcome for one document
type FigurePlan struct {
	Figures []model.FigureEnvironment
	Entries []model.RenameEntry
	Edits   []Edit
	Summary model.FigureSummary
}

// PlanFigures assigns ordinals and computes the rename plan. Figures must be
// in document order. Figures starting at or after appendixOffset are numbered
// in the appendix sequence; pass a negative offset when the document has no
// appendix.
func PlanFigures(figures []model.FigureEnvironment, appendixOffset int) FigurePlan {
	p := FigurePlan{
		Figures: make([]model.FigureEnvironment, 0, len(figures)),
		Entries: []model.RenameEntry{},
		Edits:   []Edit{},
	}

	var mainCount, appendixCount int
	for _, fig := range figures {
		fig.Appendix = appendixOffset >= 0 && fig.Position >= appendixOffset
		if fig.Appendix {
			appendixCount++
			fig.Ordinal = appendixCount
		} else {
			mainCount++
			fig.Ordinal = mainCount
		}
		p.Figures = append(p.Figures, fig)

		for _, img := range fig.Images {
			newPath := RenamePath(img.Path, fig.FilePrefix())
			entry := model.RenameEntry{
				FigureLabel:  fig.Label(),
				OriginalPath: img.Path,
				NewPath:      newPath,
				NeedsRename:  img.Path != newPath,
				Appendix:     fig.Appendix,
				Position:     img.Position,
			}
			p.Entries = append(p.Entries, entry)

			if entry.NeedsRename {
				p.Edits = append(p.Edits, Edit{
					Offset: img.Position,
					Old:    img.FullCommand,
					New:    img.Prefix + newPath + img.Suffix,
				})
			}
		}
	}

	p.Summary = summarize(p)
	return p
}

// RenamePath applies a figure prefix to the basename of path, replacing an
// existing fig_<n>_ or fig_s<n>_ prefix. The directory part is kept.
func RenamePath(path, prefix string) string {
	dir, base := extract.SplitPath(path)
	if m := prefixPattern.FindStringSubmatch(base); m != nil {
		base = m[1]
	}
	return dir + prefix + base
}

func summarize(p FigurePlan) model.FigureSummary {
	s := model.FigureSummary{Environments: len(p.Figures)}
	for _, fig := range p.Figures {
		if fig.Appendix {
			s.AppendixFigures++
		} else {
			s.MainFigures++
		}
	}
	for _, e := range p.Entries {
		s.Images++
		if e.Appendix {
			s.AppendixImages++
		} else {
			s.MainImages++
		}
		if e.NeedsRename {
			s.ToRename++
		}
	}
	s.AlreadyCorrect = s.Images - s.ToRename
	return s
}
