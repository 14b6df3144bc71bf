package pipeline

import (
	"context"
	"fmt"

	"github.com/ppiankov/texsift/internal/extract"
	"github.com/ppiankov/texsift/internal/logger"
	"github.com/ppiankov/texsift/internal/model"
	"github.com/ppiankov/texsift/internal/plan"
	"github.com/ppiankov/texsift/internal/reconcile"
)

// BibliographyRequest names a document and its bibliography.
// An empty Output uses the configured output path.
type BibliographyRequest struct {
	TexFile string
	BibFile string
	Output  string
	DryRun  bool
}

// RunBibliography reconciles the citations of a document with a .bib file
// and writes the cited entries in order of first citation
func (p *Pipeline) RunBibliography(ctx context.Context, req BibliographyRequest) (*model.BibliographyReport, error) {
	cfg := p.config.Bibliography
	output := req.Output
	if output == "" {
		output = cfg.Output
	}

	// 1. Read inputs
	texDoc, err := p.read(ctx, req.TexFile)
	if err != nil {
		return nil, err
	}
	bibDoc, err := p.read(ctx, req.BibFile)
	if err != nil {
		return nil, err
	}

	// 2. Extract citations and entries
	logger.Section("Extracting citations")
	citations := extract.Citations(texDoc.Text)
	cited := extract.UniqueOrdered(citations)
	logger.Info("Found %d citations, %d unique keys", len(citations), len(cited))

	bib := extract.ParseBibliography(bibDoc.Text)
	logger.Info("Found %d bibliography entries", len(bib.Entries))

	// 3. Reconcile and order
	missing, unused := reconcile.Citations(cited, bib.Keys())
	ordered := plan.OrderBibliography(cited, bib)

	report := &model.BibliographyReport{
		TexFile:        req.TexFile,
		BibFile:        req.BibFile,
		Output:         output,
		GeneratedAt:    p.now(),
		TotalCitations: len(citations),
		UniqueKeys:     cited,
		BibEntries:     len(bib.Entries),
		Matched:        len(ordered),
		Missing:        missing,
		Unused:         unused,
		Duplicates:     append([]string{}, bib.Duplicates...),
		Coverage:       plan.Percent(len(ordered), len(cited)),
		Efficiency:     plan.Percent(len(ordered), len(bib.Entries)),
		Preview:        plan.Preview(cited, bib, cfg.PreviewLimit),
		DryRun:         req.DryRun,
	}

	for _, key := range bib.Duplicates {
		report.Notices = append(report.Notices, notice(model.SeverityWarning,
			"duplicate bibliography key %q: first definition kept", key))
	}
	if len(missing) > 0 {
		report.Notices = append(report.Notices, notice(model.SeverityWarning,
			"%d cited keys have no bibliography entry", len(missing)))
	}

	// 4. Write the ordered bibliography
	switch {
	case len(ordered) == 0:
		report.Notices = append(report.Notices, notice(model.SeverityWarning,
			"no cited entries found in %s; %s not written", req.BibFile, output))
		logger.Warn("No cited entries available, %s not written", output)
	case req.DryRun:
		report.Notices = append(report.Notices, notice(model.SeverityInfo,
			"dry run: %d entries would be written to %s", len(ordered), output))
	case sameFile(output, req.BibFile) || sameFile(output, req.TexFile):
		err := fmt.Errorf("%w: refusing to overwrite input %s", model.ErrWrite, output)
		report.Notices = append(report.Notices, notice(model.SeverityCritical, "%v", err))
		return report, err
	default:
		text := plan.FormatBibliography(ordered, req.TexFile, req.BibFile)
		if err := p.write(output, text); err != nil {
			report.Notices = append(report.Notices, notice(model.SeverityCritical, "%v", err))
			return report, err
		}
		report.Written = true
		logger.Info("Wrote %d ordered entries to %s", len(ordered), output)
	}

	return report, nil
}
