package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ppiankov/texsift/internal/extract"
	"github.com/ppiankov/texsift/internal/logger"
	"github.com/ppiankov/texsift/internal/model"
	"github.com/ppiankov/texsift/internal/plan"
)

// FiguresRequest names the document to renumber. Empty fields fall back to
// the configured output directory, <stem><suffix>.tex next to the document,
// and the document's directory as the base for image paths.
type FiguresRequest struct {
	TexFile   string
	TexOutput string
	OutputDir string
	BaseDir   string
	DryRun    bool
}

// DefaultTexOutput returns the rewritten document path for texFile
func DefaultTexOutput(texFile, suffix string) string {
	ext := filepath.Ext(texFile)
	return strings.TrimSuffix(texFile, ext) + suffix + ".tex"
}

// RunFigures renumbers the images of every figure environment by document
// order, writes the rewritten document and copies the images under their
// new names. A failed document write does not stop the copy stage.
func (p *Pipeline) RunFigures(ctx context.Context, req FiguresRequest) (*model.FiguresReport, error) {
	cfg := p.config.Figures
	req = p.withFigureDefaults(req)
	exts := extract.NormalizeExtensions(p.config.Images.Extensions)

	// 1. Read the document
	doc, err := p.read(ctx, req.TexFile)
	if err != nil {
		return nil, err
	}

	// 2. Locate figures and the appendix marker
	logger.Section("Analyzing figures")
	appendixOffset, ok := extract.AppendixOffset(doc.Text)
	if ok {
		logger.Info("Found \\appendix at offset %d", appendixOffset)
	} else {
		logger.Info("No \\appendix found, all figures are main figures")
	}
	figures := extract.Figures(doc.Text, exts, cfg.ImageKeywords)

	// 3. Plan renames
	figurePlan := plan.PlanFigures(figures, appendixOffset)
	logger.Info("Found %d figures (%d main, %d appendix) with %d images, %d to rename",
		figurePlan.Summary.Environments, figurePlan.Summary.MainFigures, figurePlan.Summary.AppendixFigures,
		figurePlan.Summary.Images, figurePlan.Summary.ToRename)

	// 4. Rewrite the document text
	rewrite := plan.Apply(doc.Text, figurePlan.Edits)

	report := &model.FiguresReport{
		TexFile:        req.TexFile,
		TexOutput:      req.TexOutput,
		OutputDir:      req.OutputDir,
		GeneratedAt:    p.now(),
		AppendixOffset: appendixOffset,
		Figures:        figurePlan.Figures,
		Plan:           figurePlan.Entries,
		Summary:        figurePlan.Summary,
		Replacements:   rewrite.Applied,
		DryRun:         req.DryRun,
	}
	for _, w := range rewrite.Warnings {
		report.Notices = append(report.Notices, notice(model.SeverityWarning, "%s", w))
		logger.Warn("%s", w)
	}

	var writeErr error
	switch {
	case rewrite.Applied == 0:
		report.Notices = append(report.Notices, notice(model.SeverityInfo,
			"no replacements needed; %s not written", req.TexOutput))
	case req.DryRun:
		report.Notices = append(report.Notices, notice(model.SeverityInfo,
			"dry run: %d replacements would be written to %s", rewrite.Applied, req.TexOutput))
	case sameFile(req.TexOutput, req.TexFile):
		writeErr = fmt.Errorf("%w: refusing to overwrite input %s", model.ErrWrite, req.TexFile)
		report.Notices = append(report.Notices, notice(model.SeverityCritical, "%v", writeErr))
	default:
		if err := p.write(req.TexOutput, rewrite.Text); err != nil {
			writeErr = err
			report.Notices = append(report.Notices, notice(model.SeverityCritical, "%v", err))
		} else {
			report.Rewritten = true
			logger.Info("Wrote %s with %d replacements", req.TexOutput, rewrite.Applied)
		}
	}

	// 5. Copy images under their new names
	switch {
	case len(figurePlan.Entries) == 0:
	case req.DryRun:
		report.Notices = append(report.Notices, notice(model.SeverityInfo,
			"dry run: %d images would be copied to %s", len(figurePlan.Entries), req.OutputDir))
	default:
		copyResult, err := p.copyFigures(ctx, figurePlan.Entries, req.BaseDir, req.OutputDir, exts)
		report.Copy = copyResult
		if err != nil {
			report.Notices = append(report.Notices, notice(model.SeverityCritical, "%v", err))
			if writeErr == nil {
				writeErr = err
			}
		}
	}

	return report, writeErr
}

func (p *Pipeline) withFigureDefaults(req FiguresRequest) FiguresRequest {
	if req.OutputDir == "" {
		req.OutputDir = p.config.Figures.OutputDir
	}
	if req.TexOutput == "" {
		req.TexOutput = DefaultTexOutput(req.TexFile, p.config.Figures.TexSuffix)
	}
	if req.BaseDir == "" {
		req.BaseDir = filepath.Dir(req.TexFile)
	}
	return req
}

// copyFigures copies each planned image from baseDir to outputDir under its
// new basename. Paths written without an extension are resolved against the
// candidate extensions in order.
func (p *Pipeline) copyFigures(ctx context.Context, entries []model.RenameEntry, baseDir, outputDir string, exts []string) (*model.CopyResult, error) {
	logger.Section("Copying renamed images")
	result := &model.CopyResult{
		Destination: outputDir,
		Copied:      []string{},
		Skipped:     []string{},
		Missing:     []string{},
		Failed:      []model.CopyFailure{},
	}

	if err := p.fs.EnsureDir(outputDir); err != nil {
		return result, fmt.Errorf("%w: %s: %v", model.ErrWrite, outputDir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		src := filepath.Join(baseDir, filepath.FromSlash(entry.OriginalPath))
		_, newBase := extract.SplitPath(entry.NewPath)
		if _, ext := extract.SplitExt(newBase); ext == "" {
			if found := p.resolveExtension(src, exts); found != "" {
				src += found
				newBase += found
			}
		}

		dst := filepath.Join(outputDir, newBase)
		status, err := p.fs.CopyIfAbsent(src, dst)
		result.Record(entry.OriginalPath, status, err)
		logCopy(filepath.Base(src), newBase, status, err)
	}

	logger.Info("Copy completed: %d copied, %d skipped, %d missing, %d failed",
		len(result.Copied), len(result.Skipped), len(result.Missing), len(result.Failed))
	return result, nil
}

// resolveExtension returns the first candidate extension for which
// path+ext exists
func (p *Pipeline) resolveExtension(path string, exts []string) string {
	for _, ext := range exts {
		if p.fs.FileExists(path + ext) {
			return ext
		}
	}
	return ""
}
