package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ppiankov/texsift/internal/extract"
	"github.com/ppiankov/texsift/internal/logger"
	"github.com/ppiankov/texsift/internal/model"
	"github.com/ppiankov/texsift/internal/reconcile"
)

// ImagesRequest names the two revisions to compare
type ImagesRequest struct {
	OldFile string
	NewFile string
	DryRun  bool
}

// RunImages diffs the image references of two document revisions and copies
// images that only the new revision references from the source directory to
// the destination directory. The source directory is only required when
// there is something to copy.
func (p *Pipeline) RunImages(ctx context.Context, req ImagesRequest) (*model.ImagesReport, error) {
	cfg := p.config.Images
	exts := extract.NormalizeExtensions(cfg.Extensions)

	// 1. Read both revisions
	oldDoc, err := p.read(ctx, req.OldFile)
	if err != nil {
		return nil, err
	}
	newDoc, err := p.read(ctx, req.NewFile)
	if err != nil {
		return nil, err
	}

	// 2. Extract image references
	logger.Section("Comparing images")
	oldNames := extract.ImageFilenames(oldDoc.Text, exts)
	newRefs := extract.ImageReferencesIn(newDoc.Text, exts)
	newNames := make([]string, len(newRefs))
	inferred := make(map[string]bool)
	for i, ref := range newRefs {
		newNames[i] = ref.Filename
		inferred[ref.Filename] = ref.Inferred
	}
	logger.Info("Found %d images in %s", len(oldNames), req.OldFile)
	logger.Info("Found %d images in %s", len(newNames), req.NewFile)

	// 3. Reconcile
	report := &model.ImagesReport{
		OldFile:     req.OldFile,
		NewFile:     req.NewFile,
		GeneratedAt: p.now(),
		Extensions:  exts,
		Comparison:  reconcile.DiffImages(oldNames, newNames),
		DryRun:      req.DryRun,
	}
	added := report.Comparison.Added

	if len(added) == 0 {
		report.Notices = append(report.Notices, notice(model.SeverityInfo, "no new images to copy"))
		return report, nil
	}
	if req.DryRun {
		report.Notices = append(report.Notices, notice(model.SeverityInfo,
			"dry run: %d new images would be copied from %s to %s", len(added), cfg.SourceDir, cfg.DestDir))
		return report, nil
	}

	// 4. Copy added images
	if !p.fs.DirExists(cfg.SourceDir) {
		return report, fmt.Errorf("source directory: %w: %s", model.ErrInputNotFound, cfg.SourceDir)
	}
	copyResult, err := p.copyImages(ctx, copyUnits(added, inferred), cfg.SourceDir, cfg.DestDir)
	report.Copy = copyResult
	if err != nil {
		report.Notices = append(report.Notices, notice(model.SeverityCritical, "%v", err))
		return report, err
	}
	return report, nil
}

// copyUnit is one referenced image: an explicit filename, or every candidate
// filename inferred from an extensionless reference. Label names the unit
// when none of its candidates exists.
type copyUnit struct {
	label    string
	names    []string
	inferred bool
}

// copyUnits groups inferred candidates by stem; explicit names stay single
func copyUnits(names []string, inferred map[string]bool) []copyUnit {
	var units []copyUnit
	byStem := make(map[string]int)
	for _, name := range names {
		if !inferred[name] {
			units = append(units, copyUnit{label: name, names: []string{name}})
			continue
		}
		stem, _ := extract.SplitExt(name)
		if i, ok := byStem[stem]; ok {
			units[i].names = append(units[i].names, name)
			continue
		}
		byStem[stem] = len(units)
		units = append(units, copyUnit{label: stem, names: []string{name}, inferred: true})
	}
	return units
}

// copyImages copies each unit from sourceDir to destDir. Inferred candidates
// that do not exist are not reported individually; the unit is missing only
// when none of them exists.
func (p *Pipeline) copyImages(ctx context.Context, units []copyUnit, sourceDir, destDir string) (*model.CopyResult, error) {
	logger.Section("Copying new images")
	result := &model.CopyResult{
		Destination: destDir,
		Copied:      []string{},
		Skipped:     []string{},
		Missing:     []string{},
		Failed:      []model.CopyFailure{},
	}

	if err := p.fs.EnsureDir(destDir); err != nil {
		return result, fmt.Errorf("%w: %s: %v", model.ErrWrite, destDir, err)
	}

	for _, unit := range units {
		found := false
		for _, name := range unit.names {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			status, err := p.fs.CopyIfAbsent(filepath.Join(sourceDir, name), filepath.Join(destDir, name))
			if unit.inferred && status == model.CopyStatusMissing {
				continue
			}
			found = true
			result.Record(name, status, err)
			logCopy(name, name, status, err)
		}
		if unit.inferred && !found {
			result.Record(unit.label, model.CopyStatusMissing, nil)
			logger.Warn("Source file not found: %s (tried %s)", filepath.Join(sourceDir, unit.label), strings.Join(unit.names, ", "))
		}
	}

	logger.Info("Copy completed: %d copied, %d skipped, %d missing, %d failed",
		len(result.Copied), len(result.Skipped), len(result.Missing), len(result.Failed))
	return result, nil
}

func logCopy(src, dst string, status model.CopyStatus, err error) {
	switch status {
	case model.CopyStatusCopied:
		if src != dst {
			logger.Info("Renamed and copied: %s -> %s", src, dst)
		} else {
			logger.Info("Copied: %s", dst)
		}
	case model.CopyStatusSkipped:
		logger.Info("Skipped (already exists): %s", dst)
	case model.CopyStatusMissing:
		logger.Warn("Source file not found: %s", src)
	default:
		logger.Warn("Failed to copy %s: %v", src, err)
	}
}
