// Package pipeline runs the three texsift workflows as explicit stages:
// read, extract, reconcile or plan, then write. Each run returns a report;
// per-item problems are recorded in the report, and only unreadable primary
// inputs or failed output writes are returned as errors.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ppiankov/texsift/internal/logger"
	"github.com/ppiankov/texsift/internal/model"
)

// FileSystem is the I/O the pipelines depend on
type FileSystem interface {
	ReadText(path string) (*model.Document, error)
	WriteText(path, text string) error
	CopyIfAbsent(src, dst string) (model.CopyStatus, error)
	EnsureDir(dir string) error
	DirExists(dir string) bool
	FileExists(path string) bool
}

// Pipeline orchestrates the texsift workflows
type Pipeline struct {
	fs       FileSystem
	config   *model.Config
	renderer *Renderer
	now      func() time.Time
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, fs FileSystem) *Pipeline {
	return &Pipeline{
		fs:       fs,
		config:   cfg,
		renderer: NewRenderer(fs),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Renderer returns the report renderer bound to the pipeline's filesystem
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

func (p *Pipeline) read(ctx context.Context, path string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := p.fs.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	logger.Debug("Read %s (%d bytes, %s)", path, len(doc.Text), doc.Encoding)
	return doc, nil
}

// write stores an output artifact; the error always wraps model.ErrWrite
func (p *Pipeline) write(path, text string) error {
	if err := p.fs.WriteText(path, text); err != nil {
		if errors.Is(err, model.ErrWrite) {
			return err
		}
		return fmt.Errorf("%w: %s: %v", model.ErrWrite, path, err)
	}
	return nil
}

func notice(severity model.NoticeSeverity, format string, args ...any) model.Notice {
	return model.Notice{Severity: severity, Description: fmt.Sprintf(format, args...)}
}

// sameFile reports whether two paths name the same file after cleaning
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
