package fsio

import (
	"os"

	"github.com/ppiankov/texsift/internal/cache"
	"github.com/ppiankov/texsift/internal/model"
)

// FS bundles the reader, writer and copier behind one value
type FS struct {
	reader *Reader
	atomic bool
}

// New creates an FS from I/O settings. c may be nil to disable caching.
func New(cfg model.IOConfig, c cache.Cache) (*FS, error) {
	reader, err := NewReader(c, cfg.FallbackEncoding)
	if err != nil {
		return nil, err
	}
	return &FS{reader: reader, atomic: cfg.AtomicWrites}, nil
}

// ReadText loads and decodes a required input
func (f *FS) ReadText(path string) (*model.Document, error) {
	return f.reader.Read(path)
}

// WriteText writes an output artifact
func (f *FS) WriteText(path, text string) error {
	return WriteFile(path, []byte(text), f.atomic)
}

// CopyIfAbsent copies src to dst unless dst exists
func (f *FS) CopyIfAbsent(src, dst string) (model.CopyStatus, error) {
	return CopyIfAbsent(src, dst)
}

// EnsureDir creates dir and its parents
func (f *FS) EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// DirExists reports whether dir exists and is a directory
func (f *FS) DirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// FileExists reports whether path exists and is not a directory
func (f *FS) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
