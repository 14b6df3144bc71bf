package fsio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/texsift/internal/model"
)

// WriteFile writes data to path, creating parent directories. With atomic
// set the data goes to a temporary file in the same directory that is synced
// and renamed over path, so a failed write leaves any previous file intact.
// Errors wrap model.ErrWrite.
func WriteFile(path string, data []byte, atomic bool) error {
	if err := writeFile(path, data, atomic); err != nil {
		return writeError(path, err)
	}
	return nil
}

func writeFile(path string, data []byte, atomic bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if !atomic {
		return os.WriteFile(path, data, 0644)
	}

	tmp, err := os.CreateTemp(dir, ".texsift-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, 0644)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	// best effort: persist the rename
	_ = syncDir(dir)
	return nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

func writeError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", model.ErrWrite, path, err)
}
