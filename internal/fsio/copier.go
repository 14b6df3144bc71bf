package fsio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ppiankov/texsift/internal/model"
)

// CopyIfAbsent copies src to dst unless dst already exists. An existing
// destination is never touched and reports CopyStatusSkipped. A missing
// source reports CopyStatusMissing. Contents, permission bits and
// modification time are copied.
func CopyIfAbsent(src, dst string) (model.CopyStatus, error) {
	if _, err := os.Lstat(dst); err == nil {
		return model.CopyStatusSkipped, nil
	}

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.CopyStatusMissing, nil
		}
		return model.CopyStatusFailed, err
	}
	if info.IsDir() {
		return model.CopyStatusFailed, fmt.Errorf("%s is a directory", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return model.CopyStatusFailed, err
	}
	defer in.Close()

	// O_EXCL: never overwrite a file that appeared after the check above
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return model.CopyStatusSkipped, nil
		}
		return model.CopyStatusFailed, err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return model.CopyStatusFailed, err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return model.CopyStatusFailed, err
	}

	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return model.CopyStatusCopied, nil
}
