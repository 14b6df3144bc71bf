package fsio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/texsift/internal/model"
)

func TestCopyIfAbsentCopies(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.png")
	dst := filepath.Join(dir, "b.png")
	require.NoError(t, os.WriteFile(src, []byte("pixels"), 0640))
	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	status, err := CopyIfAbsent(src, dst)
	require.NoError(t, err)
	assert.Equal(t, model.CopyStatusCopied, status)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestCopyIfAbsentNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.png")
	dst := filepath.Join(dir, "b.png")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("existing"), 0644))

	status, err := CopyIfAbsent(src, dst)
	require.NoError(t, err)
	assert.Equal(t, model.CopyStatusSkipped, status)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
}

func TestCopyIfAbsentMissingSource(t *testing.T) {
	dir := t.TempDir()
	status, err := CopyIfAbsent(filepath.Join(dir, "nope.png"), filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	assert.Equal(t, model.CopyStatusMissing, status)

	_, statErr := os.Stat(filepath.Join(dir, "out.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCopyIfAbsentDirectorySource(t *testing.T) {
	dir := t.TempDir()
	status, err := CopyIfAbsent(dir, filepath.Join(dir, "out.png"))
	assert.Error(t, err)
	assert.Equal(t, model.CopyStatusFailed, status)
}

func TestFSDirHelpers(t *testing.T) {
	f, err := New(model.IOConfig{FallbackEncoding: "iso-8859-1", AtomicWrites: true}, nil)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.False(t, f.DirExists(dir))
	require.NoError(t, f.EnsureDir(dir))
	assert.True(t, f.DirExists(dir))

	path := filepath.Join(dir, "x.txt")
	require.NoError(t, f.WriteText(path, "hello"))
	doc, err := f.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", doc.Text)
	assert.False(t, f.DirExists(path))
}
