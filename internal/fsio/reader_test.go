package fsio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/texsift/internal/cache"
	"github.com/ppiankov/texsift/internal/model"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestReadUTF8(t *testing.T) {
	path := writeTemp(t, "doc.tex", []byte("Müller \\cite{a}"))
	r, err := NewReader(nil, "iso-8859-1")
	require.NoError(t, err)

	doc, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Müller \\cite{a}", doc.Text)
	assert.Equal(t, "utf-8", doc.Encoding)
	assert.Equal(t, path, doc.Path)
}

func TestReadStripsBOM(t *testing.T) {
	path := writeTemp(t, "doc.tex", append([]byte{0xEF, 0xBB, 0xBF}, "text"...))
	r, err := NewReader(nil, "")
	require.NoError(t, err)

	doc, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "text", doc.Text)
}

func TestReadLatin1Fallback(t *testing.T) {
	// "Müller" in ISO-8859-1
	path := writeTemp(t, "refs.bib", []byte{'M', 0xFC, 'l', 'l', 'e', 'r'})
	r, err := NewReader(nil, "latin-1")
	require.NoError(t, err)

	doc, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Müller", doc.Text)
	assert.Equal(t, "latin-1", doc.Encoding)
}

func TestReadWithoutFallbackFails(t *testing.T) {
	path := writeTemp(t, "refs.bib", []byte{'M', 0xFC})
	r, err := NewReader(nil, "")
	require.NoError(t, err)

	_, err = r.Read(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDecode)
}

func TestReadMissingFile(t *testing.T) {
	r, err := NewReader(nil, "")
	require.NoError(t, err)

	_, err = r.Read(filepath.Join(t.TempDir(), "absent.tex"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInputNotFound)
	assert.Contains(t, err.Error(), "absent.tex")
}

func TestReadDirectoryIsNotFound(t *testing.T) {
	r, err := NewReader(nil, "")
	require.NoError(t, err)

	_, err = r.Read(t.TempDir())
	assert.ErrorIs(t, err, model.ErrInputNotFound)
}

func TestReadUsesCache(t *testing.T) {
	path := writeTemp(t, "doc.tex", []byte("first"))
	mc := cache.NewMemoryCache(time.Minute, time.Minute)
	r, err := NewReader(mc, "iso-8859-1")
	require.NoError(t, err)

	doc, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "first", doc.Text)
	assert.Equal(t, 1, mc.Len())

	again, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Text, again.Text)
	assert.Equal(t, doc.Encoding, again.Encoding)

	// a changed file gets a new key
	require.NoError(t, os.WriteFile(path, []byte("second version"), 0644))
	changed, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "second version", changed.Text)
}

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"iso-8859-1", "ISO-8859-1", "latin1", "windows-1252", "cp1252"} {
		enc, err := LookupEncoding(name)
		require.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}

	_, err := LookupEncoding("no-such-encoding")
	assert.Error(t, err)
}

func TestNewReaderRejectsUnknownFallback(t *testing.T) {
	_, err := NewReader(nil, "no-such-encoding")
	assert.Error(t, err)
}
