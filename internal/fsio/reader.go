// Package fsio is the filesystem side of texsift: decoding documents, writing
// output files atomically, and copying images without overwriting.
package fsio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ppiankov/texsift/internal/cache"
	"github.com/ppiankov/texsift/internal/logger"
	"github.com/ppiankov/texsift/internal/model"
)

const encodingUTF8 = "utf-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader decodes text files: UTF-8 first, then one fallback encoding.
// Decoded documents are cached by path, size and modification time.
type Reader struct {
	cache        cache.Cache // nil disables caching
	fallback     encoding.Encoding
	fallbackName string
}

// NewReader creates a reader. An empty fallback name disables the fallback.
func NewReader(c cache.Cache, fallbackName string) (*Reader, error) {
	r := &Reader{cache: c}
	if strings.TrimSpace(fallbackName) == "" {
		return r, nil
	}

	enc, err := LookupEncoding(fallbackName)
	if err != nil {
		return nil, err
	}
	r.fallback = enc
	r.fallbackName = strings.ToLower(strings.TrimSpace(fallbackName))
	return r, nil
}

// LookupEncoding resolves an encoding name such as "iso-8859-1" or
// "windows-1252"
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// Read loads and decodes a required input file
func (r *Reader) Read(path string) (*model.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", model.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", model.ErrInputNotFound, path)
	}

	key := cache.CacheKey(path, info.Size(), info.ModTime())
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			if doc, ok := unpackDocument(path, cached); ok {
				logger.Debug("cache hit: %s", path)
				return doc, nil
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, enc, err := r.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if enc != encodingUTF8 {
		logger.Warn("%s is not valid UTF-8, decoded as %s", path, enc)
	}

	doc := &model.Document{Path: path, Text: text, Encoding: enc}
	if r.cache != nil {
		_ = r.cache.Set(key, packDocument(doc), 0)
	}
	return doc, nil
}

// Decode converts raw bytes to text and reports the encoding used
func (r *Reader) Decode(data []byte) (string, string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), encodingUTF8, nil
	}
	if r.fallback == nil {
		return "", "", fmt.Errorf("%w: invalid UTF-8 and no fallback encoding", model.ErrDecode)
	}

	decoded, err := r.fallback.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid UTF-8 and %s: %v", model.ErrDecode, r.fallbackName, err)
	}
	return string(decoded), r.fallbackName, nil
}

// packDocument stores the encoding name on the first line of the cached value
func packDocument(doc *model.Document) []byte {
	return []byte(doc.Encoding + "\n" + doc.Text)
}

func unpackDocument(path string, data []byte) (*model.Document, bool) {
	enc, text, ok := strings.Cut(string(data), "\n")
	if !ok {
		return nil, false
	}
	return &model.Document{Path: path, Text: text, Encoding: enc}, true
}
