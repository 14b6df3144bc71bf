package extract

import (
	"strings"

	"github.com/ppiankov/texsift/internal/model"
)

// SplitKeys splits a citation payload on commas, trimming whitespace and
// dropping empty tokens. Repeats are kept.
func SplitKeys(payload string) []string {
	var keys []string
	for _, part := range strings.Split(payload, ",") {
		key := strings.TrimSpace(part)
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// SplitPath splits a LaTeX path at its last "/". dir keeps the trailing slash
// so dir+base reproduces the input.
func SplitPath(p string) (dir, base string) {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[:i+1], p[i+1:]
	}
	return "", p
}

// SplitExt splits a basename into stem and extension. Leading dots belong to
// the stem, so ".hidden" has no extension.
func SplitExt(base string) (stem, ext string) {
	lead := len(base) - len(strings.TrimLeft(base, "."))
	i := strings.LastIndex(base[lead:], ".")
	if i < 0 {
		return base, ""
	}
	i += lead
	return base[:i], base[i:]
}

// ImageReferences normalizes an \includegraphics payload to basename
// references. A path without an extension fans out to one reference per
// candidate extension so a later existence check can find the real file.
func ImageReferences(rawPath string, extensions []string) []model.ImageReference {
	_, base := SplitPath(strings.TrimSpace(rawPath))
	if base == "" {
		return nil
	}

	stem, ext := SplitExt(base)
	if ext != "" {
		return []model.ImageReference{{Filename: base}}
	}

	refs := make([]model.ImageReference, 0, len(extensions))
	for _, candidate := range extensions {
		refs = append(refs, model.ImageReference{
			Filename: stem + normalizeExtension(candidate),
			Inferred: true,
		})
	}
	return refs
}

// NormalizeExtensions lowercases and dot-prefixes a configured extension list,
// dropping blanks and repeats.
func NormalizeExtensions(extensions []string) []string {
	seen := make(map[string]bool, len(extensions))
	var out []string
	for _, ext := range extensions {
		ext = normalizeExtension(ext)
		if ext == "" || ext == "." || seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// LooksLikeImage reports whether an \includegraphics payload names an image:
// it ends with a known extension or mentions one of the keywords.
func LooksLikeImage(p string, extensions, keywords []string) bool {
	lower := strings.ToLower(p)
	for _, ext := range extensions {
		if ext = normalizeExtension(ext); ext != "" && strings.HasSuffix(lower, ext) {
			return true
		}
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
