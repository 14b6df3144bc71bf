package extract

import (
	"slices"

	"github.com/ppiankov/texsift/internal/model"
)

// ImageReferencesIn returns the distinct image references of a document,
// sorted by filename. A filename that is written explicitly anywhere in the
// document is reported as not inferred.
func ImageReferencesIn(text string, extensions []string) []model.ImageReference {
	byName := make(map[string]model.ImageReference)
	for _, m := range includeTable.FindAll(text) {
		for _, ref := range ImageReferences(m.Payload, extensions) {
			if prev, ok := byName[ref.Filename]; ok && !prev.Inferred {
				continue
			}
			byName[ref.Filename] = ref
		}
	}

	refs := make([]model.ImageReference, 0, len(byName))
	for _, ref := range byName {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, func(a, b model.ImageReference) int {
		switch {
		case a.Filename < b.Filename:
			return -1
		case a.Filename > b.Filename:
			return 1
		}
		return 0
	})
	return refs
}

// ImageFilenames returns the filename set of ImageReferencesIn
func ImageFilenames(text string, extensions []string) []string {
	refs := ImageReferencesIn(text, extensions)
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.Filename
	}
	return names
}
