// Package reconcile computes set differences between extracted references:
// image filenames across two revisions, and cited keys against a
// bibliography.
package reconcile

import (
	"slices"

	"github.com/ppiankov/texsift/internal/model"
)

// DiffImages compares the image filename sets of two revisions.
// Inputs may repeat names; every output set is sorted.
func DiffImages(oldNames, newNames []string) model.ComparisonResult {
	oldSet := toSet(oldNames)
	newSet := toSet(newNames)

	return model.ComparisonResult{
		Old:     sortedKeys(oldSet),
		New:     sortedKeys(newSet),
		Added:   difference(newSet, oldSet),
		Removed: difference(oldSet, newSet),
		Common:  intersection(oldSet, newSet),
	}
}

// Citations compares unique cited keys (in citation order) with the keys of a
// bibliography. missing keeps citation order so the first key to fix comes
// first; unused is alphabetical.
func Citations(citedKeys, bibKeys []string) (missing, unused []string) {
	bibSet := toSet(bibKeys)
	citedSet := toSet(citedKeys)

	missing = []string{}
	seen := make(map[string]bool, len(citedKeys))
	for _, key := range citedKeys {
		if bibSet[key] || seen[key] {
			continue
		}
		seen[key] = true
		missing = append(missing, key)
	}

	return missing, difference(bibSet, citedSet)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func difference(a, b map[string]bool) []string {
	out := make([]string, 0)
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

func intersection(a, b map[string]bool) []string {
	out := make([]string, 0)
	for k := range a {
		if b[k] {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
