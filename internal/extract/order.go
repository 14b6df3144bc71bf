package extract

import "slices"

// Positioned pairs a value with the document offset where it was found
type Positioned[T comparable] struct {
	Offset int
	Value  T
}

// SortByOffset returns a copy of items sorted ascending by offset.
// The sort is stable: equal offsets keep discovery order.
func SortByOffset[T comparable](items []Positioned[T]) []Positioned[T] {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Positioned[T]) int {
		return a.Offset - b.Offset
	})
	return sorted
}

// Values drops offsets, keeping order and repeats
func Values[T comparable](items []Positioned[T]) []T {
	values := make([]T, len(items))
	for i, item := range items {
		values[i] = item.Value
	}
	return values
}

// UniqueOrdered sorts by offset and keeps only the first occurrence of each
// distinct value.
func UniqueOrdered[T comparable](items []Positioned[T]) []T {
	seen := make(map[T]bool, len(items))
	unique := make([]T, 0, len(items))
	for _, item := range SortByOffset(items) {
		if seen[item.Value] {
			continue
		}
		seen[item.Value] = true
		unique = append(unique, item.Value)
	}
	return unique
}
