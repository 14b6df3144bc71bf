package extract

// Citations returns every cited key tagged with the offset of its command.
// The result is in document order and keeps repeats; keys from one command
// share an offset and keep their written order.
func Citations(text string) []Positioned[string] {
	var keys []Positioned[string]
	for _, m := range citationTable.FindAll(text) {
		for _, key := range SplitKeys(m.Payload) {
			keys = append(keys, Positioned[string]{Offset: m.Offset(), Value: key})
		}
	}
	return SortByOffset(keys)
}

// CitedKeys returns the unique cited keys in first-citation order
func CitedKeys(text string) []string {
	return UniqueOrdered(Citations(text))
}
