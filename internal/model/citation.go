package model

// BibEntry is one bibliography record with its original formatting
type BibEntry struct {
	Key      string `json:"key" yaml:"key"`
	Type     string `json:"type" yaml:"type"` // article, inproceedings, ...
	RawText  string `json:"raw_text" yaml:"-"`
	Position int    `json:"position" yaml:"position"`
}

// Bibliography is the parsed entry table of a .bib file.
// Keys are unique: the first definition of a key wins.
type Bibliography struct {
	Entries    []BibEntry `json:"entries" yaml:"entries"`       // File order
	Duplicates []string   `json:"duplicates" yaml:"duplicates"` // Keys defined more than once, in order of the redefinition
}

// Index maps each key to its entry
func (b Bibliography) Index() map[string]BibEntry {
	index := make(map[string]BibEntry, len(b.Entries))
	for _, e := range b.Entries {
		index[e.Key] = e
	}
	return index
}

// Keys returns entry keys in file order
func (b Bibliography) Keys() []string {
	keys := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		keys[i] = e.Key
	}
	return keys
}

// CitationStatus is a row of the citation order preview
type CitationStatus struct {
	Order     int    `json:"order" yaml:"order"`
	Key       string `json:"key" yaml:"key"`
	Available bool   `json:"available" yaml:"available"`
}
