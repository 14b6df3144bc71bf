package model

// ImageReference is an image filename referenced by a document.
// Identity is the basename; directory components are dropped.
type ImageReference struct {
	Filename string `json:"filename" yaml:"filename"`
	Inferred bool   `json:"inferred" yaml:"inferred"` // Extension came from the candidate list, not the markup
}

// ImageInfo is one \includegraphics invocation inside a figure environment
type ImageInfo struct {
	FullCommand string `json:"full_command" yaml:"full_command"`
	Path        string `json:"path" yaml:"path"`     // Payload with directory component, trimmed
	Prefix      string `json:"prefix" yaml:"prefix"` // Command text before the path, up to and including "{"
	Suffix      string `json:"suffix" yaml:"suffix"` // Command text after the path
	Position    int    `json:"position" yaml:"position"`
}

// ComparisonResult is the image diff between two documents.
// All sets are sorted alphabetically.
type ComparisonResult struct {
	Old     []string `json:"old" yaml:"old"`
	New     []string `json:"new" yaml:"new"`
	Added   []string `json:"added" yaml:"added"`
	Removed []string `json:"removed" yaml:"removed"`
	Common  []string `json:"common" yaml:"common"`
}

// CopyStatus is the outcome of copying a single file
type CopyStatus string

const (
	CopyStatusCopied  CopyStatus = "copied"
	CopyStatusSkipped CopyStatus = "skipped" // Destination already existed
	CopyStatusMissing CopyStatus = "missing" // Source not found
	CopyStatusFailed  CopyStatus = "failed"
)

// CopyFailure records a copy that could not complete
type CopyFailure struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// CopyResult accumulates per-item copy outcomes
type CopyResult struct {
	Destination    string        `json:"destination" yaml:"destination"`
	Copied         []string      `json:"copied" yaml:"copied"`
	Skipped        []string      `json:"skipped" yaml:"skipped"`
	Missing        []string      `json:"missing" yaml:"missing"`
	Failed         []CopyFailure `json:"failed" yaml:"failed"`
	TotalAttempted int           `json:"total_attempted" yaml:"total_attempted"`
}

// Record files one outcome under its status
func (r *CopyResult) Record(name string, status CopyStatus, err error) {
	r.TotalAttempted++
	switch status {
	case CopyStatusCopied:
		r.Copied = append(r.Copied, name)
	case CopyStatusSkipped:
		r.Skipped = append(r.Skipped, name)
	case CopyStatusMissing:
		r.Missing = append(r.Missing, name)
	default:
		reason := "unknown error"
		if err != nil {
			reason = err.Error()
		}
		r.Failed = append(r.Failed, CopyFailure{Name: name, Reason: reason})
	}
}
