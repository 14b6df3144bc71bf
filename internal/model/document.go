package model

// Document is a decoded text file
type Document struct {
	Path     string `json:"path" yaml:"path"`
	Text     string `json:"-" yaml:"-"`
	Encoding string `json:"encoding" yaml:"encoding"` // "utf-8" or the fallback that succeeded
}
