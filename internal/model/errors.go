package model

import "errors"

var (
	// ErrInputNotFound marks a required input file or directory that does not exist
	ErrInputNotFound = errors.New("input not found")

	// ErrDecode marks a document that is neither UTF-8 nor valid in the fallback encoding
	ErrDecode = errors.New("cannot decode document")

	// ErrWrite marks an output artifact that could not be written
	ErrWrite = errors.New("cannot write output")
)
