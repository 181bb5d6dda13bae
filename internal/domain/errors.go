package domain

import "errors"

// Domain errors
var (
	// ErrCorruptInput means the byte buffer could not be parsed as a PDF
	// container at all. An empty-but-valid document is not corrupt.
	ErrCorruptInput = errors.New("corrupt input: container cannot be parsed")

	// ErrUnsupportedInput means the declared media type or extension does
	// not match the expected container type; rejected before extraction.
	ErrUnsupportedInput = errors.New("unsupported input type")

	// ErrEmptyEmission indicates an emitter assembled a zero-byte output.
	// Should be unreachable; it signals a bug, not bad input.
	ErrEmptyEmission = errors.New("emission produced empty output")

	ErrFileNotFound = errors.New("file not found")
)
