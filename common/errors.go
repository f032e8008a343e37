package common

import "errors"

// Error taxonomy of the formatting core. Callers are expected to test with
// errors.Is, actual errors are wrapped with the cause.
var (
	// ErrCorruptContainer - source is not a readable DOCX archive or its main
	// document part is missing or malformed.
	ErrCorruptContainer = errors.New("invalid or corrupted file")
	// ErrEmptyDocument - source was read, but has no text paragraphs.
	ErrEmptyDocument = errors.New("document has no text")
	// ErrSerialization - one of the renderers failed to produce its output.
	ErrSerialization = errors.New("unable to produce formatted output")
)
