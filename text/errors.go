package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyFaces is returned when no faces are provided to MultiFace.
	ErrEmptyFaces = errors.New("text: faces cannot be empty")

	// ErrCollectionIndex is returned when a collection index is out of range.
	ErrCollectionIndex = errors.New("text: font collection index out of range")
)
