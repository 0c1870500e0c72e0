package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrContextClosed is returned when a MeasureContext is used after Close.
	ErrContextClosed = errors.New("text: measure context closed")

	// ErrInvalidDescriptor is returned when a Descriptor has no family or a
	// non-positive size.
	ErrInvalidDescriptor = errors.New("text: invalid font descriptor")

	// ErrSourceClosed is returned when a measurement needs a FontSource
	// that has been closed.
	ErrSourceClosed = errors.New("text: font source closed")
)

// FamilyNotFoundError is returned when no font source is registered for a family.
type FamilyNotFoundError struct {
	Family string
}

func (e *FamilyNotFoundError) Error() string {
	return fmt.Sprintf("text: font family %q not registered", e.Family)
}
