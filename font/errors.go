package font

import (
	"errors"
	"fmt"
)

var (
	// ErrNilData is returned when a nil Data snapshot is supplied.
	ErrNilData = errors.New("font: nil font data")

	// ErrNilService is returned when an Adapter is created without a Service.
	ErrNilService = errors.New("font: nil measurement service")
)

// UndefinedFontError reports an identifier that is not in the descriptor
// table. It is carried by Resolution.Diagnostic and never returned as a
// failure.
type UndefinedFontError struct {
	Identifier Identifier
}

func (e *UndefinedFontError) Error() string {
	return fmt.Sprintf("font: font %q was not defined", string(e.Identifier))
}
