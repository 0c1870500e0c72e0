package text

import "fmt"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Style is the weight and slant of a font within its family.
type Style int

const (
	// Plain is the regular upright style.
	Plain Style = iota
	// Bold is the bold upright style.
	Bold
	// Italic is the regular slanted style.
	Italic
	// BoldItalic is the bold slanted style.
	BoldItalic
)

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	default:
		return unknownStr
	}
}

// ParseStyle is the inverse of Style.String.
func ParseStyle(s string) (Style, error) {
	for _, st := range []Style{Plain, Bold, Italic, BoldItalic} {
		if st.String() == s {
			return st, nil
		}
	}
	return Plain, fmt.Errorf("text: unknown font style %q", s)
}

// IsBold reports whether the style has bold weight.
func (s Style) IsBold() bool { return s == Bold || s == BoldItalic }

// IsItalic reports whether the style is slanted.
func (s Style) IsItalic() bool { return s == Italic || s == BoldItalic }

// Descriptor selects a concrete platform font.
type Descriptor struct {
	Family string
	Style  Style
	// Size is the font size in points. Measurement treats one point as one pixel.
	Size int
}

// Valid reports whether d names a family and has a positive size.
func (d Descriptor) Valid() bool {
	return d.Family != "" && d.Size > 0
}

// String returns "Family-style-size", e.g. "DialogInput-bold-14".
func (d Descriptor) String() string {
	return fmt.Sprintf("%s-%s-%d", d.Family, d.Style, d.Size)
}

// Rect represents a rectangle for glyph and string bounds.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}
