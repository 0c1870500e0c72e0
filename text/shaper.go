package text

// Shaper computes the horizontal advance of a single line of text.
// Implementations provide different levels of shaping support:
//   - BuiltinShaper: per-rune advances plus pair kerning via golang.org/x/image
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
//
// Shapers must be safe for concurrent use.
type Shaper interface {
	// Advance returns the advance width of text set in face, in pixels.
	Advance(face Face, text string) (float64, error)
}

// BuiltinShaper measures text with Face.Advance.
type BuiltinShaper struct{}

// Advance implements Shaper.
func (BuiltinShaper) Advance(face Face, text string) (float64, error) {
	return face.Advance(text), nil
}
