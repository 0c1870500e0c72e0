package text

// Face represents a font face at a specific pixel size.
// This is a lightweight object that can be created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// including pair kerning unless disabled with WithKerning(false).
	Advance(text string) float64

	// Bounds returns the logical bounding box of text on a single line,
	// relative to the origin on the baseline. The box spans the advance
	// horizontally and the full line height (Metrics.LineHeight) vertically.
	Bounds(text string) Rect

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// GlyphAdvance returns the advance width of the glyph for r.
	GlyphAdvance(r rune) float64

	// GlyphBounds returns the ink bounding box of the glyph for r,
	// relative to its origin on the baseline (Y grows downwards).
	GlyphBounds(r rune) Rect

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	fm := parsed.Metrics(f.size)

	// FontMetrics.Descent is negative (below baseline)
	// Metrics.Descent is positive (absolute distance from baseline)
	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:             fm.Ascent,
		Descent:            descent,
		LineGap:            fm.LineGap,
		XHeight:            fm.XHeight,
		CapHeight:          fm.CapHeight,
		UnderlinePosition:  -fm.UnderlinePosition,
		UnderlineThickness: fm.UnderlineThickness,
	}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0
	}

	total := 0.0
	var prev uint16
	first := true
	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		if !first && f.config.kerning {
			total += parsed.Kern(prev, gid, f.size)
		}
		total += parsed.GlyphAdvance(gid, f.size)
		prev = gid
		first = false
	}
	return total
}

// Bounds implements Face.Bounds.
func (f *sourceFace) Bounds(text string) Rect {
	m := f.Metrics()
	return Rect{
		MinX: 0,
		MinY: -m.Ascent,
		MaxX: f.Advance(text),
		MaxY: m.Descent + m.LineGap,
	}
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	if parsed == nil {
		return false
	}
	return parsed.GlyphIndex(r) != 0
}

// GlyphAdvance implements Face.GlyphAdvance.
func (f *sourceFace) GlyphAdvance(r rune) float64 {
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0
	}
	return parsed.GlyphAdvance(parsed.GlyphIndex(r), f.size)
}

// GlyphBounds implements Face.GlyphBounds.
func (f *sourceFace) GlyphBounds(r rune) Rect {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Rect{}
	}
	return parsed.GlyphBounds(parsed.GlyphIndex(r), f.size)
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

func (f *sourceFace) private() {}
