package font

import (
	"maps"
	"math"

	"github.com/gogpu/fontmetrics/text"
)

// Character is the per-glyph data of a font snapshot.
// X, Y, Width and Height locate the glyph image in Page; the offsets place
// it relative to the top-left of the line box.
type Character struct {
	X, Y          int
	Width, Height int
	XOffset       int
	YOffset       int
	XAdvance      int
	Page          string
}

// Metrics are the font-wide values of a snapshot, in pixels.
type Metrics struct {
	LineHeight         int
	BaseHeight         int
	UnderlineOffset    int
	UnderlineThickness int
}

// Data is an immutable snapshot of font character data.
// A snapshot is never modified after creation; reloading replaces it.
type Data struct {
	metrics    Metrics
	characters map[rune]Character
}

// NewData creates a snapshot. The characters map is copied.
func NewData(m Metrics, characters map[rune]Character) *Data {
	return &Data{metrics: m, characters: maps.Clone(characters)}
}

// Metrics returns the font-wide values of the snapshot.
func (d *Data) Metrics() Metrics { return d.metrics }

// Character returns the data for r, if the snapshot has it.
func (d *Data) Character(r rune) (Character, bool) {
	c, ok := d.characters[r]
	return c, ok
}

// Len returns the number of characters in the snapshot.
func (d *Data) Len() int { return len(d.characters) }

// DefaultCharset is the printable ASCII range.
const DefaultCharset = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// NewDataFromFace builds a snapshot for the runes of charset that face has
// glyphs for. The base height is the ascent; underline values come from the
// font's post table. Glyph image positions are left at zero and Page is the
// font name.
func NewDataFromFace(face text.Face, charset string) *Data {
	m := face.Metrics()
	page := ""
	if src := face.Source(); src != nil {
		page = src.Name()
	}

	chars := make(map[rune]Character, len(charset))
	for _, r := range charset {
		if _, seen := chars[r]; seen || !face.HasGlyph(r) {
			continue
		}
		b := face.GlyphBounds(r)
		chars[r] = Character{
			Width:    int(math.Ceil(b.Width())),
			Height:   int(math.Ceil(b.Height())),
			XOffset:  int(math.Floor(b.MinX)),
			YOffset:  int(math.Floor(m.Ascent + b.MinY)),
			XAdvance: int(math.Round(face.GlyphAdvance(r))),
			Page:     page,
		}
	}

	return &Data{
		metrics: Metrics{
			LineHeight:         int(m.LineHeight()),
			BaseHeight:         int(m.Ascent),
			UnderlineOffset:    int(math.Round(m.UnderlinePosition)),
			UnderlineThickness: max(1, int(math.Round(m.UnderlineThickness))),
		},
		characters: chars,
	}
}
