package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/gogpu/fontmetrics/text"
)

func newMeasuredAdapter(t *testing.T, id Identifier) (*Adapter, text.Face) {
	t.Helper()
	m := text.NewMeasurer(text.DefaultFamilies())
	face, err := m.Face(DefaultResolver().Resolve(id).Descriptor)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	a, err := New(id, m, NewDataFromFace(face, DefaultCharset))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, face
}

func TestAdapterWithMeasurer(t *testing.T) {
	a, face := newMeasuredAdapter(t, "engine:default")

	w, err := a.CharacterWidth('b')
	if err != nil {
		t.Fatal(err)
	}
	if w <= 0 {
		t.Fatalf("CharacterWidth('b') = %d, want positive", w)
	}

	// DialogInput is monospaced with whole-pixel hinted advances.
	ww, err := a.Width("bb\nb")
	if err != nil {
		t.Fatal(err)
	}
	if ww != 2*w {
		t.Errorf("Width(bb\\nb) = %d, want %d", ww, 2*w)
	}

	lh, err := a.LineHeight()
	if err != nil {
		t.Fatal(err)
	}
	if want := int(face.Metrics().LineHeight()); lh != want {
		t.Errorf("LineHeight = %d, want %d", lh, want)
	}
	h, err := a.Height("a\nb\nc")
	if err != nil {
		t.Fatal(err)
	}
	if h != 3*lh {
		t.Errorf("Height(a\\nb\\nc) = %d, want %d", h, 3*lh)
	}

	size, err := a.Size([]string{"a", "bb"})
	if err != nil {
		t.Fatal(err)
	}
	if size.Width != 2*w {
		t.Errorf("Size width = %d, want %d", size.Width, 2*w)
	}
	// Each line adds its bounds height to the truncated running total.
	bh := face.Metrics().LineHeight()
	if want := int(float64(int(bh)) + bh); size.Height != want {
		t.Errorf("Size height = %d, want %d", size.Height, want)
	}
}

func TestAdapterClosedSourceFails(t *testing.T) {
	src, err := text.NewFontSource(gomonobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	families := text.NewFamilyRegistry()
	families.Register("Console", text.Bold, src)

	d := text.Descriptor{Family: "Console", Style: text.Bold, Size: 14}
	resolver := NewResolver(Table{"engine:console": d}, d)
	a, err := New("engine:console", text.NewMeasurer(families), testData(12), WithResolver(resolver))
	if err != nil {
		t.Fatal(err)
	}

	if w, err := a.Width("abcd"); err != nil || w <= 0 {
		t.Fatalf("Width before Close = (%d, %v)", w, err)
	}
	_ = src.Close()

	if w, err := a.Width("abcd"); !errors.Is(err, text.ErrSourceClosed) {
		t.Errorf("Width after Close = (%d, %v), want ErrSourceClosed", w, err)
	}
	if h, err := a.Height("abcd"); !errors.Is(err, text.ErrSourceClosed) {
		t.Errorf("Height after Close = (%d, %v), want ErrSourceClosed", h, err)
	}
}

func TestAdapterSizesFollowTable(t *testing.T) {
	widths := make(map[Identifier]int)
	for _, id := range []Identifier{"engine:NotoSans-Regular", "engine:NotoSans-Regular-Medium", "engine:NotoSans-Regular-Large"} {
		a, _ := newMeasuredAdapter(t, id)
		w, err := a.Width("measure")
		if err != nil {
			t.Fatal(err)
		}
		widths[id] = w
	}
	if !(widths["engine:NotoSans-Regular"] < widths["engine:NotoSans-Regular-Medium"] &&
		widths["engine:NotoSans-Regular-Medium"] < widths["engine:NotoSans-Regular-Large"]) {
		t.Errorf("widths should grow with size: %v", widths)
	}
}

func TestNewDataFromFace(t *testing.T) {
	_, face := newMeasuredAdapter(t, "engine:title")
	data := NewDataFromFace(face, "AAb世")

	if data.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (duplicates and missing glyphs skipped)", data.Len())
	}
	if _, ok := data.Character('世'); ok {
		t.Error("glyph missing from the font must not be in the snapshot")
	}

	c, ok := data.Character('A')
	if !ok {
		t.Fatal("'A' missing")
	}
	if c.Width <= 0 || c.Height <= 0 || c.XAdvance <= 0 {
		t.Errorf("unexpected glyph data %+v", c)
	}
	if c.Page != face.Source().Name() {
		t.Errorf("Page = %q, want %q", c.Page, face.Source().Name())
	}

	m := data.Metrics()
	if m.BaseHeight != int(face.Metrics().Ascent) {
		t.Errorf("BaseHeight = %d, want ascent %d", m.BaseHeight, int(face.Metrics().Ascent))
	}
	if m.UnderlineThickness < 1 {
		t.Errorf("UnderlineThickness = %d, want >= 1", m.UnderlineThickness)
	}
	if m.LineHeight <= m.BaseHeight {
		t.Errorf("LineHeight %d should exceed BaseHeight %d", m.LineHeight, m.BaseHeight)
	}
}

func TestNewDataCopiesCharacters(t *testing.T) {
	chars := map[rune]Character{'x': {XAdvance: 5}}
	data := NewData(Metrics{}, chars)
	chars['y'] = Character{}
	if data.Len() != 1 {
		t.Errorf("snapshot changed with its source map: Len() = %d", data.Len())
	}
}
