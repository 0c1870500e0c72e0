package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// GoTextShaper measures advances with HarfBuzz-level shaping from
// go-text/typesetting, so ligatures, contextual alternates and GPOS
// kerning are reflected in string widths.
//
//	m := text.NewMeasurer(text.DefaultFamilies(), text.WithShaper(text.NewGoTextShaper()))
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font
// objects (read-only, thread-safe) and creates a font.Face per call, since
// font.Face is not. HarfbuzzShaper instances are pooled for the same reason.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance implements Shaper.
func (s *GoTextShaper) Advance(face Face, text string) (float64, error) {
	if text == "" {
		return 0, nil
	}
	source := face.Source()
	if source == nil {
		return 0, fmt.Errorf("text: face has no font source")
	}

	goTextFont, err := s.getOrCreateFont(source)
	if err != nil {
		return 0, err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(detectDirection(text)),
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	total := 0.0
	for _, g := range output.Glyphs {
		total += fixedToFloat(g.Advance)
	}
	return total, nil
}

// getOrCreateFont returns the cached go-text font.Font for source,
// parsing the font data on first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	f, ok := s.fontCache[source]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	s.mu.Lock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.Unlock()
		return f, nil
	}
	if source.Closed() {
		s.mu.Unlock()
		return nil, ErrSourceClosed
	}
	parsed, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("text: go-text failed to parse font: %w", err)
	}
	s.fontCache[source] = parsed.Font
	s.mu.Unlock()

	// Registered outside the lock: on an already closed source the hook
	// runs immediately and takes s.mu.
	source.OnClose(s.RemoveSource)
	return parsed.Font, nil
}

// RemoveSource drops the cached parsed font for source. It runs
// automatically when source is closed.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// detectDirection returns the paragraph direction of text: the direction
// of its first strong character (Unicode bidi rule P2). Text without strong
// characters is LTR.
func detectDirection(text string) Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}

func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
// Mixed-script lines are measured with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
