package font

import (
	"strings"
	"sync/atomic"

	"github.com/gogpu/fontmetrics/text"
)

// NoCharacter stands for an absent character argument.
// CharacterWidth reports 0 for it and for every other negative rune.
const NoCharacter rune = -1

// Size is a two-dimensional text extent in pixels.
type Size struct {
	Width, Height int
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithResolver sets the identifier resolver. The default is DefaultResolver().
func WithResolver(r *Resolver) Option {
	return func(a *Adapter) {
		if r != nil {
			a.resolver = r
		}
	}
}

// Adapter answers glyph and measurement queries for one logical font.
//
// Queries are safe for concurrent use with each other and with Reload.
// Every query reads the snapshot once, so it never sees a mix of two
// snapshots.
type Adapter struct {
	id       Identifier
	resolver *Resolver
	service  Service
	data     atomic.Pointer[Data]
}

// New creates an adapter for id that measures with service.
func New(id Identifier, service Service, data *Data, opts ...Option) (*Adapter, error) {
	if service == nil {
		return nil, ErrNilService
	}
	if data == nil {
		return nil, ErrNilData
	}
	a := &Adapter{
		id:       id,
		resolver: DefaultResolver(),
		service:  service,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.data.Store(data)
	return a, nil
}

// Reload atomically replaces the character data snapshot.
func (a *Adapter) Reload(data *Data) error {
	if data == nil {
		return ErrNilData
	}
	a.data.Store(data)
	return nil
}

// Identifier returns the logical font identifier of the adapter.
func (a *Adapter) Identifier() Identifier { return a.id }

// Data returns the current snapshot.
func (a *Adapter) Data() *Data { return a.data.Load() }

// Resolve returns the descriptor for the adapter's identifier.
func (a *Adapter) Resolve() Resolution { return a.resolver.Resolve(a.id) }

// HasCharacter reports whether c can be laid out. A newline is always
// present; other characters must be in the current snapshot.
func (a *Adapter) HasCharacter(c rune) bool {
	if c == '\n' {
		return true
	}
	_, ok := a.data.Load().Character(c)
	return ok
}

// CharacterData returns the snapshot data for c.
// A missing glyph is reported with ok == false.
func (a *Adapter) CharacterData(c rune) (Character, bool) {
	return a.data.Load().Character(c)
}

// Size measures a sequence of lines. The width is the widest line; the
// height is the sum of the measured line heights. No lines measure (0, 0).
func (a *Adapter) Size(lines []string) (Size, error) {
	var size Size
	err := a.withContext(func(ctx text.MeasureContext) error {
		for _, line := range lines {
			b, err := ctx.Bounds(line)
			if err != nil {
				return err
			}
			size.Width = max(size.Width, int(b.Width()))
			// The accumulator is an integer, truncated after every line.
			size.Height = int(float64(size.Height) + b.Height())
		}
		return nil
	})
	if err != nil {
		return Size{}, err
	}
	return size, nil
}

// Width returns the width of the widest newline-separated piece of s.
func (a *Adapter) Width(s string) (int, error) {
	width := 0
	err := a.withContext(func(ctx text.MeasureContext) error {
		for _, piece := range strings.Split(s, "\n") {
			b, err := ctx.Bounds(piece)
			if err != nil {
				return err
			}
			width = max(width, int(b.Width()))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return width, nil
}

// CharacterWidth returns the measured width of c alone.
// NoCharacter and other negative runes measure 0.
func (a *Adapter) CharacterWidth(c rune) (int, error) {
	if c < 0 {
		return 0, nil
	}
	width := 0
	err := a.withContext(func(ctx text.MeasureContext) error {
		b, err := ctx.Bounds(string(c))
		if err != nil {
			return err
		}
		width = int(b.Width())
		return nil
	})
	if err != nil {
		return 0, err
	}
	return width, nil
}

// Height returns the nominal height of s: one line height plus one more
// for every newline in s.
func (a *Adapter) Height(s string) (int, error) {
	lineHeight, err := a.LineHeight()
	if err != nil {
		return 0, err
	}
	return lineHeight * (1 + strings.Count(s, "\n")), nil
}

// LineHeight returns the nominal line height of the resolved font.
func (a *Adapter) LineHeight() (int, error) {
	height := 0
	err := a.withContext(func(ctx text.MeasureContext) error {
		lh, err := ctx.LineHeight()
		if err != nil {
			return err
		}
		height = int(lh)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return height, nil
}

// BaseHeight returns the base height of the current snapshot.
func (a *Adapter) BaseHeight() int { return a.data.Load().Metrics().BaseHeight }

// UnderlineOffset returns the underline offset of the current snapshot.
func (a *Adapter) UnderlineOffset() int { return a.data.Load().Metrics().UnderlineOffset }

// UnderlineThickness returns the underline thickness of the current snapshot.
func (a *Adapter) UnderlineThickness() int { return a.data.Load().Metrics().UnderlineThickness }
