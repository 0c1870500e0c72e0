package text

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/fontmetrics"
)

// MeasureContext is a transient measurement context bound to one Descriptor.
// A context is owned by a single caller and must be closed after use.
type MeasureContext interface {
	// Bounds returns the logical bounding box of s set on a single line.
	Bounds(s string) (Rect, error)

	// LineHeight returns the nominal line height of the bound font.
	LineHeight() (float64, error)

	// Close releases the context. Closing twice is a no-op.
	Close() error
}

// Measurer opens measurement contexts for font descriptors.
// Faces are created from a FamilyRegistry and cached per Descriptor. The
// cache follows the registry: re-registering a family or closing a source
// drops the faces built from the old font.
//
// Measurer is safe for concurrent use.
type Measurer struct {
	families   *FamilyRegistry
	faces      *Cache[faceKey, Face]
	generation atomic.Uint64
	watched    sync.Map // *FontSource -> struct{}
	config     measurerConfig
}

// faceKey pins a cached face to the registry generation it was built from.
type faceKey struct {
	Descriptor
	generation uint64
}

// NewMeasurer creates a Measurer over families.
func NewMeasurer(families *FamilyRegistry, opts ...MeasurerOption) *Measurer {
	config := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Measurer{
		families: families,
		faces:    NewCache[faceKey, Face](config.faceCacheLimit),
		config:   config,
	}
}

// Open returns a context bound to d.
// It fails with ErrInvalidDescriptor, ErrSourceClosed or *FamilyNotFoundError.
func (m *Measurer) Open(d Descriptor) (MeasureContext, error) {
	face, err := m.Face(d)
	if err != nil {
		return nil, err
	}
	return &measureContext{face: face, shaper: m.config.shaper}, nil
}

// Face returns the cached face for d, creating it on first use.
func (m *Measurer) Face(d Descriptor) (Face, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDescriptor, d)
	}

	gen := m.families.Generation()
	if old := m.generation.Swap(gen); old != gen {
		fontmetrics.Logger().Debug("text: font families changed, dropping faces",
			"generation", gen, "faces", m.faces.Len())
		m.faces.Clear()
	}

	key := faceKey{Descriptor: d, generation: gen}
	face, err := m.faces.GetOrCreate(key, func() (Face, error) {
		src, err := m.families.Lookup(d.Family, d.Style)
		if err != nil {
			return nil, err
		}
		if src.Closed() {
			return nil, fmt.Errorf("%w: %s", ErrSourceClosed, d)
		}
		fontmetrics.Logger().Debug("text: creating face", "descriptor", d.String(), "font", src.Name())
		return src.Face(float64(d.Size), m.config.faceOptions...), nil
	})
	if err != nil {
		return nil, err
	}
	// Watched outside the cache lock, since a hook on a source that is
	// already closed runs at once and needs that lock.
	m.watch(face.Source())
	if face.Source().Closed() {
		m.faces.Delete(key)
		return nil, fmt.Errorf("%w: %s", ErrSourceClosed, d)
	}
	return face, nil
}

// watch registers a close hook on src once per Measurer.
func (m *Measurer) watch(src *FontSource) {
	if _, loaded := m.watched.LoadOrStore(src, struct{}{}); loaded {
		return
	}
	src.OnClose(m.sourceClosed)
}

// sourceClosed drops every cached face built from src.
func (m *Measurer) sourceClosed(src *FontSource) {
	m.watched.Delete(src)
	n := m.faces.DeleteFunc(func(_ faceKey, f Face) bool { return f.Source() == src })
	fontmetrics.Logger().Debug("text: dropped faces of closed source", "font", src.Name(), "faces", n)
}

// measureContext implements MeasureContext.
type measureContext struct {
	face   Face
	shaper Shaper
	closed atomic.Bool
}

// check fails once the context or its font source is closed.
func (c *measureContext) check() error {
	if c.closed.Load() {
		return ErrContextClosed
	}
	if c.face.Source().Closed() {
		return ErrSourceClosed
	}
	return nil
}

func (c *measureContext) Bounds(s string) (Rect, error) {
	if err := c.check(); err != nil {
		return Rect{}, err
	}
	advance, err := c.shaper.Advance(c.face, s)
	if err != nil {
		return Rect{}, err
	}
	m := c.face.Metrics()
	return Rect{MinX: 0, MinY: -m.Ascent, MaxX: advance, MaxY: m.Descent + m.LineGap}, nil
}

func (c *measureContext) LineHeight() (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.face.Metrics().LineHeight(), nil
}

func (c *measureContext) Close() error {
	c.closed.Store(true)
	return nil
}
