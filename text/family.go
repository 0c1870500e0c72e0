package text

import (
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontmetrics"
)

// FamilyRegistry maps family names to per-style font sources.
// FamilyRegistry is safe for concurrent use.
type FamilyRegistry struct {
	mu         sync.RWMutex
	families   map[string]map[Style]*FontSource
	generation atomic.Uint64
}

// NewFamilyRegistry creates an empty registry.
func NewFamilyRegistry() *FamilyRegistry {
	return &FamilyRegistry{families: make(map[string]map[Style]*FontSource)}
}

// Register adds source as the given style of family, replacing any
// previous source for that pair.
func (r *FamilyRegistry) Register(family string, style Style, source *FontSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	styles, ok := r.families[family]
	if !ok {
		styles = make(map[Style]*FontSource, 4)
		r.families[family] = styles
	}
	styles[style] = source
	r.generation.Add(1)
}

// Alias makes alias resolve to the same sources as family.
// Later registrations on either name are not shared.
func (r *FamilyRegistry) Alias(alias, family string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	styles, ok := r.families[family]
	if !ok {
		return &FamilyNotFoundError{Family: family}
	}
	copied := make(map[Style]*FontSource, len(styles))
	for st, src := range styles {
		copied[st] = src
	}
	r.families[alias] = copied
	r.generation.Add(1)
	return nil
}

// Generation returns a counter that changes on every Register and Alias.
// Faces built from an older generation may use a replaced source.
func (r *FamilyRegistry) Generation() uint64 {
	return r.generation.Load()
}

// Lookup returns the source for family and style. A style missing from a
// registered family falls back to Plain.
func (r *FamilyRegistry) Lookup(family string, style Style) (*FontSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	styles, ok := r.families[family]
	if !ok {
		return nil, &FamilyNotFoundError{Family: family}
	}
	if src, ok := styles[style]; ok {
		return src, nil
	}
	if src, ok := styles[Plain]; ok {
		fontmetrics.Logger().Debug("text: style not available, using plain",
			"family", family, "style", style.String())
		return src, nil
	}
	return nil, &FamilyNotFoundError{Family: family}
}

// Families returns the number of registered family names.
func (r *FamilyRegistry) Families() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.families)
}

var (
	defaultFamiliesOnce sync.Once
	defaultFamilies     *FamilyRegistry
)

// DefaultFamilies returns the shared registry of platform logical families.
// "DialogInput" and "Monospaced" use Go Mono, "Dialog" and "SansSerif" use
// the proportional Go font, each in all four styles.
//
// The Go fonts are embedded, so parsing cannot fail; DefaultFamilies panics
// if it does.
func DefaultFamilies() *FamilyRegistry {
	defaultFamiliesOnce.Do(func() {
		r := NewFamilyRegistry()
		mustRegister(r, "DialogInput", map[Style][]byte{
			Plain:      gomono.TTF,
			Bold:       gomonobold.TTF,
			Italic:     gomonoitalic.TTF,
			BoldItalic: gomonobolditalic.TTF,
		})
		mustRegister(r, "Dialog", map[Style][]byte{
			Plain:      goregular.TTF,
			Bold:       gobold.TTF,
			Italic:     goitalic.TTF,
			BoldItalic: gobolditalic.TTF,
		})
		_ = r.Alias("Monospaced", "DialogInput")
		_ = r.Alias("SansSerif", "Dialog")
		defaultFamilies = r
	})
	return defaultFamilies
}

func mustRegister(r *FamilyRegistry, family string, fonts map[Style][]byte) {
	for style, data := range fonts {
		src, err := NewFontSource(data)
		if err != nil {
			panic("text: embedded font " + family + "-" + style.String() + ": " + err.Error())
		}
		r.Register(family, style, src)
	}
}
