// Package text is the platform text-measurement service for fontmetrics.
//
// The measurement pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific pixel size
//   - FamilyRegistry: maps a family name and Style to a FontSource
//   - Measurer: opens transient MeasureContexts bound to a Descriptor
//   - FontParser: pluggable parsing backend (default: golang.org/x/image)
//   - Shaper: advance computation (builtin kerning or HarfBuzz via go-text)
//
// # Example usage
//
//	m := text.NewMeasurer(text.DefaultFamilies())
//
//	ctx, err := m.Open(text.Descriptor{Family: "DialogInput", Style: text.Bold, Size: 14})
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	bounds, err := ctx.Bounds("Hello")
//
// # Logical families
//
// DefaultFamilies registers the platform logical families "Dialog",
// "DialogInput", "SansSerif" and "Monospaced", backed by the Go fonts
// shipped with golang.org/x/image/font/gofont.
//
// # Invalidation
//
// A Measurer caches faces per Descriptor. Registering or aliasing a family
// drops the cache, and closing a FontSource evicts the faces built from it.
// Measuring with a closed source fails with ErrSourceClosed.
package text
