// Package fontmetrics answers font measurement queries for logical fonts.
//
// # Overview
//
// A logical font is named by an identifier such as "engine:title". The
// font package resolves identifiers to concrete platform descriptors
// (family, style, size) and measures text through a measurement service.
// The text package provides that service on top of golang.org/x/image and,
// optionally, HarfBuzz shaping from go-text/typesetting.
//
// # Quick Start
//
//	measurer := text.NewMeasurer(text.DefaultFamilies())
//	adapter, err := font.New("engine:title", measurer, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, err := adapter.Width("Hello\nWorld")
//
// # Logging
//
// All packages share one [log/slog] logger configured with [SetLogger].
// Nothing is logged by default.
package fontmetrics

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
