// Package font adapts logical font identifiers to platform text measurement.
//
// An Adapter is created once per logical font. It resolves its Identifier
// to a text.Descriptor through a Resolver and answers width and height
// queries by opening a transient measurement context on a Service for
// every call. Per-glyph data comes from a Data snapshot that the asset
// loader replaces wholesale with Reload.
//
// Two height rules coexist and are kept distinct:
//
//   - Size sums the measured bounding height of every line.
//   - Height adds one nominal line height per newline to a single line height.
//
// Identifiers missing from the descriptor table never fail: they resolve
// to DefaultDescriptor and log a warning through fontmetrics.Logger.
package font
