package font

import (
	"maps"

	"github.com/gogpu/fontmetrics"
	"github.com/gogpu/fontmetrics/text"
)

// Resolution is the outcome of resolving an identifier.
type Resolution struct {
	Descriptor text.Descriptor

	// Diagnostic is a *UndefinedFontError when the identifier was not in
	// the table and Descriptor is the fallback; nil otherwise.
	Diagnostic error
}

// Fallback reports whether the fallback descriptor was used.
func (r Resolution) Fallback() bool { return r.Diagnostic != nil }

// Resolver maps identifiers to descriptors with a fixed fallback.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	table    Table
	fallback text.Descriptor
}

// NewResolver creates a resolver over a copy of table.
func NewResolver(table Table, fallback text.Descriptor) *Resolver {
	return &Resolver{table: maps.Clone(table), fallback: fallback}
}

// DefaultResolver returns a resolver over DefaultTable with DefaultDescriptor
// as fallback.
func DefaultResolver() *Resolver {
	return NewResolver(DefaultTable(), DefaultDescriptor)
}

// Resolve looks id up in the table. Unknown identifiers resolve to the
// fallback and log one warning per call.
func (r *Resolver) Resolve(id Identifier) Resolution {
	if d, ok := r.table[id]; ok {
		return Resolution{Descriptor: d}
	}
	fontmetrics.Logger().Warn("font: font was not defined, using fallback",
		"identifier", id.String(), "fallback", r.fallback.String())
	return Resolution{
		Descriptor: r.fallback,
		Diagnostic: &UndefinedFontError{Identifier: id},
	}
}

// Known reports whether id is in the table.
func (r *Resolver) Known(id Identifier) bool {
	_, ok := r.table[id]
	return ok
}
