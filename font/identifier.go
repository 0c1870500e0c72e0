package font

import "strings"

// Identifier names a logical font, e.g. "engine:title".
// The part before the first colon is the module, the rest is the name.
type Identifier string

// Module returns the module part of the identifier, or "" if there is none.
func (id Identifier) Module() string {
	module, _, ok := strings.Cut(string(id), ":")
	if !ok {
		return ""
	}
	return module
}

// Name returns the resource name of the identifier.
func (id Identifier) Name() string {
	_, name, ok := strings.Cut(string(id), ":")
	if !ok {
		return string(id)
	}
	return name
}

func (id Identifier) String() string { return string(id) }
