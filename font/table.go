package font

import (
	"errors"
	"fmt"
	"io"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/fontmetrics/text"
)

// Table maps logical font identifiers to platform descriptors.
type Table map[Identifier]text.Descriptor

// DefaultDescriptor is used for identifiers missing from the table.
var DefaultDescriptor = text.Descriptor{Family: "DialogInput", Style: text.Bold, Size: 14}

// DefaultTable returns a fresh copy of the built-in engine font table.
func DefaultTable() Table {
	return Table{
		"engine:default":                 DefaultDescriptor,
		"engine:title":                   {Family: "DialogInput", Style: text.Bold, Size: 20},
		"engine:NotoSans-Regular":        {Family: "DialogInput", Style: text.Plain, Size: 20},
		"engine:NotoSans-Regular-Medium": {Family: "DialogInput", Style: text.Plain, Size: 36},
		"engine:NotoSans-Regular-Large":  {Family: "DialogInput", Style: text.Plain, Size: 52},
		"engine:NotoSans-Bold":           {Family: "DialogInput", Style: text.Bold, Size: 20},
	}
}

// Merge returns a new table with the entries of other added to t.
// Entries of other win on conflict.
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	maps.Copy(merged, t)
	maps.Copy(merged, other)
	return merged
}

// tableEntry is the YAML form of a descriptor.
type tableEntry struct {
	Family string `yaml:"family"`
	Style  string `yaml:"style"`
	Size   int    `yaml:"size"`
}

// LoadTable reads a descriptor table from YAML:
//
//	"engine:title":
//	  family: DialogInput
//	  style: bold
//	  size: 20
//
// Style is one of plain, bold, italic or bold-italic and defaults to plain.
func LoadTable(r io.Reader) (Table, error) {
	var raw map[string]tableEntry
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("font: decode table: %w", err)
	}

	table := make(Table, len(raw))
	for id, e := range raw {
		style := text.Plain
		if e.Style != "" {
			var err error
			if style, err = text.ParseStyle(e.Style); err != nil {
				return nil, fmt.Errorf("font: table entry %q: %w", id, err)
			}
		}
		d := text.Descriptor{Family: e.Family, Style: style, Size: e.Size}
		if !d.Valid() {
			return nil, fmt.Errorf("font: table entry %q: %w", id, text.ErrInvalidDescriptor)
		}
		table[Identifier(id)] = d
	}
	return table, nil
}
