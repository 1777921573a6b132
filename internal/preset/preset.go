package preset

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultName is the preset used when no colors are configured.
const DefaultName = "simple"

// Layout holds the optional layout fields a preset may carry. Nil means unset.
type Layout struct {
	BorderRadius *string `yaml:"borderRadius,omitempty" json:"borderRadius,omitempty"`
	RowLength    *int    `yaml:"rowLength,omitempty" json:"rowLength,omitempty" validate:"omitempty,min=1"`
	SwatchSize   *int    `yaml:"swatchSize,omitempty" json:"swatchSize,omitempty" validate:"omitempty,min=1"`
	SpacingSize  *int    `yaml:"spacingSize,omitempty" json:"spacingSize,omitempty" validate:"omitempty,min=0"`
	MaxHeight    *int    `yaml:"maxHeight,omitempty" json:"maxHeight,omitempty" validate:"omitempty,min=0"`
}

// IsZero reports whether no layout field is set.
func (l Layout) IsZero() bool {
	return l.BorderRadius == nil && l.RowLength == nil && l.SwatchSize == nil && l.SpacingSize == nil && l.MaxHeight == nil
}

// Clone returns a copy that shares no pointers with l.
func (l Layout) Clone() Layout {
	return Layout{
		BorderRadius: clonePtr(l.BorderRadius),
		RowLength:    clonePtr(l.RowLength),
		SwatchSize:   clonePtr(l.SwatchSize),
		SpacingSize:  clonePtr(l.SpacingSize),
		MaxHeight:    clonePtr(l.MaxHeight),
	}
}

// Swatches is either a flat list of colors or a list of rows.
type Swatches struct {
	Flat []string
	Rows [][]string
}

// FlatSwatches wraps a flat color list.
func FlatSwatches(colors ...string) Swatches {
	return Swatches{Flat: colors}
}

// RowSwatches wraps an already gridded color list.
func RowSwatches(rows ...[]string) Swatches {
	return Swatches{Rows: rows}
}

// Nested reports whether the swatches are already arranged in rows.
func (s Swatches) Nested() bool {
	return s.Rows != nil
}

// Len returns the number of colors across all rows.
func (s Swatches) Len() int {
	if !s.Nested() {
		return len(s.Flat)
	}
	total := 0
	for _, row := range s.Rows {
		total += len(row)
	}
	return total
}

// Clone returns a deep copy.
func (s Swatches) Clone() Swatches {
	if !s.Nested() {
		if s.Flat == nil {
			return Swatches{}
		}
		return Swatches{Flat: append([]string(nil), s.Flat...)}
	}
	rows := make([][]string, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return Swatches{Rows: rows}
}

// UnmarshalYAML accepts a sequence of colors or a sequence of color sequences.
func (s *Swatches) UnmarshalYAML(value *yaml.Node) error {
	flat, rows, err := DecodeColorSequence(value)
	if err != nil {
		return err
	}
	s.Flat = flat
	s.Rows = rows
	return nil
}

// MarshalYAML writes whichever shape is held.
func (s Swatches) MarshalYAML() (any, error) {
	if s.Nested() {
		return s.Rows, nil
	}
	return s.Flat, nil
}

// Definition is a named bundle of swatches plus layout defaults.
type Definition struct {
	Swatches   Swatches `yaml:"swatches"`
	Layout     `yaml:",inline"`
	ShowBorder *bool `yaml:"showBorder,omitempty"`
}

// UnmarshalYAML also accepts a bare color sequence as shorthand for a
// definition that only carries swatches.
func (d *Definition) UnmarshalYAML(value *yaml.Node) error {
	node := value
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.SequenceNode {
		var s Swatches
		if err := s.UnmarshalYAML(node); err != nil {
			return err
		}
		*d = Definition{Swatches: s}
		return nil
	}

	type rawDefinition Definition
	var raw rawDefinition
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*d = Definition(raw)
	return nil
}

// Clone returns a deep copy so callers can never alias registry data.
func (d Definition) Clone() Definition {
	return Definition{
		Swatches:   d.Swatches.Clone(),
		Layout:     d.Layout.Clone(),
		ShowBorder: clonePtr(d.ShowBorder),
	}
}

// Registry resolves preset names to definitions. Implementations are read-only.
type Registry interface {
	Lookup(name string) (Definition, bool)
}

// Catalog is an in-memory Registry keyed by preset name.
type Catalog map[string]Definition

// Lookup returns a copy of the named definition.
func (c Catalog) Lookup(name string) (Definition, bool) {
	def, ok := c[name]
	if !ok {
		return Definition{}, false
	}
	return def.Clone(), true
}

// Names returns the preset names in lexical order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Layered consults registries in order and returns the first match.
type Layered []Registry

// Lookup implements Registry.
func (l Layered) Lookup(name string) (Definition, bool) {
	for _, reg := range l {
		if reg == nil {
			continue
		}
		if def, ok := reg.Lookup(name); ok {
			return def, true
		}
	}
	return Definition{}, false
}

// Names merges the names of every layer that can list them.
func (l Layered) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, reg := range l {
		lister, ok := reg.(interface{ Names() []string })
		if !ok {
			continue
		}
		for _, name := range lister.Names() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
