package swatch

import (
	"strings"

	"github.com/alexisbeaulieu97/swatches/internal/preset"
	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

// Grid is an ordered list of rows of color tokens. Rows may differ in length.
type Grid [][]string

// Flatten returns every color in row order.
func (g Grid) Flatten() []string {
	out := make([]string, 0, g.Len())
	for _, row := range g {
		out = append(out, row...)
	}
	return out
}

// Len returns the number of colors across all rows.
func (g Grid) Len() int {
	total := 0
	for _, row := range g {
		total += len(row)
	}
	return total
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Resolution is the canonical grid plus whatever layout the preset carried.
type Resolution struct {
	Grid       Grid
	Layout     preset.Layout
	PresetName string
	ShowBorder *bool
}

// Resolve normalizes a colors input into a grid. rowLength, when set and
// positive, takes precedence over a preset's own row length for flat input.
// Nested input is never re-chunked.
func Resolve(input ColorsInput, registry preset.Registry, rowLength *int) (Resolution, error) {
	switch input.Kind() {
	case InputUnset:
		return resolveNamed(preset.DefaultName, registry, rowLength)
	case InputName:
		name := strings.TrimSpace(input.Name())
		if name == "" {
			return Resolution{}, swatcherrors.NewInvalidColorsInputError("empty preset name", nil)
		}
		return resolveNamed(name, registry, rowLength)
	case InputFlat:
		return Resolution{Grid: chunk(input.flat, positive(rowLength))}, nil
	case InputNested:
		return Resolution{Grid: Grid(input.rows).Clone()}, nil
	case InputPreset:
		return resolveDefinition(input.Definition().Clone(), rowLength), nil
	default:
		return Resolution{}, swatcherrors.NewInvalidColorsInputError("unknown input kind "+input.Kind().String(), nil)
	}
}

func resolveNamed(name string, registry preset.Registry, rowLength *int) (Resolution, error) {
	if registry == nil {
		return Resolution{}, swatcherrors.NewUnknownPresetError(name)
	}
	def, ok := registry.Lookup(name)
	if !ok {
		return Resolution{}, swatcherrors.NewUnknownPresetError(name)
	}
	res := resolveDefinition(def, rowLength)
	res.PresetName = name
	return res, nil
}

func resolveDefinition(def preset.Definition, rowLength *int) Resolution {
	res := Resolution{Layout: def.Layout, ShowBorder: def.ShowBorder}
	if def.Swatches.Nested() {
		res.Grid = Grid(def.Swatches.Rows).Clone()
		return res
	}

	length := positive(rowLength)
	if length == 0 {
		length = positive(def.RowLength)
	}
	res.Grid = chunk(def.Swatches.Flat, length)
	return res
}

func chunk(colors []string, size int) Grid {
	if len(colors) == 0 {
		return Grid{}
	}
	if size <= 0 || size >= len(colors) {
		return Grid{append([]string(nil), colors...)}
	}

	rows := make(Grid, 0, (len(colors)+size-1)/size)
	for start := 0; start < len(colors); start += size {
		end := start + size
		if end > len(colors) {
			end = len(colors)
		}
		rows = append(rows, append([]string(nil), colors[start:end]...))
	}
	return rows
}

func positive(v *int) int {
	if v == nil || *v <= 0 {
		return 0
	}
	return *v
}
