package swatch

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatches/internal/preset"
	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

// InputKind discriminates the accepted shapes of the colors option.
type InputKind int

const (
	// InputUnset falls back to the default preset.
	InputUnset InputKind = iota
	// InputName refers to a preset in the registry.
	InputName
	// InputFlat is a single list of colors.
	InputFlat
	// InputNested is a list of rows of colors.
	InputNested
	// InputPreset is a preset definition supplied inline.
	InputPreset
)

func (k InputKind) String() string {
	switch k {
	case InputUnset:
		return "unset"
	case InputName:
		return "name"
	case InputFlat:
		return "flat"
	case InputNested:
		return "nested"
	case InputPreset:
		return "preset"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// ColorsInput is the colors option as a tagged union. The zero value is InputUnset.
type ColorsInput struct {
	kind   InputKind
	name   string
	flat   []string
	rows   [][]string
	inline preset.Definition
}

// Named selects a preset from the registry by name.
func Named(name string) ColorsInput {
	return ColorsInput{kind: InputName, name: name}
}

// Flat supplies a single list of colors.
func Flat(colors ...string) ColorsInput {
	if colors == nil {
		colors = []string{}
	}
	return ColorsInput{kind: InputFlat, flat: colors}
}

// Nested supplies colors already arranged in rows.
func Nested(rows ...[]string) ColorsInput {
	if rows == nil {
		rows = [][]string{}
	}
	return ColorsInput{kind: InputNested, rows: rows}
}

// Inline supplies a preset definition without registering it.
func Inline(def preset.Definition) ColorsInput {
	return ColorsInput{kind: InputPreset, inline: def}
}

// Kind reports which shape the input holds.
func (c ColorsInput) Kind() InputKind {
	return c.kind
}

// Name returns the preset name for InputName inputs.
func (c ColorsInput) Name() string {
	return c.name
}

// Definition returns the inline preset for InputPreset inputs.
func (c ColorsInput) Definition() preset.Definition {
	return c.inline
}

func (c ColorsInput) String() string {
	switch c.kind {
	case InputName:
		return c.name
	case InputFlat:
		return fmt.Sprintf("flat(%d)", len(c.flat))
	case InputNested:
		return fmt.Sprintf("nested(%d rows)", len(c.rows))
	case InputPreset:
		return fmt.Sprintf("preset(%d)", c.inline.Swatches.Len())
	default:
		return "unset"
	}
}

// Classify turns a dynamically typed colors value into a ColorsInput.
// Accepted: nil, string, []string, [][]string, []any holding only strings or
// only string lists, preset.Definition, and map[string]any with a swatches key.
func Classify(v any) (ColorsInput, error) {
	switch value := v.(type) {
	case nil:
		return ColorsInput{}, nil
	case ColorsInput:
		return value, nil
	case string:
		if strings.TrimSpace(value) == "" {
			return ColorsInput{}, swatcherrors.NewInvalidColorsInputError("empty preset name", nil)
		}
		return Named(value), nil
	case []string:
		return Flat(value...), nil
	case [][]string:
		return Nested(value...), nil
	case preset.Definition:
		return Inline(value), nil
	case *preset.Definition:
		if value == nil {
			return ColorsInput{}, nil
		}
		return Inline(*value), nil
	case []any:
		flat, rows, err := classifySequence(value)
		if err != nil {
			return ColorsInput{}, err
		}
		if rows != nil {
			return Nested(rows...), nil
		}
		return Flat(flat...), nil
	case map[string]any:
		def, err := classifyPresetObject(value)
		if err != nil {
			return ColorsInput{}, err
		}
		return Inline(def), nil
	default:
		return ColorsInput{}, swatcherrors.NewInvalidColorsInputError(fmt.Sprintf("unsupported type %T", v), nil)
	}
}

func classifySequence(items []any) ([]string, [][]string, error) {
	if len(items) == 0 {
		return []string{}, nil, nil
	}

	switch items[0].(type) {
	case string:
		flat := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, nil, swatcherrors.NewInvalidColorsInputError(fmt.Sprintf("colors[%d] is %T, expected a color string", i, item), nil)
			}
			flat = append(flat, s)
		}
		return flat, nil, nil
	case []any, []string:
		rows := make([][]string, 0, len(items))
		for i, item := range items {
			row, err := classifyRow(i, item)
			if err != nil {
				return nil, nil, err
			}
			rows = append(rows, row)
		}
		return nil, rows, nil
	default:
		return nil, nil, swatcherrors.NewInvalidColorsInputError(fmt.Sprintf("colors[0] is %T", items[0]), nil)
	}
}

func classifyRow(index int, item any) ([]string, error) {
	switch row := item.(type) {
	case []string:
		return append([]string(nil), row...), nil
	case []any:
		out := make([]string, 0, len(row))
		for j, cell := range row {
			s, ok := cell.(string)
			if !ok {
				return nil, swatcherrors.NewInvalidColorsInputError(fmt.Sprintf("colors[%d][%d] is %T, expected a color string", index, j, cell), nil)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, swatcherrors.NewInvalidColorsInputError(fmt.Sprintf("colors[%d] is %T, expected a row", index, item), nil)
	}
}

func classifyPresetObject(obj map[string]any) (preset.Definition, error) {
	raw, ok := obj["swatches"]
	if !ok {
		return preset.Definition{}, swatcherrors.NewInvalidColorsInputError("preset object has no swatches", nil)
	}

	var def preset.Definition
	switch swatches := raw.(type) {
	case []string:
		def.Swatches = preset.FlatSwatches(swatches...)
	case [][]string:
		def.Swatches = preset.RowSwatches(swatches...)
	case []any:
		flat, rows, err := classifySequence(swatches)
		if err != nil {
			return preset.Definition{}, err
		}
		if rows != nil {
			def.Swatches = preset.RowSwatches(rows...)
		} else {
			def.Swatches = preset.FlatSwatches(flat...)
		}
	default:
		return preset.Definition{}, swatcherrors.NewInvalidColorsInputError(fmt.Sprintf("swatches is %T", raw), nil)
	}

	var err error
	if def.BorderRadius, err = optionalString(obj, "borderRadius"); err != nil {
		return preset.Definition{}, err
	}
	if def.RowLength, err = optionalInt(obj, "rowLength"); err != nil {
		return preset.Definition{}, err
	}
	if def.SwatchSize, err = optionalInt(obj, "swatchSize"); err != nil {
		return preset.Definition{}, err
	}
	if def.SpacingSize, err = optionalInt(obj, "spacingSize"); err != nil {
		return preset.Definition{}, err
	}
	if def.MaxHeight, err = optionalInt(obj, "maxHeight"); err != nil {
		return preset.Definition{}, err
	}
	if v, ok := obj["showBorder"].(bool); ok {
		def.ShowBorder = &v
	}

	return def, nil
}

func optionalString(obj map[string]any, key string) (*string, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case string:
		return &v, nil
	case int:
		s := fmt.Sprintf("%dpx", v)
		if v == 0 {
			s = "0"
		}
		return &s, nil
	case float64:
		s := fmt.Sprintf("%gpx", v)
		if v == 0 {
			s = "0"
		}
		return &s, nil
	default:
		return nil, swatcherrors.NewInvalidColorsInputError(fmt.Sprintf("%s is %T", key, raw), nil)
	}
}

func optionalInt(obj map[string]any, key string) (*int, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case int:
		return &v, nil
	case float64:
		n := int(v)
		if float64(n) != v {
			return nil, swatcherrors.NewInvalidColorsInputError(fmt.Sprintf("%s must be a whole number", key), nil)
		}
		return &n, nil
	default:
		return nil, swatcherrors.NewInvalidColorsInputError(fmt.Sprintf("%s is %T", key, raw), nil)
	}
}
