package config

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatches/internal/preset"
	"github.com/alexisbeaulieu97/swatches/internal/swatch"
	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

// Options is the picker configuration document.
type Options struct {
	Colors        Colors   `yaml:"colors,omitempty"`
	Exceptions    []string `yaml:"exceptions,omitempty" validate:"omitempty,dive,required"`
	ExceptionMode string   `yaml:"exceptionMode,omitempty" validate:"omitempty,oneof=hidden disabled"`
	Inline        bool     `yaml:"inline,omitempty"`
	CloseOnSelect bool     `yaml:"closeOnSelect"`

	preset.Layout `yaml:",inline"`

	Shapes          string `yaml:"shapes,omitempty" validate:"omitempty,oneof=squares circles"`
	BackgroundColor string `yaml:"backgroundColor,omitempty" validate:"omitempty,color_token"`
	PopoverTo       string `yaml:"popoverTo,omitempty" validate:"omitempty,oneof=left right"`
	ShowBorder      *bool  `yaml:"showBorder,omitempty"`
	ShowCheckbox    bool   `yaml:"showCheckbox,omitempty"`
	Value           string `yaml:"value,omitempty"`
	Trigger         string `yaml:"trigger,omitempty" validate:"max=40"`
}

// Default returns the options of an unconfigured picker.
func Default() Options {
	return Options{
		ExceptionMode:   string(swatch.DefaultExceptionMode),
		CloseOnSelect:   true,
		Shapes:          string(swatch.ShapeSquares),
		BackgroundColor: "#ffffff",
		PopoverTo:       string(swatch.PopoverRight),
	}
}

// UnmarshalYAML starts from Default so omitted keys keep their defaults.
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	type rawOptions Options
	raw := rawOptions(Default())
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*o = Options(raw)
	return nil
}

// PickerOptions converts the document into engine options.
func (o Options) PickerOptions() swatch.Options {
	mode, err := swatch.ParseExceptionMode(o.ExceptionMode)
	if err != nil {
		mode = swatch.DefaultExceptionMode
	}
	return swatch.Options{
		Colors:          o.Colors.Input,
		Exceptions:      append([]string(nil), o.Exceptions...),
		ExceptionMode:   mode,
		Inline:          o.Inline,
		CloseOnSelect:   o.CloseOnSelect,
		Layout:          o.Layout.Clone(),
		Shape:           swatch.Shape(o.Shapes),
		BackgroundColor: o.BackgroundColor,
		PopoverTo:       swatch.PopoverSide(o.PopoverTo),
		ShowBorder:      o.ShowBorder,
		ShowCheckbox:    o.ShowCheckbox,
		Value:           o.Value,
	}
}

// Colors decodes the colors key into the engine's tagged union.
type Colors struct {
	Input swatch.ColorsInput
}

// UnmarshalYAML classifies the node: scalar as preset name, sequence as flat
// or nested colors, mapping as an inline preset.
func (c *Colors) UnmarshalYAML(value *yaml.Node) error {
	node := value
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			c.Input = swatch.ColorsInput{}
			return nil
		}
		if strings.TrimSpace(node.Value) == "" {
			return swatcherrors.NewInvalidColorsInputError("empty preset name", nil)
		}
		c.Input = swatch.Named(node.Value)
		return nil
	case yaml.SequenceNode:
		flat, rows, err := preset.DecodeColorSequence(node)
		if err != nil {
			return err
		}
		if rows != nil {
			c.Input = swatch.Nested(rows...)
		} else {
			c.Input = swatch.Flat(flat...)
		}
		return nil
	case yaml.MappingNode:
		if !hasYAMLKey(node, "swatches") {
			return swatcherrors.NewInvalidColorsInputError("preset object has no swatches", nil)
		}
		var def preset.Definition
		if err := node.Decode(&def); err != nil {
			return err
		}
		c.Input = swatch.Inline(def)
		return nil
	default:
		return swatcherrors.NewInvalidColorsInputError("unsupported YAML node for colors", nil)
	}
}

// MarshalYAML writes the input back in the shape it was read.
func (c Colors) MarshalYAML() (any, error) {
	switch c.Input.Kind() {
	case swatch.InputName:
		return c.Input.Name(), nil
	case swatch.InputPreset:
		return c.Input.Definition(), nil
	case swatch.InputFlat, swatch.InputNested:
		res, err := swatch.Resolve(c.Input, nil, nil)
		if err != nil {
			return nil, err
		}
		if c.Input.Kind() == swatch.InputFlat {
			return res.Grid.Flatten(), nil
		}
		return [][]string(res.Grid), nil
	default:
		return nil, nil
	}
}

// IsZero lets omitempty drop unset colors.
func (c Colors) IsZero() bool {
	return c.Input.Kind() == swatch.InputUnset
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		if strings.EqualFold(k.Value, key) {
			return true
		}
	}
	return false
}
