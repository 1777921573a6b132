package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatches/internal/config"
	"github.com/alexisbeaulieu97/swatches/internal/swatch"
	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

// pickerFlags holds per-command overrides. Only flags the user set replace
// values from the options file.
type pickerFlags struct {
	presetName    string
	colors        string
	exceptions    []string
	exceptionMode string
	inline        bool
	closeOnSelect bool
	rowLength     int
	swatchSize    int
	spacingSize   int
	maxHeight     int
	borderRadius  string
	shapes        string
	popoverTo     string
	background    string
	showBorder    bool
	showCheckbox  bool
	value         string
	trigger       string
}

func (f *pickerFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.presetName, "preset", "p", "", "Preset name from the catalog")
	flags.StringVar(&f.colors, "colors", "", "Comma separated colors; separate rows with ';'")
	flags.StringSliceVarP(&f.exceptions, "exceptions", "x", nil, "Colors to treat as exceptions")
	flags.StringVar(&f.exceptionMode, "exception-mode", "", "How exceptions are shown: hidden or disabled")
	flags.BoolVar(&f.inline, "inline", false, "Render the grid inline instead of in a popover")
	flags.BoolVar(&f.closeOnSelect, "close-on-select", true, "Close the popover after a pick")
	flags.IntVar(&f.rowLength, "row-length", 0, "Swatches per row for flat colors")
	flags.IntVar(&f.swatchSize, "swatch-size", 0, "Swatch size in pixels")
	flags.IntVar(&f.spacingSize, "spacing-size", 0, "Spacing between swatches in pixels")
	flags.IntVar(&f.maxHeight, "max-height", 0, "Maximum popover height in pixels")
	flags.StringVar(&f.borderRadius, "border-radius", "", "Swatch border radius, e.g. 4px or 50%")
	flags.StringVar(&f.shapes, "shapes", "", "Swatch shape: squares or circles")
	flags.StringVar(&f.popoverTo, "popover-to", "", "Side the popover opens to: left or right")
	flags.StringVar(&f.background, "background-color", "", "Popover background color")
	flags.BoolVar(&f.showBorder, "show-border", false, "Draw a border around the swatches")
	flags.BoolVar(&f.showCheckbox, "show-checkbox", false, "Mark the selected swatch")
	flags.StringVar(&f.value, "value", "", "Initially selected color")
	flags.StringVar(&f.trigger, "trigger", "", "Label shown next to the popover trigger")
	cmd.MarkFlagsMutuallyExclusive("preset", "colors")
}

func (f *pickerFlags) apply(cmd *cobra.Command, opts *config.Options) error {
	flags := cmd.Flags()

	if flags.Changed("preset") {
		if strings.TrimSpace(f.presetName) == "" {
			return swatcherrors.NewInvalidColorsInputError("empty preset name", nil)
		}
		opts.Colors = config.Colors{Input: swatch.Named(f.presetName)}
	}
	if flags.Changed("colors") {
		input, err := parseColorsFlag(f.colors)
		if err != nil {
			return err
		}
		opts.Colors = config.Colors{Input: input}
	}
	if flags.Changed("exceptions") {
		opts.Exceptions = append([]string(nil), f.exceptions...)
	}
	if flags.Changed("exception-mode") {
		opts.ExceptionMode = f.exceptionMode
	}
	if flags.Changed("inline") {
		opts.Inline = f.inline
	}
	if flags.Changed("close-on-select") {
		opts.CloseOnSelect = f.closeOnSelect
	}
	if flags.Changed("row-length") {
		opts.RowLength = intValue(f.rowLength)
	}
	if flags.Changed("swatch-size") {
		opts.SwatchSize = intValue(f.swatchSize)
	}
	if flags.Changed("spacing-size") {
		opts.SpacingSize = intValue(f.spacingSize)
	}
	if flags.Changed("max-height") {
		opts.MaxHeight = intValue(f.maxHeight)
	}
	if flags.Changed("border-radius") {
		radius := f.borderRadius
		opts.BorderRadius = &radius
	}
	if flags.Changed("shapes") {
		opts.Shapes = f.shapes
	}
	if flags.Changed("popover-to") {
		opts.PopoverTo = f.popoverTo
	}
	if flags.Changed("background-color") {
		opts.BackgroundColor = f.background
	}
	if flags.Changed("show-border") {
		show := f.showBorder
		opts.ShowBorder = &show
	}
	if flags.Changed("show-checkbox") {
		opts.ShowCheckbox = f.showCheckbox
	}
	if flags.Changed("value") {
		opts.Value = f.value
	}
	if flags.Changed("trigger") {
		opts.Trigger = f.trigger
	}

	return nil
}

// parseColorsFlag reads "a,b,c" as flat colors and "a,b;c,d" as rows.
func parseColorsFlag(raw string) (swatch.ColorsInput, error) {
	rowsRaw := strings.Split(raw, ";")
	rows := make([][]string, 0, len(rowsRaw))
	for _, r := range rowsRaw {
		var row []string
		for _, token := range strings.Split(r, ",") {
			if token = strings.TrimSpace(token); token != "" {
				row = append(row, token)
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	switch {
	case len(rows) == 0:
		return swatch.ColorsInput{}, swatcherrors.NewInvalidColorsInputError("no colors given", nil)
	case len(rowsRaw) > 1:
		return swatch.Nested(rows...), nil
	default:
		return swatch.Flat(rows[0]...), nil
	}
}

func intValue(v int) *int {
	return &v
}
