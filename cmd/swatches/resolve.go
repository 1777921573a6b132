package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatches/internal/swatch"
	"github.com/alexisbeaulieu97/swatches/internal/tui"
)

type resolveOptions struct {
	jsonOutput bool
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	overrides := &pickerFlags{}
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved swatch grid and layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, root, overrides)
			if err != nil {
				return err
			}

			picker, err := s.picker()
			if err != nil {
				return newCommandError("resolve colors", s.options.Colors.Input.String(), err, "Run 'swatches presets' to list available presets.")
			}

			if opts.jsonOutput {
				return renderResolveJSON(cmd.OutOrStdout(), picker)
			}
			return renderResolveText(cmd.OutOrStdout(), picker)
		},
	}

	overrides.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderResolveText(w io.Writer, picker *swatch.Picker) error {
	if name := picker.PresetName(); name != "" {
		if _, err := fmt.Fprintf(w, "preset: %s\n", name); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, tui.Describe(picker)); err != nil {
		return err
	}
	if value := picker.Value(); value != "" {
		_, err := fmt.Fprintf(w, "value: %s\n", value)
		return err
	}
	return nil
}

type resolveJSONPayload struct {
	Version         string               `json:"version"`
	Preset          string               `json:"preset,omitempty"`
	Grid            swatch.AnnotatedGrid `json:"grid"`
	Layout          swatch.Layout        `json:"layout"`
	ContainerHeight int                  `json:"containerHeight"`
	Inline          bool                 `json:"inline"`
	Visible         bool                 `json:"visible"`
	ShowBorder      bool                 `json:"showBorder"`
	Value           string               `json:"value,omitempty"`
}

func renderResolveJSON(w io.Writer, picker *swatch.Picker) error {
	grid := picker.Grid()
	if grid == nil {
		grid = swatch.AnnotatedGrid{}
	}

	payload := resolveJSONPayload{
		Version:         "1.0",
		Preset:          picker.PresetName(),
		Grid:            grid,
		Layout:          picker.Layout(),
		ContainerHeight: picker.ContainerHeight(),
		Inline:          picker.Options().Inline,
		Visible:         picker.Visible(),
		ShowBorder:      picker.ShowBorder(),
		Value:           picker.Value(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
