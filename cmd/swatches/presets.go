package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatches/internal/preset"
	"github.com/alexisbeaulieu97/swatches/internal/swatch"
)

type presetsOptions struct {
	jsonOutput bool
}

func newPresetsCmd(root *rootFlags) *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:     "presets",
		Short:   "List the preset catalog",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type presetSummary struct {
	Name       string        `json:"name"`
	Colors     int           `json:"colors"`
	Rows       int           `json:"rows"`
	Nested     bool          `json:"nested"`
	Layout     preset.Layout `json:"layout"`
	ShowBorder bool          `json:"showBorder"`
}

func runPresets(cmd *cobra.Command, root *rootFlags, opts *presetsOptions) error {
	registry, err := loadRegistry(root)
	if err != nil {
		return err
	}

	summaries := summarizePresets(registry)
	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(summaries)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tCOLORS\tROWS\tSIZE\tMAX HEIGHT\tBORDER")
	for _, s := range summaries {
		fmt.Fprintf(writer, "%s\t%d\t%d\t%s\t%s\t%t\n",
			s.Name,
			s.Colors,
			s.Rows,
			intOrDash(s.Layout.SwatchSize),
			intOrDash(s.Layout.MaxHeight),
			s.ShowBorder,
		)
	}
	return writer.Flush()
}

func summarizePresets(registry preset.Layered) []presetSummary {
	names := registry.Names()
	summaries := make([]presetSummary, 0, len(names))
	for _, name := range names {
		def, ok := registry.Lookup(name)
		if !ok {
			continue
		}
		res, err := swatch.Resolve(swatch.Named(name), registry, nil)
		if err != nil {
			continue
		}
		summaries = append(summaries, presetSummary{
			Name:       name,
			Colors:     def.Swatches.Len(),
			Rows:       len(res.Grid),
			Nested:     def.Swatches.Nested(),
			Layout:     def.Layout,
			ShowBorder: def.ShowBorder != nil && *def.ShowBorder,
		})
	}
	return summaries
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
