package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose     bool
	configPath  string
	presetsPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatches",
		Short:         "Swatches resolves color grids and lets you pick one color",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a picker options file")
	cmd.PersistentFlags().StringVar(&flags.presetsPath, "presets", "", "Path to a preset catalog layered over the built-in presets")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newPresetsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
