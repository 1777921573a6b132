package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatches/internal/config"
	"github.com/alexisbeaulieu97/swatches/internal/logger"
	"github.com/alexisbeaulieu97/swatches/internal/preset"
	"github.com/alexisbeaulieu97/swatches/internal/swatch"
)

// session bundles what a picker command needs once flags are parsed.
type session struct {
	log      *logger.Logger
	registry preset.Layered
	options  *config.Options
}

func newLogger(w io.Writer, verbose bool) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w, Component: "swatches"})
}

func loadRegistry(root *rootFlags) (preset.Layered, error) {
	path := root.presetsPath
	if path == "" {
		var err error
		path, err = defaultPresetsPath()
		if err != nil {
			return nil, newCommandError("load presets", "determining the user catalog path", err, "Pass --presets explicitly.")
		}
	}

	registry, err := config.Registry(path)
	if err != nil {
		return nil, newCommandError("load presets", path, err, "Check the catalog file: every preset needs a non-empty swatches list.")
	}
	return registry, nil
}

func newSession(cmd *cobra.Command, root *rootFlags, overrides *pickerFlags) (*session, error) {
	log, err := newLogger(cmd.ErrOrStderr(), root.verbose)
	if err != nil {
		return nil, err
	}

	registry, err := loadRegistry(root)
	if err != nil {
		return nil, err
	}

	opts := config.Default()
	if root.configPath != "" {
		parsed, err := config.ParseOptions(root.configPath)
		if err != nil {
			return nil, newCommandError("load options", root.configPath, err, "Fix the options file and try again.")
		}
		opts = *parsed
	}

	if err := overrides.apply(cmd, &opts); err != nil {
		return nil, newCommandError("apply flags", "command line", err, "Run with --help to see accepted values.")
	}
	if err := config.ValidateOptions(&opts); err != nil {
		return nil, newCommandError("apply flags", "command line", err, "Run with --help to see accepted values.")
	}

	log.WithFields(map[string]any{
		"config":  root.configPath,
		"presets": len(registry.Names()),
		"colors":  opts.Colors.Input.String(),
	}).Debug("session ready")

	return &session{log: log, registry: registry, options: &opts}, nil
}

// picker builds a picker whose state changes are logged.
func (s *session) picker() (*swatch.Picker, error) {
	return swatch.NewPicker(s.registry, s.options.PickerOptions(),
		swatch.WithLogger(s.log),
		swatch.WithListener(loggingListener{log: s.log}),
	)
}
