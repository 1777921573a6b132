package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatches/internal/tui"
)

var pickProgramRunner = runPickProgram

func newPickCmd(root *rootFlags) *cobra.Command {
	overrides := &pickerFlags{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a color interactively",
		Long:  "Pick a color interactively. The chosen color is printed on exit. When stdout is not a terminal the resolved grid is printed instead.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, root, overrides)
			if err != nil {
				return err
			}
			return runPick(cmd, s)
		},
	}

	overrides.register(cmd)

	return cmd
}

func runPick(cmd *cobra.Command, s *session) error {
	picker, err := s.picker()
	if err != nil {
		return newCommandError("pick a color", s.options.Colors.Input.String(), err, "Run 'swatches presets' to list available presets.")
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		s.log.Debug("stdout is not a terminal, printing the resolved grid")
		return renderResolveText(out, picker)
	}

	model := tui.NewModel(picker, tui.WithTriggerLabel(s.options.Trigger))
	final, err := pickProgramRunner(cmd, model)
	if err != nil {
		return newCommandError("pick a color", "running the picker", err, "Make sure the terminal supports interactive programs.")
	}

	if value := final.Value(); value != "" {
		fmt.Fprintln(out, value)
	}
	return nil
}

func runPickProgram(cmd *cobra.Command, model tui.Model) (tui.Model, error) {
	program := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))
	result, err := program.Run()
	if err != nil {
		return model, err
	}
	if m, ok := result.(tui.Model); ok {
		return m, nil
	}
	return model, nil
}
