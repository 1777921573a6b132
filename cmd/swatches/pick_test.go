package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickFallsBackToTextWithoutTerminal(t *testing.T) {
	stdout, _, err := executeCommand(t, "pick", "--preset", "material-simple", "--value", "#F44336")
	require.NoError(t, err)
	require.Contains(t, stdout, "preset: material-simple")
	require.Contains(t, stdout, "value: #F44336")
}

func TestPickReportsUnknownPreset(t *testing.T) {
	_, _, err := executeCommand(t, "pick", "--preset", "neon")
	require.Error(t, err)
	require.Contains(t, err.Error(), "pick a color")
}
