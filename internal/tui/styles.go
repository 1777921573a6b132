package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).MarginTop(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(1)
	scrollStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	placeholderFg = lipgloss.Color("240")
	darkInk       = lipgloss.Color("#000000")
	lightInk      = lipgloss.Color("#ffffff")
)
