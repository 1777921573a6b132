package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatches/internal/colorkey"
	"github.com/alexisbeaulieu97/swatches/internal/swatch"
)

// Terminal cells are much coarser than pixels; one column stands for this many.
const pixelsPerColumn = 7

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	opts := m.picker.Options()
	var sections []string

	if opts.Inline {
		sections = append(sections, m.renderContainer())
	} else {
		trigger := m.renderTrigger()
		if m.picker.Visible() {
			container := m.renderContainer()
			if opts.PopoverTo == swatch.PopoverLeft {
				sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, container, " ", trigger))
			} else {
				sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, trigger, " ", container))
			}
		} else {
			sections = append(sections, trigger)
		}
	}

	if m.status != "" {
		if m.picker.Err() != nil {
			sections = append(sections, errorStyle.Render(m.status))
		} else {
			sections = append(sections, statusStyle.Render(m.status))
		}
	}
	sections = append(sections, statusStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTrigger() string {
	layout := m.picker.Layout()
	width := cellWidth(layout)
	value := m.picker.Value()

	var face string
	switch {
	case value == "":
		face = lipgloss.NewStyle().Width(width).Foreground(placeholderFg).Render(strings.Repeat("╱", width))
	case m.picker.Options().Shape == swatch.ShapeCircles:
		face = lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(lipgloss.Color(hexOf(value))).Render("●")
	default:
		face = lipgloss.NewStyle().Width(width).Background(lipgloss.Color(hexOf(value))).Render("")
	}

	label := m.triggerLabel
	if label == "" {
		label = "▾"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, face, labelStyle.Render(label))
}

func (m Model) renderContainer() string {
	opts := m.picker.Options()
	layout := m.picker.Layout()
	width := cellWidth(layout)
	gap := gapWidth(layout, width)
	capacity := visibleCapacity(layout, len(m.rows))

	end := min(len(m.rows), m.offset+capacity)
	lines := make([]string, 0, end-m.offset+2)
	if m.offset > 0 {
		lines = append(lines, scrollStyle.Render("▲"))
	}
	for i := m.offset; i < end; i++ {
		cells := make([]string, 0, len(m.rows[i]))
		for j, c := range m.rows[i] {
			focused := i == m.cursorRow && j == m.cursorCol
			cells = append(cells, m.renderSwatch(c, layout, width, focused))
		}
		lines = append(lines, strings.Join(cells, strings.Repeat(" ", gap)))
	}
	if end < len(m.rows) {
		lines = append(lines, scrollStyle.Render("▼"))
	}
	if len(m.rows) == 0 {
		lines = append(lines, scrollStyle.Render("no colors"))
	}

	container := lipgloss.NewStyle().
		Background(lipgloss.Color(hexOf(opts.BackgroundColor))).
		Padding(0, 1)
	if m.picker.ShowBorder() {
		border := lipgloss.NormalBorder()
		if layout.Rounded() {
			border = lipgloss.RoundedBorder()
		}
		container = container.Border(border).BorderForeground(placeholderFg)
	}
	return container.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderSwatch(c cell, layout swatch.Layout, width int, focused bool) string {
	glyph := " "
	switch {
	case c.Disposition == swatch.DispositionDisabled:
		glyph = "✕"
	case m.picker.Options().ShowCheckbox && m.picker.IsSelected(c.Token):
		glyph = "✓"
	case focused:
		glyph = "•"
	}

	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	parsed, ok := colorkey.Parse(c.Token)
	if !ok {
		if glyph == " " {
			glyph = "?"
		}
		style = style.Foreground(placeholderFg)
	} else if layout.Rounded() {
		if glyph == " " {
			glyph = "●"
		}
		style = style.Foreground(lipgloss.Color(parsed.Hex()))
	} else {
		style = style.Background(lipgloss.Color(parsed.Hex())).Foreground(inkFor(c.Token))
	}
	if focused {
		style = style.Underline(true).Bold(true)
	}
	if c.Disposition == swatch.DispositionDisabled {
		style = style.Faint(true)
	}
	return style.Render(glyph)
}

// cellWidth scales the swatch size down to terminal columns.
func cellWidth(layout swatch.Layout) int {
	return clampInt(int(math.Round(float64(layout.SwatchSize)/pixelsPerColumn)), 2, 8)
}

func gapWidth(layout swatch.Layout, width int) int {
	if layout.SpacingSize <= 0 || layout.SwatchSize <= 0 {
		return 0
	}
	return clampInt(layout.SpacingSize*width/layout.SwatchSize, 1, 3)
}

// visibleCapacity is how many rows fit under the layout's height cap.
func visibleCapacity(layout swatch.Layout, rows int) int {
	if layout.MaxHeight == nil || rows == 0 {
		return max(rows, 1)
	}
	step := layout.SwatchSize + layout.SpacingSize
	if step <= 0 {
		return max(rows, 1)
	}
	fit := (*layout.MaxHeight - layout.SpacingSize) / step
	return clampInt(fit, 1, max(rows, 1))
}

func hexOf(token string) string {
	if c, ok := colorkey.Parse(token); ok {
		return c.Hex()
	}
	return ""
}

// inkFor picks black or white text for legibility on token.
func inkFor(token string) lipgloss.Color {
	c, ok := colorkey.Parse(token)
	if !ok {
		return placeholderFg
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return darkInk
	}
	return lightInk
}

// Describe renders the grid as plain text for non-interactive output.
func Describe(picker *swatch.Picker) string {
	var b strings.Builder
	layout := picker.Layout()
	maxHeight := "none"
	if layout.MaxHeight != nil {
		maxHeight = fmt.Sprintf("%d", *layout.MaxHeight)
	}
	fmt.Fprintf(&b, "swatchSize=%d spacingSize=%d borderRadius=%s maxHeight=%s height=%d\n",
		layout.SwatchSize, layout.SpacingSize, layout.BorderRadius, maxHeight, picker.ContainerHeight())
	for _, row := range picker.Grid() {
		tokens := make([]string, 0, len(row))
		for _, a := range row {
			switch a.Disposition {
			case swatch.DispositionHidden:
				tokens = append(tokens, "("+a.Token+")")
			case swatch.DispositionDisabled:
				tokens = append(tokens, "!"+a.Token)
			default:
				tokens = append(tokens, a.Token)
			}
		}
		b.WriteString(strings.Join(tokens, " "))
		b.WriteString("\n")
	}
	return b.String()
}
