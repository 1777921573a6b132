package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatches/internal/swatch"
)

// SelectedMsg reports a swatch picked by the user.
type SelectedMsg struct {
	Token string
}

// ConfigureMsg replaces the picker options while the program runs.
type ConfigureMsg struct {
	Options swatch.Options
}

// ModelOption customises a Model.
type ModelOption func(*Model)

// WithTriggerLabel sets the text shown next to the popover trigger.
func WithTriggerLabel(label string) ModelOption {
	return func(m *Model) { m.triggerLabel = label }
}

// Model is the Bubbletea front end of a swatch.Picker. Key presses are
// translated into picker transitions; the picker owns all state that matters.
type Model struct {
	picker *swatch.Picker
	keys   keyMap
	help   help.Model

	rows         [][]cell
	cursorRow    int
	cursorCol    int
	offset       int
	triggerLabel string

	status   string
	width    int
	height   int
	quitting bool
}

// NewModel wraps picker. The cursor starts on the current value when present.
func NewModel(picker *swatch.Picker, opts ...ModelOption) Model {
	m := Model{
		picker: picker,
		keys:   defaultKeyMap().withInline(picker.Options().Inline),
		help:   help.New(),
	}
	for _, apply := range opts {
		apply(&m)
	}
	m.refresh()
	m.focusValue()
	if err := picker.Err(); err != nil {
		m.status = err.Error()
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Value is the color picked so far.
func (m Model) Value() string {
	return m.picker.Value()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Cursor returns the grid coordinates of the highlighted swatch.
func (m Model) Cursor() (row, col int, ok bool) {
	c, ok := m.current()
	if !ok {
		return -1, -1, false
	}
	return c.row, c.col, true
}

func (m Model) current() (cell, bool) {
	if m.cursorRow < 0 || m.cursorRow >= len(m.rows) {
		return cell{}, false
	}
	row := m.rows[m.cursorRow]
	if m.cursorCol < 0 || m.cursorCol >= len(row) {
		return cell{}, false
	}
	return row[m.cursorCol], true
}

// refresh rebuilds the visible cells after the picker re-derived its grid.
func (m *Model) refresh() {
	m.rows = visibleRows(m.picker.Grid())
	m.keys = m.keys.withInline(m.picker.Options().Inline)
	m.clamp()
}

func (m *Model) focusValue() {
	value := m.picker.Value()
	if value == "" {
		return
	}
	for i, row := range m.rows {
		for j, c := range row {
			if m.picker.IsSelected(c.Token) {
				m.cursorRow, m.cursorCol = i, j
				m.scroll()
				return
			}
		}
	}
}

func (m *Model) move(dRow, dCol int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursorRow += dRow
	m.cursorCol += dCol
	m.clamp()
	m.scroll()
}

func (m *Model) clamp() {
	if len(m.rows) == 0 {
		m.cursorRow, m.cursorCol, m.offset = 0, 0, 0
		return
	}
	m.cursorRow = clampInt(m.cursorRow, 0, len(m.rows)-1)
	m.cursorCol = clampInt(m.cursorCol, 0, len(m.rows[m.cursorRow])-1)
}

// scroll keeps the cursor row inside the window allowed by maxHeight.
func (m *Model) scroll() {
	capacity := visibleCapacity(m.picker.Layout(), len(m.rows))
	if m.cursorRow < m.offset {
		m.offset = m.cursorRow
	}
	if m.cursorRow >= m.offset+capacity {
		m.offset = m.cursorRow - capacity + 1
	}
	m.offset = clampInt(m.offset, 0, max(0, len(m.rows)-capacity))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
