package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatches/internal/swatch"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case ConfigureMsg:
		if err := m.picker.Configure(msg.Options); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
		m.refresh()
		m.scroll()
		return m, nil
	case SelectedMsg:
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		m.picker.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Outside):
		m.picker.OutsideInteraction()
		return m, nil
	}

	if !m.picker.Visible() {
		// The trigger is the only focusable element while closed.
		if key.Matches(msg, m.keys.Select) {
			m.picker.Open()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Select):
		return m.selectCurrent()
	}
	return m, nil
}

func (m Model) selectCurrent() (tea.Model, tea.Cmd) {
	c, ok := m.current()
	if !ok {
		return m, nil
	}

	err := m.picker.Select(c.Token)
	switch {
	case errors.Is(err, swatch.ErrSwatchNotSelectable):
		m.status = fmt.Sprintf("%s is not available", c.Token)
		return m, nil
	case err != nil:
		m.status = err.Error()
		return m, nil
	}

	m.status = fmt.Sprintf("picked %s", c.Token)
	token := c.Token
	return m, func() tea.Msg { return SelectedMsg{Token: token} }
}
