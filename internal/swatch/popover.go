package swatch

import "fmt"

// Visibility is the popover state.
type Visibility int

const (
	Closed Visibility = iota
	Open
)

func (v Visibility) String() string {
	switch v {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Event is an interaction the popover reacts to.
type Event int

const (
	EventOpen Event = iota
	EventClose
	EventToggle
	EventSwatchSelected
	EventOutsideInteraction
)

func (e Event) String() string {
	switch e {
	case EventOpen:
		return "open"
	case EventClose:
		return "close"
	case EventToggle:
		return "toggle"
	case EventSwatchSelected:
		return "swatch-selected"
	case EventOutsideInteraction:
		return "outside-interaction"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Machine holds the rules of the popover. Next is pure.
type Machine struct {
	Inline        bool
	CloseOnSelect bool
}

// Next returns the state that follows current after ev. Inline machines never move.
func (m Machine) Next(current Visibility, ev Event) Visibility {
	if m.Inline {
		return current
	}

	switch ev {
	case EventOpen:
		return Open
	case EventClose, EventOutsideInteraction:
		return Closed
	case EventToggle:
		if current == Open {
			return Closed
		}
		return Open
	case EventSwatchSelected:
		if m.CloseOnSelect {
			return Closed
		}
		return current
	default:
		return current
	}
}

// Popover applies a Machine to a stored state, starting Closed.
type Popover struct {
	machine Machine
	state   Visibility
}

// NewPopover returns a closed popover governed by m.
func NewPopover(m Machine) *Popover {
	return &Popover{machine: m, state: Closed}
}

// State returns the stored visibility.
func (p *Popover) State() Visibility {
	return p.state
}

// Visible reports whether swatches are on screen. Inline popovers always are.
func (p *Popover) Visible() bool {
	return p.machine.Inline || p.state == Open
}

// Machine returns the rules currently in force.
func (p *Popover) Machine() Machine {
	return p.machine
}

// Reconfigure swaps the rules. Switching to inline resets the state to Closed.
func (p *Popover) Reconfigure(m Machine) {
	if m.Inline {
		p.state = Closed
	}
	p.machine = m
}

// Apply feeds ev through the machine and reports whether the state changed.
func (p *Popover) Apply(ev Event) bool {
	next := p.machine.Next(p.state, ev)
	changed := next != p.state
	p.state = next
	return changed
}

func (p *Popover) Open() bool                 { return p.Apply(EventOpen) }
func (p *Popover) Close() bool                { return p.Apply(EventClose) }
func (p *Popover) Toggle() bool               { return p.Apply(EventToggle) }
func (p *Popover) OnSwatchSelected() bool     { return p.Apply(EventSwatchSelected) }
func (p *Popover) OnOutsideInteraction() bool { return p.Apply(EventOutsideInteraction) }
