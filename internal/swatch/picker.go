package swatch

import (
	"errors"

	"github.com/alexisbeaulieu97/swatches/internal/colorkey"
	"github.com/alexisbeaulieu97/swatches/internal/logger"
	"github.com/alexisbeaulieu97/swatches/internal/preset"
)

var (
	// ErrSwatchNotFound is returned when selecting a color absent from the grid.
	ErrSwatchNotFound = errors.New("swatch not in grid")
	// ErrSwatchNotSelectable is returned when selecting a hidden or disabled exception.
	ErrSwatchNotSelectable = errors.New("swatch is an exception")
)

// PopoverSide is the edge the popover opens towards.
type PopoverSide string

const (
	PopoverRight PopoverSide = "right"
	PopoverLeft  PopoverSide = "left"
)

// Options is the full configuration surface of one picker.
type Options struct {
	Colors        ColorsInput
	Exceptions    []string
	ExceptionMode ExceptionMode
	Inline        bool
	CloseOnSelect bool
	// Layout is the explicit tier. RowLength also re-chunks flat colors.
	Layout preset.Layout

	Shape           Shape
	BackgroundColor string
	PopoverTo       PopoverSide
	ShowBorder      *bool
	ShowCheckbox    bool
	Value           string
}

// DefaultOptions returns the stock widget configuration.
func DefaultOptions() Options {
	return Options{
		ExceptionMode:   DefaultExceptionMode,
		CloseOnSelect:   true,
		Shape:           ShapeSquares,
		BackgroundColor: "#ffffff",
		PopoverTo:       PopoverRight,
	}
}

// Listener receives derived state after every change. Implementations must
// not call back into the picker.
type Listener interface {
	GridChanged(grid AnnotatedGrid)
	LayoutChanged(layout Layout)
	VisibilityChanged(visibility Visibility)
	Selected(token string)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnGrid       func(AnnotatedGrid)
	OnLayout     func(Layout)
	OnVisibility func(Visibility)
	OnSelect     func(string)
}

func (f ListenerFuncs) GridChanged(g AnnotatedGrid) {
	if f.OnGrid != nil {
		f.OnGrid(g)
	}
}

func (f ListenerFuncs) LayoutChanged(l Layout) {
	if f.OnLayout != nil {
		f.OnLayout(l)
	}
}

func (f ListenerFuncs) VisibilityChanged(v Visibility) {
	if f.OnVisibility != nil {
		f.OnVisibility(v)
	}
}

func (f ListenerFuncs) Selected(token string) {
	if f.OnSelect != nil {
		f.OnSelect(token)
	}
}

// PickerOption customises a Picker at construction.
type PickerOption func(*Picker)

// WithLogger routes picker diagnostics to log.
func WithLogger(log *logger.Logger) PickerOption {
	return func(p *Picker) { p.log = log }
}

// WithListener registers the receiver of derived state events.
func WithListener(l Listener) PickerOption {
	return func(p *Picker) { p.listener = l }
}

// Picker owns the derived state of one widget instance. It is not safe for
// concurrent use.
type Picker struct {
	registry preset.Registry
	log      *logger.Logger
	listener Listener

	opts       Options
	resolution Resolution
	grid       AnnotatedGrid
	layout     Layout
	popover    *Popover
	value      string
	err        error
}

// NewPicker builds a picker and derives its initial state. On a resolution
// error the picker is still usable, holds an empty grid and the error is returned.
func NewPicker(registry preset.Registry, opts Options, options ...PickerOption) (*Picker, error) {
	p := &Picker{registry: registry}
	for _, apply := range options {
		apply(p)
	}
	p.popover = NewPopover(Machine{Inline: opts.Inline, CloseOnSelect: opts.CloseOnSelect})
	err := p.Configure(opts)
	return p, err
}

// Configure replaces the options and re-derives grid and layout before returning.
func (p *Picker) Configure(opts Options) error {
	opts.ExceptionMode = opts.ExceptionMode.OrDefault()
	if opts.Shape == "" {
		opts.Shape = ShapeSquares
	}
	if opts.PopoverTo == "" {
		opts.PopoverTo = PopoverRight
	}
	p.opts = opts

	wasVisible := p.popover.Visible()
	wasState := p.popover.State()
	p.popover.Reconfigure(Machine{Inline: opts.Inline, CloseOnSelect: opts.CloseOnSelect})

	res, err := Resolve(opts.Colors, p.registry, opts.Layout.RowLength)
	if err != nil {
		res = Resolution{Grid: Grid{}}
		p.log.WithFields(map[string]any{"colors": opts.Colors.String()}).Error(err, "colors could not be resolved")
	}
	p.resolution = res
	p.err = err

	p.grid = Annotate(res.Grid, opts.Exceptions, opts.ExceptionMode)
	defaults := StandardDefaults
	defaults.Shape = opts.Shape
	p.layout = defaults.Compute(opts.Layout, res.Layout, opts.Inline)

	if opts.Value != "" {
		p.value = opts.Value
	}

	p.log.WithFields(map[string]any{
		"colors":     opts.Colors.String(),
		"rows":       len(p.grid),
		"exceptions": len(opts.Exceptions),
		"mode":       string(opts.ExceptionMode),
		"inline":     opts.Inline,
	}).Debug("picker configured")

	if p.listener != nil {
		p.listener.GridChanged(p.grid.Clone())
		p.listener.LayoutChanged(p.Layout())
		if wasVisible != p.popover.Visible() || wasState != p.popover.State() {
			p.listener.VisibilityChanged(p.popover.State())
		}
	}

	return err
}

// Err returns the error from the most recent resolution, if any.
func (p *Picker) Err() error {
	return p.err
}

// Options returns the options in force, with defaults filled in.
func (p *Picker) Options() Options {
	return p.opts
}

// Grid returns a copy of the annotated grid.
func (p *Picker) Grid() AnnotatedGrid {
	return p.grid.Clone()
}

// Layout returns the effective layout.
func (p *Picker) Layout() Layout {
	layout := p.layout
	if layout.MaxHeight != nil {
		h := *layout.MaxHeight
		layout.MaxHeight = &h
	}
	return layout
}

// ContainerHeight is the rendered container height for the current grid.
func (p *Picker) ContainerHeight() int {
	return p.layout.ContainerHeight(p.grid)
}

// PresetName is the registry preset the grid came from, if any.
func (p *Picker) PresetName() string {
	return p.resolution.PresetName
}

// ShowBorder reports whether swatches get a border: explicit option, then preset.
func (p *Picker) ShowBorder() bool {
	if p.opts.ShowBorder != nil {
		return *p.opts.ShowBorder
	}
	if p.resolution.ShowBorder != nil {
		return *p.resolution.ShowBorder
	}
	return false
}

// Visibility returns the popover state.
func (p *Picker) Visibility() Visibility {
	return p.popover.State()
}

// Visible reports whether swatches are shown. Inline pickers always are.
func (p *Picker) Visible() bool {
	return p.popover.Visible()
}

// Value returns the selected color token.
func (p *Picker) Value() string {
	return p.value
}

// IsSelected reports whether token is equivalent to the current value.
func (p *Picker) IsSelected(token string) bool {
	return p.value != "" && colorkey.Equivalent(p.value, token)
}

// Open shows the popover.
func (p *Picker) Open() { p.transition(EventOpen) }

// Close hides the popover.
func (p *Picker) Close() { p.transition(EventClose) }

// Toggle flips the popover.
func (p *Picker) Toggle() { p.transition(EventToggle) }

// OutsideInteraction reports a click or key press outside the picker.
func (p *Picker) OutsideInteraction() { p.transition(EventOutsideInteraction) }

// Select picks token, notifies the listener and applies close-on-select.
func (p *Picker) Select(token string) error {
	cell, _, _, ok := p.grid.Find(token)
	if !ok {
		return ErrSwatchNotFound
	}
	if !cell.Selectable() {
		p.log.With("token", cell.Token).Debug("exception swatch ignored")
		return ErrSwatchNotSelectable
	}

	p.value = cell.Token
	if p.listener != nil {
		p.listener.Selected(cell.Token)
	}
	p.transition(EventSwatchSelected)
	return nil
}

func (p *Picker) transition(ev Event) {
	if p.popover.Machine().Inline {
		p.log.With("event", ev.String()).Debug("popover event ignored in inline mode")
		return
	}
	if !p.popover.Apply(ev) {
		return
	}
	p.log.WithFields(map[string]any{"event": ev.String(), "state": p.popover.State().String()}).Debug("popover transition")
	if p.listener != nil {
		p.listener.VisibilityChanged(p.popover.State())
	}
}
