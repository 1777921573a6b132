package swatch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatches/internal/logger"
	"github.com/alexisbeaulieu97/swatches/internal/preset"
	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

type recorder struct {
	grids      []AnnotatedGrid
	layouts    []Layout
	visibility []Visibility
	selections []string
}

func (r *recorder) GridChanged(g AnnotatedGrid)    { r.grids = append(r.grids, g) }
func (r *recorder) LayoutChanged(l Layout)         { r.layouts = append(r.layouts, l) }
func (r *recorder) VisibilityChanged(v Visibility) { r.visibility = append(r.visibility, v) }
func (r *recorder) Selected(token string)          { r.selections = append(r.selections, token) }

func newTestPicker(t *testing.T, opts Options) (*Picker, *recorder) {
	t.Helper()

	rec := &recorder{}
	p, err := NewPicker(preset.Builtin(), opts, WithListener(rec), WithLogger(logger.Nop()))
	require.NoError(t, err)
	return p, rec
}

func TestPickerDefaultPresetGrid(t *testing.T) {
	t.Parallel()

	p, rec := newTestPicker(t, DefaultOptions())
	require.Equal(t, preset.DefaultName, p.PresetName())
	require.Equal(t, preset.Builtin()[preset.DefaultName].Swatches.Flat, p.Grid().Tokens().Flatten())
	require.Len(t, rec.grids, 1)
	require.Len(t, rec.layouts, 1)
	require.Equal(t, 300, *p.Layout().MaxHeight)
	require.Positive(t, p.ContainerHeight())
	require.Equal(t, Closed, p.Visibility())
	require.False(t, p.Visible())
}

func TestPickerMaterialSimpleEndToEnd(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Colors = Named("material-simple")
	p, _ := newTestPicker(t, opts)

	require.Equal(t, preset.Builtin()["material-simple"].Swatches.Flat, p.Grid().Tokens().Flatten())
}

func TestPickerHiddenExceptionEndToEnd(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Colors = Flat("#e31432", "#a156e2", "#eca23e")
	opts.Exceptions = []string{"#E31432"}
	opts.ExceptionMode = ExceptionHidden
	p, _ := newTestPicker(t, opts)

	var hidden []Annotation
	for _, row := range p.Grid() {
		for _, cell := range row {
			if cell.Disposition == DispositionHidden {
				hidden = append(hidden, cell)
			}
		}
	}
	require.Len(t, hidden, 1)
	require.Equal(t, "#e31432", hidden[0].Token)
}

func TestPickerDefaultExceptionModeIsDisabled(t *testing.T) {
	t.Parallel()

	p, _ := newTestPicker(t, Options{Colors: Flat("#fff"), Exceptions: []string{"#FFF"}})
	require.Equal(t, ExceptionDisabled, p.Options().ExceptionMode)
	require.Equal(t, DispositionDisabled, p.Grid()[0][0].Disposition)
}

func TestPickerCloseOnSelect(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Colors = Flat("#e31432", "#a156e2")
	p, rec := newTestPicker(t, opts)

	p.Open()
	require.True(t, p.Visible())
	require.NoError(t, p.Select("#A156E2"))
	require.Equal(t, Closed, p.Visibility())
	require.Equal(t, "#a156e2", p.Value())
	require.True(t, p.IsSelected("#A156E2"))
	require.Equal(t, []string{"#a156e2"}, rec.selections)
	require.Equal(t, []Visibility{Open, Closed}, rec.visibility)
}

func TestPickerKeepsOpenWithoutCloseOnSelect(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Colors = Flat("#e31432")
	opts.CloseOnSelect = false
	p, rec := newTestPicker(t, opts)

	p.Open()
	require.NoError(t, p.Select("#e31432"))
	require.Equal(t, Open, p.Visibility())
	require.Equal(t, []Visibility{Open}, rec.visibility)
}

func TestPickerRejectsExceptionAndUnknownSelections(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Colors = Flat("#e31432", "#a156e2")
	opts.Exceptions = []string{"#e31432"}
	p, rec := newTestPicker(t, opts)
	p.Open()

	require.ErrorIs(t, p.Select("#E31432"), ErrSwatchNotSelectable)
	require.ErrorIs(t, p.Select("#000000"), ErrSwatchNotFound)
	require.Empty(t, p.Value())
	require.Empty(t, rec.selections)
	require.Equal(t, Open, p.Visibility())
}

func TestPickerOutsideInteraction(t *testing.T) {
	t.Parallel()

	p, rec := newTestPicker(t, DefaultOptions())
	p.OutsideInteraction()
	require.Empty(t, rec.visibility)

	p.Toggle()
	p.OutsideInteraction()
	require.Equal(t, Closed, p.Visibility())
	require.Equal(t, []Visibility{Open, Closed}, rec.visibility)
}

func TestPickerInlineIsInert(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Inline = true
	opts.Layout.MaxHeight = intp(120)
	rec := &recorder{}
	p, err := NewPicker(preset.Builtin(), opts, WithListener(rec), WithLogger(log))
	require.NoError(t, err)

	p.Open()
	p.Toggle()
	p.Close()
	require.True(t, p.Visible())
	require.Empty(t, rec.visibility)
	require.Nil(t, p.Layout().MaxHeight)
	require.Contains(t, buf.String(), "ignored in inline mode")

	require.NoError(t, p.Select(p.Grid()[0][0].Token))
	require.Empty(t, rec.visibility)
}

func TestPickerReconfigureRederives(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Colors = Flat("#e31432", "#a156e2")
	p, rec := newTestPicker(t, opts)
	p.Open()

	opts.Exceptions = []string{"#a156e2"}
	opts.ExceptionMode = ExceptionHidden
	opts.Layout.MaxHeight = intp(250)
	require.NoError(t, p.Configure(opts))
	require.Equal(t, DispositionHidden, p.Grid()[0][1].Disposition)
	require.Equal(t, 250, *p.Layout().MaxHeight)
	require.Len(t, rec.grids, 2)
	require.Equal(t, DispositionHidden, rec.grids[1][0][1].Disposition)

	opts.Inline = true
	require.NoError(t, p.Configure(opts))
	require.Nil(t, p.Layout().MaxHeight)
	require.Equal(t, Closed, p.Visibility())
	require.Equal(t, []Visibility{Open, Closed}, rec.visibility)
}

func TestPickerUnknownPresetLeavesEmptyGrid(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Colors = Named("neon")
	rec := &recorder{}
	p, err := NewPicker(preset.Builtin(), opts, WithListener(rec))
	require.ErrorIs(t, err, swatcherrors.ErrUnknownPreset)
	require.ErrorIs(t, p.Err(), swatcherrors.ErrUnknownPreset)
	require.Empty(t, p.Grid())
	require.Len(t, rec.grids, 1)
	require.Empty(t, rec.grids[0])
	require.Zero(t, p.ContainerHeight())

	opts.Colors = Named("basic")
	require.NoError(t, p.Configure(opts))
	require.NoError(t, p.Err())
	require.NotEmpty(t, p.Grid())
}

func TestPickerShowBorderPrecedence(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Colors = Named("text-basic")
	p, _ := newTestPicker(t, opts)
	require.True(t, p.ShowBorder())

	off := false
	opts.ShowBorder = &off
	require.NoError(t, p.Configure(opts))
	require.False(t, p.ShowBorder())
}

func TestPickerCircleShape(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Colors = Flat("#fff")
	opts.Shape = ShapeCircles
	p, _ := newTestPicker(t, opts)
	require.Equal(t, "50%", p.Layout().BorderRadius)
	require.True(t, p.Layout().Rounded())
}

func TestPickerLayoutCopyIsDetached(t *testing.T) {
	t.Parallel()

	p, _ := newTestPicker(t, DefaultOptions())
	layout := p.Layout()
	*layout.MaxHeight = 1
	require.Equal(t, 300, *p.Layout().MaxHeight)
}

func TestListenerFuncsSkipNil(t *testing.T) {
	t.Parallel()

	var selected string
	funcs := ListenerFuncs{OnSelect: func(s string) { selected = s }}
	require.NotPanics(t, func() {
		funcs.GridChanged(nil)
		funcs.LayoutChanged(Layout{})
		funcs.VisibilityChanged(Open)
		funcs.Selected("#fff")
	})
	require.Equal(t, "#fff", selected)
}
