package swatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatches/internal/preset"
	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

// completePreset mirrors a preset object carrying every layout field.
var completePreset = preset.Definition{
	Swatches: preset.FlatSwatches("#cc4125", "#e06666", "#f6b26b", "#ffd966", "#93c47d", "#76a5af", "#6d9eeb", "#6fa8dc", "#8e7cc3", "#c27ba0"),
	Layout: preset.Layout{
		BorderRadius: strp("0"),
		RowLength:    intp(6),
		SwatchSize:   intp(18),
		SpacingSize:  intp(90),
		MaxHeight:    intp(80),
	},
}

func TestResolveFlatKeepsOrder(t *testing.T) {
	t.Parallel()

	colors := []string{"#e31432", "#a156e2", "#eca23e"}
	res, err := Resolve(Flat(colors...), preset.Builtin(), nil)
	require.NoError(t, err)
	require.Equal(t, Grid{colors}, res.Grid)
	require.Equal(t, colors, res.Grid.Flatten())
	require.True(t, res.Layout.IsZero())
	require.Empty(t, res.PresetName)
}

func TestResolveFlatRechunksByRowLength(t *testing.T) {
	t.Parallel()

	colors := []string{"#1", "#2", "#3", "#4", "#5", "#6", "#7"}
	res, err := Resolve(Flat(colors...), nil, intp(3))
	require.NoError(t, err)
	require.Equal(t, Grid{{"#1", "#2", "#3"}, {"#4", "#5", "#6"}, {"#7"}}, res.Grid)
	require.Equal(t, colors, res.Grid.Flatten())
}

func TestResolveFlatIgnoresNonPositiveRowLength(t *testing.T) {
	t.Parallel()

	res, err := Resolve(Flat("#a", "#b"), nil, intp(0))
	require.NoError(t, err)
	require.Equal(t, Grid{{"#a", "#b"}}, res.Grid)
}

func TestResolveEmptyFlatYieldsEmptyGrid(t *testing.T) {
	t.Parallel()

	res, err := Resolve(Flat(), nil, nil)
	require.NoError(t, err)
	require.Empty(t, res.Grid)
	require.Empty(t, res.Grid.Flatten())
}

func TestResolveNestedIsIdentity(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"#e31432", "#a156e2", "#eca23e"},
		{"#a2341e", "$ef86ff"},
		{"#eec451", "$3321de", "#166002", "#000"},
	}
	res, err := Resolve(Nested(rows...), nil, intp(2))
	require.NoError(t, err)
	require.Equal(t, Grid(rows), res.Grid)

	res.Grid[0][0] = "mutated"
	require.Equal(t, "#e31432", rows[0][0])
}

func TestResolveNamedPresets(t *testing.T) {
	t.Parallel()

	catalog := preset.Builtin()
	for _, name := range catalog.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			def, ok := catalog.Lookup(name)
			require.True(t, ok)

			res, err := Resolve(Named(name), catalog, nil)
			require.NoError(t, err)
			require.Equal(t, name, res.PresetName)
			require.Equal(t, def.Layout, res.Layout)

			if def.Swatches.Nested() {
				require.Equal(t, Grid(def.Swatches.Rows), res.Grid)
			} else {
				require.Equal(t, def.Swatches.Flat, res.Grid.Flatten())
				if def.RowLength != nil {
					for _, row := range res.Grid {
						require.LessOrEqual(t, len(row), *def.RowLength)
					}
				}
			}
		})
	}
}

func TestResolveMaterialSimpleOrder(t *testing.T) {
	t.Parallel()

	catalog := preset.Builtin()
	res, err := Resolve(Named("material-simple"), catalog, nil)
	require.NoError(t, err)
	require.Equal(t, catalog["material-simple"].Swatches.Flat, res.Grid.Flatten())
}

func TestResolveExplicitRowLengthBeatsPreset(t *testing.T) {
	t.Parallel()

	res, err := Resolve(Named("simple"), preset.Builtin(), intp(8))
	require.NoError(t, err)
	require.Len(t, res.Grid, 2)
	require.Len(t, res.Grid[0], 8)
}

func TestResolveUnsetFallsBackToSimple(t *testing.T) {
	t.Parallel()

	catalog := preset.Builtin()
	unset, err := Resolve(ColorsInput{}, catalog, nil)
	require.NoError(t, err)
	named, err := Resolve(Named(preset.DefaultName), catalog, nil)
	require.NoError(t, err)
	require.Equal(t, named, unset)
}

func TestResolveUnknownPreset(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Named("neon"), preset.Builtin(), nil)
	require.ErrorIs(t, err, swatcherrors.ErrUnknownPreset)

	var presetErr *swatcherrors.UnknownPresetError
	require.ErrorAs(t, err, &presetErr)
	require.Equal(t, "neon", presetErr.Name)

	_, err = Resolve(ColorsInput{}, nil, nil)
	require.ErrorIs(t, err, swatcherrors.ErrUnknownPreset)
}

func TestResolveEmptyNameIsInvalid(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Named("  "), preset.Builtin(), nil)
	require.ErrorIs(t, err, swatcherrors.ErrInvalidColorsInput)
}

func TestResolveInlinePresetObject(t *testing.T) {
	t.Parallel()

	res, err := Resolve(Inline(completePreset), nil, nil)
	require.NoError(t, err)
	require.Equal(t, completePreset.Layout, res.Layout)
	require.Len(t, res.Grid, 2)
	require.Len(t, res.Grid[0], 6)
	require.Len(t, res.Grid[1], 4)
	require.Equal(t, completePreset.Swatches.Flat, res.Grid.Flatten())
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	catalog := preset.Builtin()
	first, err := Resolve(Named("text-advanced"), catalog, nil)
	require.NoError(t, err)
	second, err := Resolve(Named("text-advanced"), catalog, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)

	first.Grid[0][0] = "mutated"
	again, err := Resolve(Named("text-advanced"), catalog, nil)
	require.NoError(t, err)
	require.Equal(t, second, again)
}
