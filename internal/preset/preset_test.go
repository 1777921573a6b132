package preset

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

func TestBuiltinCatalog(t *testing.T) {
	t.Parallel()

	catalog := Builtin()
	_, ok := catalog.Lookup(DefaultName)
	require.True(t, ok)

	for _, name := range catalog.Names() {
		def, ok := catalog.Lookup(name)
		require.True(t, ok, name)
		require.Positive(t, def.Swatches.Len(), name)
	}

	def, _ := catalog.Lookup("text-advanced")
	require.True(t, def.Swatches.Nested())
	require.Equal(t, 60, def.Swatches.Len())
	require.Equal(t, 160, *def.MaxHeight)
}

func TestCatalogLookupReturnsCopies(t *testing.T) {
	t.Parallel()

	catalog := Builtin()
	def, _ := catalog.Lookup("material-simple")
	def.Swatches.Flat[0] = "#000000"
	*def.SwatchSize = 1

	again, _ := catalog.Lookup("material-simple")
	require.Equal(t, "#F44336", again.Swatches.Flat[0])
	require.Equal(t, 36, *again.SwatchSize)
}

func TestLayeredLookupAndNames(t *testing.T) {
	t.Parallel()

	override := Catalog{
		"simple": {Swatches: FlatSwatches("#fff")},
		"brand":  {Swatches: FlatSwatches("#0b3d91", "#fc3d21")},
	}
	layered := Layered{override, Builtin()}

	def, ok := layered.Lookup("simple")
	require.True(t, ok)
	require.Equal(t, []string{"#fff"}, def.Swatches.Flat)

	def, ok = layered.Lookup("basic")
	require.True(t, ok)
	require.Equal(t, 16, def.Swatches.Len())

	_, ok = layered.Lookup("neon")
	require.False(t, ok)

	names := layered.Names()
	require.Contains(t, names, "brand")
	require.Len(t, names, len(Builtin())+1)
	require.IsIncreasing(t, names)
}

func TestDefinitionYAMLForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		doc    string
		colors int
		nested bool
		assert func(t *testing.T, def Definition)
	}{
		{name: "shorthand flat", doc: `["#fff", "#000"]`, colors: 2},
		{name: "shorthand nested", doc: `[["#fff"], ["#000", "#eee"]]`, colors: 3, nested: true},
		{
			name:   "full object",
			doc:    "swatches: [\"#fff\"]\nrowLength: 3\nborderRadius: 50%\nshowBorder: true\n",
			colors: 1,
			assert: func(t *testing.T, def Definition) {
				require.Equal(t, 3, *def.RowLength)
				require.Equal(t, "50%", *def.BorderRadius)
				require.True(t, *def.ShowBorder)
			},
		},
		{name: "empty swatches", doc: "swatches: []\n", colors: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var def Definition
			require.NoError(t, yaml.Unmarshal([]byte(tc.doc), &def))
			require.Equal(t, tc.colors, def.Swatches.Len())
			require.Equal(t, tc.nested, def.Swatches.Nested())
			if tc.assert != nil {
				tc.assert(t, def)
			}
		})
	}
}

func TestDefinitionYAMLRejectsMixedRows(t *testing.T) {
	t.Parallel()

	var def Definition
	err := yaml.Unmarshal([]byte(`swatches: ["#fff", ["#000"]]`), &def)
	require.ErrorIs(t, err, swatcherrors.ErrInvalidColorsInput)

	err = yaml.Unmarshal([]byte(`[["#fff", {a: b}]]`), &def)
	require.ErrorIs(t, err, swatcherrors.ErrInvalidColorsInput)
}

func TestSwatchesRoundTripShape(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(Definition{Swatches: RowSwatches([]string{"#fff"}, []string{"#000"})})
	require.NoError(t, err)

	var def Definition
	require.NoError(t, yaml.Unmarshal(out, &def))
	require.Equal(t, [][]string{{"#fff"}, {"#000"}}, def.Swatches.Rows)
}

func TestLayoutCloneAndIsZero(t *testing.T) {
	t.Parallel()

	require.True(t, Layout{}.IsZero())

	size := 12
	l := Layout{SwatchSize: &size}
	require.False(t, l.IsZero())

	c := l.Clone()
	*c.SwatchSize = 99
	require.Equal(t, 12, *l.SwatchSize)
	require.Nil(t, c.MaxHeight)
}
