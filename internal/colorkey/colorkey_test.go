package colorkey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		token string
		want  Canonical
	}{
		{name: "lowercase hex", token: "#e31432", want: "#e31432"},
		{name: "uppercase hex", token: "#E31432", want: "#e31432"},
		{name: "surrounding whitespace", token: "  #A156E2\t", want: "#a156e2"},
		{name: "short hex expands", token: "#FFF", want: "#ffffff"},
		{name: "named color", token: "Red", want: "#ff0000"},
		{name: "rgb notation", token: "rgb(227, 20, 50)", want: "#e31432"},
		{name: "opaque rgba", token: "RGBA(227,20,50,1)", want: "#e31432"},
		{name: "translucent rgba", token: "rgba(227, 20, 50, 0.5)", want: "rgba(227,20,50,0.5)"},
		{name: "malformed hex kept", token: "#eiaea3", want: "#eiaea3"},
		{name: "malformed sigil kept", token: "$EF86FF", want: "$ef86ff"},
		{name: "trailing junk is malformed", token: "#12345g", want: "#12345g"},
		{name: "out of range rgb kept", token: "rgb(300,0,0)", want: "rgb(300,0,0)"},
		{name: "empty", token: "   ", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Normalize(tc.token))
		})
	}
}

func TestEquivalentAcrossNotations(t *testing.T) {
	t.Parallel()

	require.True(t, Equivalent("#E31432", "#e31432"))
	require.True(t, Equivalent("#fff", "white"))
	require.True(t, Equivalent("rgb(255,255,255)", "#FFFFFF"))
	require.True(t, Equivalent("$3321de", "$3321DE"))
	require.False(t, Equivalent("#e31432", "#e31433"))
}

func TestSetMembershipIsOrderInsensitive(t *testing.T) {
	t.Parallel()

	a := NewSet([]string{"#E31432", "#A156E2", "#ECA23E"})
	b := NewSet([]string{"#eca23e", "#e31432", "#a156e2"})
	require.Equal(t, a, b)

	require.True(t, a.Contains("#e31432"))
	require.True(t, a.Contains(" #ECA23E "))
	require.False(t, a.Contains("#12313a"))
}

func TestEmptySetContainsNothing(t *testing.T) {
	t.Parallel()

	var empty Set
	require.False(t, empty.Contains("#ffffff"))
	require.Empty(t, NewSet([]string{"", "  "}))
}

func TestParse(t *testing.T) {
	t.Parallel()

	c, ok := Parse("#FF0000")
	require.True(t, ok)
	r, g, b := c.RGB255()
	require.Equal(t, []uint8{255, 0, 0}, []uint8{r, g, b})

	_, ok = Parse("not-a-color")
	require.False(t, ok)
}
