// Package colorkey reduces textual color tokens to a comparable canonical form.
//
// Hex (#rgb, #rrggbb), CSS named colors and rgb()/rgba() notations are
// recognised and rendered as lowercase #rrggbb. Anything else is kept as
// written, minus surrounding whitespace and letter case, so that equality
// still works on the literal token.
package colorkey

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Canonical is the normalized form of a color token.
type Canonical string

var rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)

// Normalize returns the canonical form of token. It never fails.
func Normalize(token string) Canonical {
	folded := strings.ToLower(strings.TrimSpace(token))
	if folded == "" {
		return ""
	}

	if c, alpha, ok := parse(folded); ok {
		if alpha < 1 {
			r, g, b := c.RGB255()
			return Canonical(fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64)))
		}
		return Canonical(c.Hex())
	}

	return Canonical(folded)
}

// Equivalent reports whether two tokens describe the same color.
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Parse decodes token into a color when it matches a recognised grammar.
func Parse(token string) (colorful.Color, bool) {
	c, _, ok := parse(strings.ToLower(strings.TrimSpace(token)))
	return c, ok
}

// Set is a membership index keyed by canonical color.
type Set map[Canonical]struct{}

// NewSet indexes tokens by their canonical form.
func NewSet(tokens []string) Set {
	set := make(Set, len(tokens))
	for _, token := range tokens {
		key := Normalize(token)
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}

// Contains reports whether token is equivalent to any member of the set.
func (s Set) Contains(token string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[Normalize(token)]
	return ok
}

func parse(folded string) (colorful.Color, float64, bool) {
	switch {
	case strings.HasPrefix(folded, "#"):
		if len(folded) != 4 && len(folded) != 7 || !isHex(folded[1:]) {
			return colorful.Color{}, 0, false
		}
		c, err := colorful.Hex(folded)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		return c, 1, true
	case strings.HasPrefix(folded, "rgb"):
		return parseRGB(folded)
	default:
		named, ok := colornames.Map[folded]
		if !ok {
			return colorful.Color{}, 0, false
		}
		c, ok := colorful.MakeColor(named)
		if !ok {
			return colorful.Color{}, 0, false
		}
		return c, 1, true
	}
}

func parseRGB(folded string) (colorful.Color, float64, bool) {
	matches := rgbPattern.FindStringSubmatch(folded)
	if matches == nil {
		return colorful.Color{}, 0, false
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.Atoi(matches[i+1])
		if err != nil || v > 255 {
			return colorful.Color{}, 0, false
		}
		channels[i] = uint8(v)
	}

	alpha := 1.0
	if matches[4] != "" {
		a, err := strconv.ParseFloat(matches[4], 64)
		if err != nil || a > 1 {
			return colorful.Color{}, 0, false
		}
		alpha = a
	}

	c := colorful.Color{
		R: float64(channels[0]) / 255,
		G: float64(channels[1]) / 255,
		B: float64(channels[2]) / 255,
	}
	return c, alpha, true
}

func isHex(digits string) bool {
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
