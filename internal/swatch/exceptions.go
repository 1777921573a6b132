package swatch

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatches/internal/colorkey"
)

// ExceptionMode decides how exception colors are presented.
type ExceptionMode string

const (
	// ExceptionDisabled keeps exceptions visible but not selectable.
	ExceptionDisabled ExceptionMode = "disabled"
	// ExceptionHidden removes exceptions from the visible layout.
	ExceptionHidden ExceptionMode = "hidden"
)

// DefaultExceptionMode applies when no mode is configured.
const DefaultExceptionMode = ExceptionDisabled

// OrDefault returns m, or DefaultExceptionMode when m is empty.
func (m ExceptionMode) OrDefault() ExceptionMode {
	if m == "" {
		return DefaultExceptionMode
	}
	return m
}

// ParseExceptionMode accepts "hidden", "disabled" or an empty string.
func ParseExceptionMode(s string) (ExceptionMode, error) {
	mode := ExceptionMode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case "", ExceptionDisabled, ExceptionHidden:
		return mode.OrDefault(), nil
	default:
		return "", fmt.Errorf("unknown exception mode %q", s)
	}
}

// Disposition is how a single swatch must be rendered.
type Disposition string

const (
	DispositionNone     Disposition = "none"
	DispositionHidden   Disposition = "hidden"
	DispositionDisabled Disposition = "disabled"
)

// Annotation is a grid cell with its exception status.
type Annotation struct {
	Token       string      `json:"token"`
	IsException bool        `json:"isException"`
	Disposition Disposition `json:"disposition"`
}

// Visible reports whether the swatch takes part in layout flow.
func (a Annotation) Visible() bool {
	return a.Disposition != DispositionHidden
}

// Selectable reports whether the swatch may be picked.
func (a Annotation) Selectable() bool {
	return a.Disposition == DispositionNone
}

// AnnotatedGrid mirrors a Grid cell for cell.
type AnnotatedGrid [][]Annotation

// Tokens returns the plain color grid.
func (g AnnotatedGrid) Tokens() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = cell.Token
		}
	}
	return out
}

// Clone returns a deep copy.
func (g AnnotatedGrid) Clone() AnnotatedGrid {
	if g == nil {
		return nil
	}
	out := make(AnnotatedGrid, len(g))
	for i, row := range g {
		out[i] = append([]Annotation(nil), row...)
	}
	return out
}

// VisibleRows counts rows holding at least one visible swatch.
func (g AnnotatedGrid) VisibleRows() int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if cell.Visible() {
				count++
				break
			}
		}
	}
	return count
}

// Exceptions returns the annotations flagged as exceptions in row order.
func (g AnnotatedGrid) Exceptions() []Annotation {
	var out []Annotation
	for _, row := range g {
		for _, cell := range row {
			if cell.IsException {
				out = append(out, cell)
			}
		}
	}
	return out
}

// Find locates the first cell equivalent to token.
func (g AnnotatedGrid) Find(token string) (Annotation, int, int, bool) {
	key := colorkey.Normalize(token)
	for i, row := range g {
		for j, cell := range row {
			if colorkey.Normalize(cell.Token) == key {
				return cell, i, j, true
			}
		}
	}
	return Annotation{}, -1, -1, false
}

// Annotate flags every grid color equivalent to an exception. The result
// depends only on the set of exceptions, not their order.
func Annotate(grid Grid, exceptions []string, mode ExceptionMode) AnnotatedGrid {
	set := colorkey.NewSet(exceptions)
	disposition := DispositionDisabled
	if mode.OrDefault() == ExceptionHidden {
		disposition = DispositionHidden
	}

	out := make(AnnotatedGrid, len(grid))
	for i, row := range grid {
		out[i] = make([]Annotation, len(row))
		for j, token := range row {
			cell := Annotation{Token: token, Disposition: DispositionNone}
			if set.Contains(token) {
				cell.IsException = true
				cell.Disposition = disposition
			}
			out[i][j] = cell
		}
	}
	return out
}
