package swatch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/swatches/internal/preset"
)

// Shape is the outline of swatches and of the popover trigger.
type Shape string

const (
	ShapeSquares Shape = "squares"
	ShapeCircles Shape = "circles"
)

// Layout is the effective sizing handed to the rendering layer.
// A nil MaxHeight means the container is not capped.
type Layout struct {
	SwatchSize   int    `json:"swatchSize"`
	SpacingSize  int    `json:"spacingSize"`
	BorderRadius string `json:"borderRadius"`
	MaxHeight    *int   `json:"maxHeight"`
}

// ContainerHeight is the natural height of the visible rows, capped by MaxHeight.
func (l Layout) ContainerHeight(grid AnnotatedGrid) int {
	rows := grid.VisibleRows()
	if rows == 0 {
		return 0
	}
	natural := rows*(l.SwatchSize+l.SpacingSize) + l.SpacingSize
	if l.MaxHeight != nil && natural > *l.MaxHeight {
		return *l.MaxHeight
	}
	return natural
}

// Defaults is the lowest precedence tier of layout values.
type Defaults struct {
	SwatchSize int
	MaxHeight  int
	Shape      Shape
}

// StandardDefaults matches the stock widget.
var StandardDefaults = Defaults{SwatchSize: 42, MaxHeight: 300, Shape: ShapeSquares}

// ComputeLayout merges explicit values over preset values over StandardDefaults.
func ComputeLayout(explicit, fromPreset preset.Layout, inline bool) Layout {
	return StandardDefaults.Compute(explicit, fromPreset, inline)
}

// Compute merges explicit values over preset values over d, field by field.
// Inline layouts never carry a height cap.
func (d Defaults) Compute(explicit, fromPreset preset.Layout, inline bool) Layout {
	size := pick(explicit.SwatchSize, fromPreset.SwatchSize, d.SwatchSize)

	var layout Layout
	layout.SwatchSize = size
	layout.SpacingSize = pick(explicit.SpacingSize, fromPreset.SpacingSize, int(math.Round(float64(size)*0.25)))
	layout.BorderRadius = pick(explicit.BorderRadius, fromPreset.BorderRadius, d.radius(size))

	if !inline {
		maxHeight := pick(explicit.MaxHeight, fromPreset.MaxHeight, d.MaxHeight)
		layout.MaxHeight = &maxHeight
	}

	return layout
}

func (d Defaults) radius(size int) string {
	if d.Shape == ShapeCircles {
		return "50%"
	}
	return fmt.Sprintf("%dpx", int(math.Round(float64(size)*0.25)))
}

func pick[T any](explicit, fromPreset *T, fallback T) T {
	if explicit != nil {
		return *explicit
	}
	if fromPreset != nil {
		return *fromPreset
	}
	return fallback
}

// Rounded reports whether the border radius makes swatches circular: a
// percentage of at least 50 or a length of at least half the swatch size.
func (l Layout) Rounded() bool {
	radius := strings.TrimSpace(l.BorderRadius)
	if pct, ok := strings.CutSuffix(radius, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		return err == nil && v >= 50
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(radius, "px"), 64)
	if err != nil {
		return false
	}
	return l.SwatchSize > 0 && px*2 >= float64(l.SwatchSize)
}
