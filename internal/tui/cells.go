package tui

import "github.com/alexisbeaulieu97/swatches/internal/swatch"

// cell is a visible swatch with its position in the annotated grid.
type cell struct {
	swatch.Annotation
	row, col int
}

// visibleRows drops hidden swatches and rows left empty by them.
func visibleRows(grid swatch.AnnotatedGrid) [][]cell {
	var rows [][]cell
	for i, row := range grid {
		var out []cell
		for j, a := range row {
			if !a.Visible() {
				continue
			}
			out = append(out, cell{Annotation: a, row: i, col: j})
		}
		if len(out) > 0 {
			rows = append(rows, out)
		}
	}
	return rows
}
