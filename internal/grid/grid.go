// Package grid lays outcome sequences out as the fixed-size 2D scoreboards
// used by display surfaces. Renderers are pure consumers: no data flows
// back into the statistics or simulation core.
package grid

import "baccarat-lab/internal/domain"

// Default scoreboard dimensions.
const (
	DefaultRows = 6
	DefaultCols = 12
)

// Empty marks an unoccupied cell.
const Empty = domain.Outcome("")

// Layout is a row-major grid of cells; Layout[r][c] addresses row r,
// column c.
type Layout [][]domain.Outcome

func newLayout(rows, cols int) Layout {
	cells := make(Layout, rows)
	for r := range cells {
		cells[r] = make([]domain.Outcome, cols)
	}
	return cells
}

// BeadPlate fills columns top-to-bottom, left-to-right, one cell per
// outcome including Ties. When the sequence exceeds the grid capacity
// only the most recent rows*cols outcomes are shown.
func BeadPlate(seq []domain.Outcome, rows, cols int) Layout {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	layout := newLayout(rows, cols)

	capacity := rows * cols
	if len(seq) > capacity {
		seq = seq[len(seq)-capacity:]
	}

	for i, o := range seq {
		layout[i%rows][i/rows] = o
	}
	return layout
}

// BigRoad renders the streak-column layout: a new column starts whenever
// the non-Tie outcome changes, and a streak grows downward within its
// column. Ties do not occupy cells. A streak deeper than the grid bends
// right along the bottom row (the "dragon tail"). When the filled width
// exceeds cols, only the most recent cols columns are shown.
func BigRoad(seq []domain.Outcome, rows, cols int) Layout {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}

	type cell struct {
		col, row int
		outcome  domain.Outcome
	}
	var cells []cell

	col, row := -1, 0
	var current domain.Outcome
	for _, o := range seq {
		if o == domain.OutcomeTie {
			continue
		}
		switch {
		case o != current:
			current = o
			col++
			row = 0
		case row+1 < rows:
			row++
		default:
			// Dragon tail: continue rightward along the bottom row.
			col++
		}
		cells = append(cells, cell{col: col, row: row, outcome: o})
	}

	// Show the most recent window of columns.
	shift := 0
	if col >= cols {
		shift = col - cols + 1
	}

	layout := newLayout(rows, cols)
	for _, c := range cells {
		cc := c.col - shift
		if cc < 0 {
			continue
		}
		layout[c.row][cc] = c.outcome
	}
	return layout
}
