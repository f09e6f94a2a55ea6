// Package grid provides a rectangular gridbot.Environment with blocked cells,
// an optional start cell and an ordered list of targets.
package grid

import (
	"strings"

	"github.com/pdrpinto/gridbot"
)

// Grid is a rows×cols gridbot.Environment. The zero value is an empty grid.
type Grid struct {
	rows, cols int
	blocked    []bool
	targets    []gridbot.Position
	start      gridbot.Position
	hasStart   bool
}

// New returns an open rows×cols grid with no targets.
func New(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}
}

func (g *Grid) in(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Block marks a cell as impassable. Cells outside the grid are ignored.
func (g *Grid) Block(row, col int) {
	if g.in(row, col) {
		g.blocked[row*g.cols+col] = true
	}
}

// Unblock reopens a cell.
func (g *Grid) Unblock(row, col int) {
	if g.in(row, col) {
		g.blocked[row*g.cols+col] = false
	}
}

// Blocked reports whether an in-range cell is a wall.
func (g *Grid) Blocked(row, col int) bool {
	return g.in(row, col) && g.blocked[row*g.cols+col]
}

// AddTarget appends a target. The first target added is the primary target.
func (g *Grid) AddTarget(row, col int) {
	g.targets = append(g.targets, gridbot.Position{Row: row, Col: col})
}

// SetStart records the cell a robot should be placed on.
func (g *Grid) SetStart(row, col int) {
	g.start = gridbot.Position{Row: row, Col: col}
	g.hasStart = true
}

// Start returns the start cell and whether one was set.
func (g *Grid) Start() (gridbot.Position, bool) {
	return g.start, g.hasStart
}

// Valid reports whether the cell is inside the grid and open.
func (g *Grid) Valid(row, col int) bool {
	return g.in(row, col) && !g.blocked[row*g.cols+col]
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// PrimaryTarget returns the first target, or gridbot.NoTarget if there is none.
func (g *Grid) PrimaryTarget() gridbot.Position {
	if len(g.targets) == 0 {
		return gridbot.NoTarget
	}
	return g.targets[0]
}

// Targets returns a copy of the targets in the order they were added.
func (g *Grid) Targets() []gridbot.Position {
	return append([]gridbot.Position(nil), g.targets...)
}

// String renders the grid in the format read by Parse. Targets outside the
// grid are not shown.
func (g *Grid) String() string {
	isTarget := make(map[gridbot.Position]bool, len(g.targets))
	for _, target := range g.targets {
		isTarget[target] = true
	}

	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := gridbot.Position{Row: row, Col: col}
			isStart := g.hasStart && p == g.start
			switch {
			case g.Blocked(row, col):
				b.WriteByte(wallCell)
			case isStart && isTarget[p]:
				b.WriteByte(startTargetCell)
			case isStart:
				b.WriteByte(startCell)
			case isTarget[p]:
				b.WriteByte(targetCell)
			default:
				b.WriteByte(openCell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
