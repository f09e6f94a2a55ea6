package grid

import "math/rand"

// RandomOptions shapes the walls of Random.
type RandomOptions struct {
	// Clusters is the number of random walks that lay walls. Zero derives
	// it from the grid area.
	Clusters int
	// Steps is the length of every walk. Zero means 30.
	Steps int
	// Density is the chance that a visited cell becomes a wall.
	Density float64
	// Targets is the number of targets to place on open cells.
	Targets int
}

const (
	defaultSteps = 30
	// cellsPerCluster keeps about a quarter of the cells walled at the
	// default density.
	cellsPerCluster = 25
)

// DefaultRandomOptions gives a moderately cluttered map of any size.
var DefaultRandomOptions = RandomOptions{Density: 0.25, Targets: 1}

// Random builds a grid whose walls are laid by clustered random walks. The
// start and targets are distinct open cells. If the grid has fewer open cells
// than requested, fewer targets are placed.
func Random(rows, cols int, options RandomOptions, rng *rand.Rand) *Grid {
	g := New(rows, cols)
	rows, cols = g.rows, g.cols
	if rows == 0 || cols == 0 {
		return g
	}

	if options.Steps == 0 {
		options.Steps = defaultSteps
	}
	if options.Clusters == 0 {
		options.Clusters = max(1, rows*cols/cellsPerCluster)
	}

	directions := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for c := 0; c < options.Clusters; c++ {
		row, col := rng.Intn(rows), rng.Intn(cols)
		for s := 0; s < options.Steps; s++ {
			if rng.Float64() < options.Density {
				g.Block(row, col)
			}
			d := directions[rng.Intn(len(directions))]
			if g.in(row+d[0], col+d[1]) {
				row, col = row+d[0], col+d[1]
			}
		}
	}

	var open [][2]int
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if g.Valid(row, col) {
				open = append(open, [2]int{row, col})
			}
		}
	}
	// ensure start and targets sit on open cells
	if len(open) == 0 {
		g.Unblock(0, 0)
		open = append(open, [2]int{0, 0})
	}
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })

	g.SetStart(open[0][0], open[0][1])
	for i := 1; i <= options.Targets && i < len(open); i++ {
		g.AddTarget(open[i][0], open[i][1])
	}
	return g
}
