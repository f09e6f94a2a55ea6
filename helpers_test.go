package gridbot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridbot"
	"github.com/pdrpinto/gridbot/grid"
)

// mazes are solvable single-target fixtures with their true shortest distance.
var mazes = []struct {
	name     string
	text     string
	distance int
}{
	{
		name: "corridor",
		text: `
S.#.....
.##.###.
....#...
.##.#.#.
...#..#T`,
		distance: 15,
	},
	{
		name: "spiral",
		text: `
S.......
######..
.......#
.#######
......T.`,
		distance: 22,
	},
	{
		name: "open",
		text: `
........
...S....
........
......T.`,
		distance: 5,
	},
	{
		name:     "adjacent",
		text:     `ST`,
		distance: 1,
	},
	{
		name:     "start on target",
		text:     `..*..`,
		distance: 0,
	},
}

const warehouse = `
S...#....
.##.#.##.
.#T.#..T.
.#..#.##.
.##...T..`

func robotOn(t *testing.T, text string, options ...gridbot.Option) (*grid.Grid, *gridbot.Robot) {
	t.Helper()
	g := grid.MustParse(text)
	start, ok := g.Start()
	require.True(t, ok, "fixture has no start cell")
	return g, gridbot.New(g, start.Row, start.Col, options...)
}

// replay applies path from start, failing on any step into an invalid cell,
// and returns every cell occupied, start included.
func replay(t *testing.T, env gridbot.Environment, start gridbot.Position, path []gridbot.Action) []gridbot.Position {
	t.Helper()
	trail := []gridbot.Position{start}
	current := start
	for i, action := range path {
		current = current.Step(action)
		require.Truef(t, env.Valid(current.Row, current.Col), "step %d (%s) enters invalid cell %v", i, action, current)
		trail = append(trail, current)
	}
	return trail
}

func countActions(path []gridbot.Action) map[gridbot.Action]int {
	counts := make(map[gridbot.Action]int)
	for _, action := range path {
		counts[action]++
	}
	return counts
}
