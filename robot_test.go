package gridbot_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridbot"
	"github.com/pdrpinto/gridbot/grid"
)

func TestRobot_InitRunsBFS(t *testing.T) {
	_, viaInit := robotOn(t, mazes[0].text)
	_, viaBFS := robotOn(t, mazes[0].text)
	viaInit.Init()
	viaBFS.BFS()

	assert.True(t, viaInit.PathFound())
	assert.Equal(t, viaBFS.Plan(), viaInit.Plan())
	assert.Equal(t, viaBFS.OpenedCount(), viaInit.OpenedCount())
}

func TestRobot_NextActionDrainsPlan(t *testing.T) {
	_, robot := robotOn(t, `S..T`)
	robot.BFS()

	for i := 0; i < 3; i++ {
		assert.Equal(t, gridbot.MoveRight, robot.NextAction())
	}
	assert.Equal(t, gridbot.DoNothing, robot.NextAction())
	assert.Equal(t, gridbot.DoNothing, robot.NextAction())
	// the statistics describe the plan, not what is left of it
	assert.Equal(t, 3, robot.PathLength())
	assert.True(t, robot.PathFound())
}

func TestRobot_NextActionWithoutPlan(t *testing.T) {
	robot := gridbot.New(grid.New(2, 2), 0, 0)
	assert.Equal(t, gridbot.DoNothing, robot.NextAction())
	assert.False(t, robot.PathFound())
	assert.Zero(t, robot.OpenedCount())
}

func TestRobot_OpenedCountAccumulatesUntilReset(t *testing.T) {
	_, robot := robotOn(t, mazes[1].text)

	first := robot.BFS()
	assert.Equal(t, first.Opened, robot.OpenedCount())
	second := robot.AStar()
	assert.Equal(t, first.Opened+second.Opened, robot.OpenedCount())

	robot.ResetOpenedCount()
	assert.Zero(t, robot.OpenedCount())
	third := robot.BFS()
	assert.Equal(t, third.Opened, robot.OpenedCount())
}

func TestRobot_SearchOverwritesPlan(t *testing.T) {
	g := grid.MustParse(`
S..
.#.
..T`)
	robot := gridbot.New(g, 0, 0)
	require.True(t, robot.BFS().Found)

	// wall the target off and plan again
	g.Block(1, 2)
	g.Block(2, 1)
	result := robot.AStar()

	assert.False(t, result.Found)
	assert.False(t, robot.PathFound())
	assert.Zero(t, robot.PathLength())
	assert.Empty(t, robot.Plan())
}

func TestRobot_Search(t *testing.T) {
	for _, algorithm := range []gridbot.Algorithm{gridbot.BFS, gridbot.AStar, gridbot.MultiBFS, gridbot.MultiAStar} {
		t.Run(algorithm.String(), func(t *testing.T) {
			_, robot := robotOn(t, mazes[0].text)
			result, err := robot.Search(algorithm)
			require.NoError(t, err)
			assert.True(t, result.Found)
			assert.Equal(t, mazes[0].distance, robot.PathLength())
		})
	}

	_, robot := robotOn(t, mazes[0].text)
	_, err := robot.Search(gridbot.Algorithm(99))
	assert.True(t, errors.Is(err, gridbot.ErrUnknownAlgorithm))
}

func TestRobot_PositionMutators(t *testing.T) {
	robot := gridbot.New(grid.New(5, 5), 2, 2)

	robot.IncRow()
	robot.IncCol()
	assert.Equal(t, gridbot.Position{Row: 3, Col: 3}, robot.Position())
	robot.DecRow()
	robot.DecRow()
	robot.DecCol()
	assert.Equal(t, 1, robot.Row())
	assert.Equal(t, 2, robot.Col())

	robot.Apply(gridbot.MoveLeft)
	robot.Apply(gridbot.DoNothing)
	assert.Equal(t, gridbot.Position{Row: 1, Col: 1}, robot.Position())
}

func TestRobot_PlansFromCurrentPosition(t *testing.T) {
	g, robot := robotOn(t, `S...T`)
	robot.IncCol()
	robot.IncCol()

	result := robot.BFS()
	assert.Equal(t, 2, result.Length)
	trail := replay(t, g, robot.Position(), result.Path)
	assert.Equal(t, g.PrimaryTarget(), trail[len(trail)-1])
}

func TestRobot_NoCellExpandedTwice(t *testing.T) {
	// one target, so the multi-target planners run a single search too
	for _, algorithm := range []gridbot.Algorithm{gridbot.BFS, gridbot.AStar, gridbot.MultiBFS, gridbot.MultiAStar} {
		t.Run(algorithm.String(), func(t *testing.T) {
			expanded := make(map[gridbot.Position]int)
			g, robot := robotOn(t, mazes[1].text, gridbot.WithExpansionHook(func(p gridbot.Position) {
				expanded[p]++
			}))

			_, err := robot.Search(algorithm)
			require.NoError(t, err)
			require.NotEmpty(t, expanded)
			for p, n := range expanded {
				assert.Equalf(t, 1, n, "cell %v expanded %d times", p, n)
			}
			assert.LessOrEqual(t, len(expanded), g.Rows()*g.Cols())
		})
	}
}

func TestRobot_LogsSearches(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, robot := robotOn(t, `S.T`, gridbot.WithLogger(logger))

	robot.AStar()

	out := buf.String()
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, "algorithm=astar")
	assert.Contains(t, out, "found=true")
	assert.Contains(t, out, "plan="+robot.PlanID())
}

func TestRobot_PlanIDFollowsPlan(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, robot := robotOn(t, `S.T`, gridbot.WithLogger(logger))
	assert.Empty(t, robot.PlanID())

	robot.BFS()
	first := robot.PlanID()
	require.NotEmpty(t, first)
	assert.Contains(t, buf.String(), "plan="+first)

	stepper := gridbot.NewStepper(robot)
	assert.Equal(t, first, stepper.PlanID())
	snapshot, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, first, snapshot.PlanID)

	robot.AStar()
	assert.NotEqual(t, first, robot.PlanID())
	assert.Contains(t, buf.String(), "plan="+robot.PlanID())
}

func TestRobot_NoTargets(t *testing.T) {
	tests := map[string]*grid.Grid{
		"empty grid": grid.New(0, 0),
		"open grid":  grid.New(2, 2),
	}
	for name, g := range tests {
		t.Run(name, func(t *testing.T) {
			for _, algorithm := range []gridbot.Algorithm{gridbot.BFS, gridbot.AStar} {
				robot := gridbot.New(g, 0, 0)
				result, err := robot.Search(algorithm)
				require.NoError(t, err)

				assert.False(t, result.Found, algorithm.String())
				assert.Empty(t, result.Path)
				assert.Equal(t, int64(max(1, g.Rows()*g.Cols())), result.Opened)
			}
		})
	}
}
