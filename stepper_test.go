package gridbot_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridbot"
)

func TestStepper_ReplaysPlan(t *testing.T) {
	g, robot := robotOn(t, mazes[0].text)
	robot.AStar()
	plan := robot.Plan()

	trail, err := gridbot.NewStepper(robot).Run()

	require.NoError(t, err)
	assert.Len(t, trail, len(plan)+1)
	assert.Equal(t, g.PrimaryTarget(), robot.Position())
	assert.Equal(t, replay(t, g, trail[0], plan), trail)
	assert.Equal(t, gridbot.DoNothing, robot.NextAction())
}

func TestStepper_Snapshots(t *testing.T) {
	_, robot := robotOn(t, `S.T`)
	robot.BFS()
	stepper := gridbot.NewStepper(robot)

	first, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, gridbot.StepSnapshot{PlanID: robot.PlanID(), Action: gridbot.MoveRight, Position: gridbot.Position{Row: 0, Col: 1}, StepIndex: 1}, first)

	second, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, 2, second.StepIndex)
	assert.False(t, second.Done)

	last, err := stepper.Step()
	require.NoError(t, err)
	assert.True(t, last.Done)
	assert.Equal(t, gridbot.DoNothing, last.Action)
	assert.Equal(t, gridbot.Position{Row: 0, Col: 2}, last.Position)

	again, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, last, again)
}

func TestStepper_IllegalMove(t *testing.T) {
	g, robot := robotOn(t, `S..T`)
	robot.BFS()
	g.Block(0, 2)

	trail, err := gridbot.NewStepper(robot).Run()

	require.Error(t, err)
	assert.True(t, errors.Is(err, gridbot.ErrIllegalMove))
	assert.Equal(t, []gridbot.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, trail)
	assert.Equal(t, gridbot.Position{Row: 0, Col: 1}, robot.Position())
}

func TestStepper_NoPlan(t *testing.T) {
	_, robot := robotOn(t, `S#T`)
	robot.BFS()

	trail, err := gridbot.NewStepper(robot).Run()
	require.NoError(t, err)
	assert.Equal(t, []gridbot.Position{{Row: 0, Col: 0}}, trail)
}
