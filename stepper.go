package gridbot

import "golang.org/x/xerrors"

// ErrIllegalMove is returned when a planned action would leave the valid area.
var ErrIllegalMove = xerrors.New("illegal move")

// StepSnapshot exposes the robot after one replayed action of plan PlanID
type StepSnapshot struct {
	PlanID    string
	Action    Action
	Position  Position
	StepIndex int
	Done      bool
}

// Stepper replays a robot's stored plan, moving the robot one cell per Step.
type Stepper struct {
	robot     *Robot
	planID    string
	stepCount int
	done      bool
}

// NewStepper creates a stepper over the plan currently stored on robot.
func NewStepper(robot *Robot) *Stepper {
	return &Stepper{robot: robot, planID: robot.PlanID()}
}

// Step takes the next action of the plan and applies it to the robot.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.done {
		return s.snapshot(DoNothing), nil
	}

	action := s.robot.NextAction()
	if action == DoNothing {
		s.done = true
		return s.snapshot(DoNothing), nil
	}

	next := s.robot.Position().Step(action)
	if !s.robot.env.Valid(next.Row, next.Col) {
		s.done = true
		return s.snapshot(action), xerrors.Errorf("step %d %s from (%d,%d): %w",
			s.stepCount+1, action, s.robot.Row(), s.robot.Col(), ErrIllegalMove)
	}

	s.robot.Apply(action)
	s.stepCount++
	return s.snapshot(action), nil
}

// PlanID identifies the plan being replayed.
func (s *Stepper) PlanID() string { return s.planID }

// Run steps until the plan is exhausted and returns every cell occupied along
// the way, starting with the robot's current cell.
func (s *Stepper) Run() ([]Position, error) {
	trail := []Position{s.robot.Position()}
	for {
		snapshot, err := s.Step()
		if err != nil {
			return trail, err
		}
		if snapshot.Done {
			return trail, nil
		}
		trail = append(trail, snapshot.Position)
	}
}

func (s *Stepper) snapshot(action Action) StepSnapshot {
	return StepSnapshot{
		PlanID:    s.planID,
		Action:    action,
		Position:  s.robot.Position(),
		StepIndex: s.stepCount,
		Done:      s.done,
	}
}
