package gridbot

import (
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

// Robot is an agent standing on a cell of an Environment. It stores the plan
// produced by its last search and hands it out one action at a time.
type Robot struct {
	env     Environment
	options Options
	logger  *slog.Logger

	position   Position
	planID     string
	path       []Action
	pathFound  bool
	pathLength int
	openCount  int64
}

// New places a robot on (row, col) of env.
func New(env Environment, row, col int, options ...Option) *Robot {
	robotOptions := Options{}
	for _, option := range options {
		option(&robotOptions)
	}

	logger := robotOptions.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Robot{
		env:      env,
		options:  robotOptions,
		logger:   logger,
		position: Position{Row: row, Col: col},
	}
}

// Init runs the default planner, BFS.
func (r *Robot) Init() {
	r.BFS()
}

// BFS plans the shortest route to the primary target with breadth-first search.
func (r *Robot) BFS() Result {
	return r.record(BFS, bfs(r.env, r.position, r.options.OnExpand))
}

// AStar plans the shortest route to the primary target with A*.
func (r *Robot) AStar() Result {
	return r.record(AStar, astar(r.env, r.position, r.options.OnExpand))
}

// MultiBFS plans a route through every target using repeated flood fills.
func (r *Robot) MultiBFS() Result {
	return r.record(MultiBFS, multiBFS(r.env, r.position, r.options.OnExpand))
}

// MultiAStar plans a route through every target using repeated best-first
// searches towards the closest unvisited target.
func (r *Robot) MultiAStar() Result {
	return r.record(MultiAStar, multiAStar(r.env, r.position, r.options.MultiTargetCost, r.options.OnExpand))
}

// Search runs the planner selected by algorithm.
func (r *Robot) Search(algorithm Algorithm) (Result, error) {
	switch algorithm {
	case BFS:
		return r.BFS(), nil
	case AStar:
		return r.AStar(), nil
	case MultiBFS:
		return r.MultiBFS(), nil
	case MultiAStar:
		return r.MultiAStar(), nil
	}
	return Result{}, xerrors.Errorf("algorithm %d: %w", int(algorithm), ErrUnknownAlgorithm)
}

// record replaces the stored plan with result under a fresh plan id. The
// opened counter accumulates.
func (r *Robot) record(algorithm Algorithm, result Result) Result {
	r.planID = uuid.NewString()
	r.path = append([]Action(nil), result.Path...)
	r.pathFound = result.Found
	r.pathLength = result.Length
	r.openCount += result.Opened

	r.logger.Debug("search finished",
		"plan", r.planID,
		"algorithm", algorithm.String(),
		"start", r.position,
		"found", result.Found,
		"length", result.Length,
		"opened", result.Opened,
	)
	return result
}

// NextAction removes and returns the first action of the plan, or DoNothing
// once the plan is empty.
func (r *Robot) NextAction() Action {
	if len(r.path) == 0 {
		return DoNothing
	}
	action := r.path[0]
	r.path = r.path[1:]
	return action
}

// Plan returns a copy of the actions not yet handed out.
func (r *Robot) Plan() []Action {
	return append([]Action(nil), r.path...)
}

// PlanID identifies the stored plan in logs and step snapshots. It is empty
// until the first search.
func (r *Robot) PlanID() string { return r.planID }

// PathFound reports whether the last search reached its goal.
func (r *Robot) PathFound() bool { return r.pathFound }

// PathLength is the number of moves of the last successful plan.
func (r *Robot) PathLength() int { return r.pathLength }

// OpenedCount is the number of cells opened by searches since the last reset.
func (r *Robot) OpenedCount() int64 { return r.openCount }

// ResetOpenedCount zeroes the opened counter. Searches never reset it.
func (r *Robot) ResetOpenedCount() { r.openCount = 0 }

// Row is the robot's current row.
func (r *Robot) Row() int { return r.position.Row }

// Col is the robot's current column.
func (r *Robot) Col() int { return r.position.Col }

// Position is the robot's current cell.
func (r *Robot) Position() Position { return r.position }

// IncRow moves the robot one row down without consulting the environment.
func (r *Robot) IncRow() { r.position.Row++ }

// DecRow moves the robot one row up.
func (r *Robot) DecRow() { r.position.Row-- }

// IncCol moves the robot one column right.
func (r *Robot) IncCol() { r.position.Col++ }

// DecCol moves the robot one column left.
func (r *Robot) DecCol() { r.position.Col-- }

// Apply moves the robot by one action without consulting the environment.
func (r *Robot) Apply(action Action) {
	switch action {
	case MoveUp:
		r.DecRow()
	case MoveDown:
		r.IncRow()
	case MoveLeft:
		r.DecCol()
	case MoveRight:
		r.IncCol()
	}
}
