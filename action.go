package gridbot

import (
	"strings"

	"golang.org/x/xerrors"
)

// Position is a grid cell addressed by row and column.
type Position struct {
	Row int
	Col int
}

// Step returns the cell reached by taking action from p.
func (p Position) Step(action Action) Position {
	dRow, dCol := action.Delta()
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Manhattan returns |Δrow| + |Δcol| between p and other.
func (p Position) Manhattan(other Position) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Action is a single robot move.
type Action int

const (
	// DoNothing is returned when there is no plan or it has been used up.
	DoNothing Action = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// expansionOrder is the neighbour order used by every engine.
var expansionOrder = [...]Action{MoveUp, MoveRight, MoveDown, MoveLeft}

var actionNames = map[Action]string{
	DoNothing: "noop",
	MoveUp:    "up",
	MoveDown:  "down",
	MoveLeft:  "left",
	MoveRight: "right",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Delta returns the row and column offsets of the action.
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case MoveUp:
		return -1, 0
	case MoveDown:
		return 1, 0
	case MoveLeft:
		return 0, -1
	case MoveRight:
		return 0, 1
	}
	return 0, 0
}

// Algorithm selects one of the robot's planners.
type Algorithm int

const (
	BFS Algorithm = iota
	AStar
	MultiBFS
	MultiAStar
)

// ErrUnknownAlgorithm is returned for algorithm names or values that do not
// map to a planner.
var ErrUnknownAlgorithm = xerrors.New("unknown algorithm")

var algorithmNames = map[Algorithm]string{
	BFS:        "bfs",
	AStar:      "astar",
	MultiBFS:   "bfs-multi",
	MultiAStar: "astar-multi",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlgorithm maps a name such as "astar-multi" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for algorithm, candidate := range algorithmNames {
		if candidate == name {
			return algorithm, nil
		}
	}
	return 0, xerrors.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// CostModel selects how the multi-target best-first planner orders its frontier.
type CostModel int

const (
	// UniformCost orders by accumulated cost only.
	UniformCost CostModel = iota
	// HeuristicCost orders by accumulated cost plus the weighted Manhattan estimate.
	HeuristicCost
)

// ErrUnknownCostModel is returned by ParseCostModel.
var ErrUnknownCostModel = xerrors.New("unknown cost model")

func (m CostModel) String() string {
	switch m {
	case UniformCost:
		return "uniform"
	case HeuristicCost:
		return "heuristic"
	}
	return "unknown"
}

// ParseCostModel maps "uniform" or "heuristic" to a CostModel.
func ParseCostModel(name string) (CostModel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform":
		return UniformCost, nil
	case "heuristic":
		return HeuristicCost, nil
	}
	return 0, xerrors.Errorf("%q: %w", name, ErrUnknownCostModel)
}
