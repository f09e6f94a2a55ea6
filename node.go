package gridbot

import "github.com/pdrpinto/gridbot/internal"

// searchNode is one discovered cell. Parent indexes the owning arena and is -1
// for the start cell, whose Via is DoNothing. G is the cost of the route from
// the start.
type searchNode struct {
	Pos    Position
	Parent int
	Via    Action
	G      int
}

// arena owns every node discovered by one search call.
type arena []searchNode

func (a *arena) add(node searchNode) int {
	*a = append(*a, node)
	return len(*a) - 1
}

// actions rebuilds the moves leading from the root to the node at index.
func (a arena) actions(index int) []Action {
	return internal.Backtrace(
		index,
		func(i int) int { return a[i].Parent },
		func(i int) Action { return a[i].Via },
	)
}

// cellSet is a Rows×Cols membership grid. Cells outside the grid are never
// members.
type cellSet struct {
	rows, cols int
	cells      []bool
}

func newCellSet(rows, cols int) *cellSet {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &cellSet{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

func (s *cellSet) index(p Position) (int, bool) {
	if p.Row < 0 || p.Row >= s.rows || p.Col < 0 || p.Col >= s.cols {
		return 0, false
	}
	return p.Row*s.cols + p.Col, true
}

func (s *cellSet) has(p Position) bool {
	i, ok := s.index(p)
	return ok && s.cells[i]
}

func (s *cellSet) add(p Position) {
	if i, ok := s.index(p); ok {
		s.cells[i] = true
	}
}

// neighbors yields the valid cells around p in expansion order.
func neighbors(env Environment, p Position, yield func(next Position, via Action)) {
	for _, action := range expansionOrder {
		next := p.Step(action)
		if env.Valid(next.Row, next.Col) {
			yield(next, action)
		}
	}
}
