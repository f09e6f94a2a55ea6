package grid

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/xerrors"
)

const (
	openCell        = '.'
	wallCell        = '#'
	altWallCell     = 'X'
	startCell       = 'S'
	targetCell      = 'T'
	startTargetCell = '*'
)

// ErrMalformed is wrapped by every Parse error caused by the map text.
var ErrMalformed = xerrors.New("malformed grid")

// Parse reads an ASCII map. Rows must share one width; blank lines are skipped.
//
//	.  open cell
//	#  blocked cell (X is accepted too)
//	S  start cell
//	T  target cell, in row-major order
//	*  start cell that is also a target
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, xerrors.Errorf("no rows: %w", ErrMalformed)
	}

	cols := len(lines[0])
	g := New(len(lines), cols)
	for row, line := range lines {
		if len(line) != cols {
			return nil, xerrors.Errorf("line %d has width %d, want %d: %w", row+1, len(line), cols, ErrMalformed)
		}
		for col := 0; col < cols; col++ {
			switch cell := line[col]; cell {
			case openCell:
			case wallCell, altWallCell:
				g.Block(row, col)
			case targetCell:
				g.AddTarget(row, col)
			case startCell, startTargetCell:
				if g.hasStart {
					return nil, xerrors.Errorf("line %d: second start cell: %w", row+1, ErrMalformed)
				}
				g.SetStart(row, col)
				if cell == startTargetCell {
					g.AddTarget(row, col)
				}
			default:
				return nil, xerrors.Errorf("line %d col %d: unexpected %q: %w", row+1, col+1, cell, ErrMalformed)
			}
		}
	}
	return g, nil
}

// MustParse is Parse on a string that panics on error. Meant for fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	return g
}
