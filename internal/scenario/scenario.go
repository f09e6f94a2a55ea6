// Package scenario loads TOML files describing a grid, the robot's start and
// the planner to run.
//
//	algorithm  = "astar-multi"
//	multi_cost = "uniform"
//	start      = [0, 0]
//	targets    = [[4, 4]]
//	map = """
//	S..#.
//	.#.T.
//	"""
//
// Exactly one of map, map_file and a [random] table must be given.
package scenario

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"

	"github.com/pdrpinto/gridbot"
	"github.com/pdrpinto/gridbot/grid"
)

// ErrInvalid is wrapped by every error caused by scenario content.
var ErrInvalid = xerrors.New("invalid scenario")

type Scenario struct {
	Algorithm string  `toml:"algorithm"`
	MultiCost string  `toml:"multi_cost"`
	Map       string  `toml:"map"`
	MapFile   string  `toml:"map_file"`
	Start     []int   `toml:"start"`
	Targets   [][]int `toml:"targets"`
	Random    *Random `toml:"random"`

	// dir resolves a relative MapFile.
	dir string
}

// Random requests a generated grid. Zero fields take grid.DefaultRandomOptions.
type Random struct {
	Rows     int     `toml:"rows"`
	Cols     int     `toml:"cols"`
	Clusters int     `toml:"clusters"`
	Steps    int     `toml:"steps"`
	Density  float64 `toml:"density"`
	Targets  int     `toml:"targets"`
	Seed     int64   `toml:"seed"`
}

// Load reads and validates the scenario at path. A relative map_file is
// resolved against the scenario's directory.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Decode reads and validates a scenario. Unknown keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, xerrors.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, xerrors.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	sources := 0
	if strings.TrimSpace(s.Map) != "" {
		sources++
	}
	if s.MapFile != "" {
		sources++
	}
	if s.Random != nil {
		sources++
	}
	if sources != 1 {
		return xerrors.Errorf("need exactly one of map, map_file, [random]: %w", ErrInvalid)
	}
	if s.Start != nil && len(s.Start) != 2 {
		return xerrors.Errorf("start must be [row, col]: %w", ErrInvalid)
	}
	for i, target := range s.Targets {
		if len(target) != 2 {
			return xerrors.Errorf("targets[%d] must be [row, col]: %w", i, ErrInvalid)
		}
	}
	if s.Random != nil && (s.Random.Rows <= 0 || s.Random.Cols <= 0) {
		return xerrors.Errorf("random rows and cols must be positive: %w", ErrInvalid)
	}
	if _, err := s.AlgorithmValue(); err != nil {
		return err
	}
	if _, err := s.CostModel(); err != nil {
		return err
	}
	return nil
}

// AlgorithmValue returns the configured planner, BFS when unset.
func (s *Scenario) AlgorithmValue() (gridbot.Algorithm, error) {
	if strings.TrimSpace(s.Algorithm) == "" {
		return gridbot.BFS, nil
	}
	algorithm, err := gridbot.ParseAlgorithm(s.Algorithm)
	if err != nil {
		return 0, xerrors.Errorf("algorithm: %w", err)
	}
	return algorithm, nil
}

// CostModel returns the configured multi-target cost model, uniform when unset.
func (s *Scenario) CostModel() (gridbot.CostModel, error) {
	model, err := gridbot.ParseCostModel(s.MultiCost)
	if err != nil {
		return 0, xerrors.Errorf("multi_cost: %w", err)
	}
	return model, nil
}

// Build creates the grid and the robot's start cell. An explicit start
// overrides the map's S cell; extra targets follow the map's targets.
func (s *Scenario) Build() (*grid.Grid, gridbot.Position, error) {
	g, err := s.buildGrid()
	if err != nil {
		return nil, gridbot.Position{}, err
	}
	if s.Start != nil {
		g.SetStart(s.Start[0], s.Start[1])
	}
	for _, target := range s.Targets {
		g.AddTarget(target[0], target[1])
	}

	start, ok := g.Start()
	if !ok {
		return nil, gridbot.Position{}, xerrors.Errorf("no start cell: %w", ErrInvalid)
	}
	return g, start, nil
}

func (s *Scenario) buildGrid() (*grid.Grid, error) {
	switch {
	case s.Random != nil:
		options := grid.DefaultRandomOptions
		if s.Random.Clusters > 0 {
			options.Clusters = s.Random.Clusters
		}
		if s.Random.Steps > 0 {
			options.Steps = s.Random.Steps
		}
		if s.Random.Density > 0 {
			options.Density = s.Random.Density
		}
		if s.Random.Targets > 0 {
			options.Targets = s.Random.Targets
		}
		rng := rand.New(rand.NewSource(s.Random.Seed))
		return grid.Random(s.Random.Rows, s.Random.Cols, options, rng), nil
	case s.MapFile != "":
		path := s.MapFile
		if !filepath.IsAbs(path) && s.dir != "" {
			path = filepath.Join(s.dir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := grid.Parse(f)
		if err != nil {
			return nil, xerrors.Errorf("%s: %w", path, err)
		}
		return g, nil
	default:
		return grid.Parse(strings.NewReader(s.Map))
	}
}
