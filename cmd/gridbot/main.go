// Command gridbot plans a robot's route over a grid and replays it.
//
//	gridbot -scenario office.toml
//	gridbot -map maze.txt -algo astar
//	gridbot -random 24x40 -seed 7 -targets 5 -algo bfs-multi -v
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/xerrors"

	"github.com/pdrpinto/gridbot"
	"github.com/pdrpinto/gridbot/internal/scenario"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = xerrors.New("usage")

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridbot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenario", "", "TOML scenario file")
	mapPath := fs.String("map", "", "ASCII map file")
	randomSize := fs.String("random", "", "generate a ROWSxCOLS map")
	seed := fs.Int64("seed", 1, "seed for -random")
	targets := fs.Int("targets", 1, "number of targets for -random")
	algo := fs.String("algo", "", "bfs, astar, bfs-multi or astar-multi (overrides the scenario)")
	multiCost := fs.String("multi-cost", "", "uniform or heuristic (overrides the scenario)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sc, err := loadScenario(*scenarioPath, *mapPath, *randomSize, *seed, *targets)
	if err != nil {
		return err
	}
	if *algo != "" {
		sc.Algorithm = *algo
	}
	if *multiCost != "" {
		sc.MultiCost = *multiCost
	}
	algorithm, err := sc.AlgorithmValue()
	if err != nil {
		return err
	}
	model, err := sc.CostModel()
	if err != nil {
		return err
	}

	g, start, err := sc.Build()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(stdout, g.String())
	_, _ = fmt.Fprintln(stdout)

	robot := gridbot.New(g, start.Row, start.Col,
		gridbot.WithLogger(logger),
		gridbot.WithMultiTargetCost(model),
	)
	result, err := robot.Search(algorithm)
	if err != nil {
		return err
	}
	logger.Info("planned",
		"plan", robot.PlanID(),
		"algorithm", algorithm.String(),
		"found", robot.PathFound(),
		"length", robot.PathLength(),
		"opened", robot.OpenedCount(),
	)

	names := make([]string, len(result.Path))
	for i, action := range result.Path {
		names[i] = action.String()
	}
	_, _ = fmt.Fprintf(stdout, "plan: %s\nfound: %t\nlength: %d\nopened: %d\nactions: %s\n",
		robot.PlanID(), robot.PathFound(), robot.PathLength(), robot.OpenedCount(), strings.Join(names, " "))

	trail, err := gridbot.NewStepper(robot).Run()
	if err != nil {
		return err
	}
	end := trail[len(trail)-1]
	_, _ = fmt.Fprintf(stdout, "final: (%d,%d) after %d moves\n", end.Row, end.Col, len(trail)-1)
	return nil
}

func loadScenario(path, mapPath, randomSize string, seed int64, targets int) (*scenario.Scenario, error) {
	given := 0
	for _, v := range []string{path, mapPath, randomSize} {
		if v != "" {
			given++
		}
	}
	if given != 1 {
		return nil, xerrors.Errorf("exactly one of -scenario, -map, -random is required: %w", errUsage)
	}

	switch {
	case path != "":
		return scenario.Load(path)
	case mapPath != "":
		return &scenario.Scenario{MapFile: mapPath}, nil
	}

	rows, cols, err := parseSize(randomSize)
	if err != nil {
		return nil, err
	}
	return &scenario.Scenario{Random: &scenario.Random{
		Rows:    rows,
		Cols:    cols,
		Seed:    seed,
		Targets: targets,
	}}, nil
}

func parseSize(size string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(size), "x")
	if !ok {
		return 0, 0, xerrors.Errorf("-random %q, want ROWSxCOLS: %w", size, errUsage)
	}
	if rows, err = strconv.Atoi(r); err != nil || rows <= 0 {
		return 0, 0, xerrors.Errorf("-random rows %q: %w", r, errUsage)
	}
	if cols, err = strconv.Atoi(c); err != nil || cols <= 0 {
		return 0, 0, xerrors.Errorf("-random cols %q: %w", c, errUsage)
	}
	return rows, cols, nil
}
