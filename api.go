package gridbot

import "log/slog"

// Environment is the grid the robot plans over.
type Environment interface {
	// Valid reports whether the cell is inside the grid and not blocked.
	Valid(row, col int) bool
	Rows() int
	Cols() int
	// PrimaryTarget is the goal of the single-target planners, or NoTarget
	// when there is none.
	PrimaryTarget() Position
	// Targets lists every goal of the multi-target planners in caller order.
	Targets() []Position
}

// NoTarget lies outside every grid, so single-target planners never reach it.
var NoTarget = Position{Row: -1, Col: -1}

// Result contains the outcome of a search
type Result struct {
	Path   []Action
	Found  bool
	Length int
	// Opened is how much this call added to the robot's opened counter.
	Opened int64
}

// Options defines parameters for the robot's planners.
type Options struct {
	Logger          *slog.Logger
	MultiTargetCost CostModel
	OnExpand        func(Position)
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger searches report to. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMultiTargetCost selects the frontier ordering of MultiAStar.
func WithMultiTargetCost(model CostModel) Option {
	return func(options *Options) { options.MultiTargetCost = model }
}

// WithExpansionHook registers fn to be called with every cell a search
// expands, in expansion order. Intended for visualisers and debugging tools.
func WithExpansionHook(fn func(Position)) Option {
	return func(options *Options) { options.OnExpand = fn }
}
