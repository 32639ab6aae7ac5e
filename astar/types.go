package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/cost"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridmap.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilModel indicates that no cost.Model was passed.
	ErrNilModel = errors.New("astar: cost model is nil")

	// ErrStartOutOfBounds indicates the start State lies outside the grid.
	ErrStartOutOfBounds = errors.New("astar: start position out of bounds")

	// ErrGoalOutOfBounds indicates the goal Position lies outside the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNegativeCost indicates the cost model produced a negative edge cost.
	ErrNegativeCost = errors.New("astar: negative edge cost")
)

// Options configures Search.
//
// ReturnPath – if true, Result.Path holds the realized route.
// Heuristic  – estimate of remaining cost; must not overestimate for optimality.
// MaxCost    – States whose g would exceed this value are not explored.
type Options struct {
	ReturnPath bool
	Heuristic  cost.Heuristic
	MaxCost    int64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns no path, cost.Manhattan, and no cost cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		Heuristic:  cost.Manhattan,
		MaxCost:    unbounded,
	}
}

// WithReturnPath enables predecessor tracking so Result.Path is populated.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithHeuristic replaces the heuristic. A nil h is ignored.
// cost.Zero turns the search into Dijkstra's algorithm.
func WithHeuristic(h cost.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxCost stops exploring States whose cost so far exceeds max.
// A negative max is recorded and surfaced as ErrOptionViolation.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Found reports whether the goal was reached.
	Found bool
	// Cost is the minimum total cost; meaningful only when Found.
	Cost int64
	// Path lists States from start to goal inclusive (WithReturnPath only).
	Path []cost.State
	// Expanded counts frontier pops that were expanded.
	Expanded int
}

// LegacyCost returns Cost, or 0 when the goal was unreachable.
func (r Result) LegacyCost() int64 {
	if !r.Found {
		return 0
	}
	return r.Cost
}
