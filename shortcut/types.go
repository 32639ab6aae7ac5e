// Package shortcut ranks single-wall "cheats" on a grid by how much they
// shorten the best route between two points.
//
// A removable wall is a blocked cell whose two vertical neighbours, or whose
// two horizontal neighbours, are both passable. Evaluate opens each such wall
// in turn, reruns the astar search, records baseline − new cost, and closes
// the wall again before the next trial.
//
// Trials run sequentially on the caller's grid by default; every toggle is
// undone by a deferred restore, so the grid is bit-for-bit unchanged when
// Evaluate returns. WithWorkers(n) spreads trials over n goroutines, each
// working on a private clone of the grid.
package shortcut

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors for shortcut evaluation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("shortcut: grid is nil")

	// ErrNoBaseline is returned when the goal is unreachable before any wall is removed.
	ErrNoBaseline = errors.New("shortcut: goal unreachable before any wall is removed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shortcut: invalid option supplied")
)

// Option configures Evaluate via functional arguments.
type Option func(*Options)

// Options holds the evaluation parameters.
type Options struct {
	// Workers is the number of concurrent trials; 1 runs in place on the caller's grid.
	Workers int

	// Prune skips the search for walls that touch fewer than two cells of
	// the start's region; such walls can not shorten the route.
	Prune bool

	// Logger receives per-candidate debug entries and a summary.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns sequential, pruned evaluation with a silent logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return Options{
		Workers: 1,
		Prune:   true,
		Logger:  silent,
	}
}

// WithWorkers sets the number of concurrent trials.
//
//	n >= 1: use n workers, each with its own grid clone when n > 1
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithoutPruning searches every removable wall.
func WithoutPruning() Option {
	return func(o *Options) {
		o.Prune = false
	}
}

// WithLogger routes progress entries to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Saving is the outcome of removing one wall.
type Saving struct {
	Wall  gridmap.Position
	Cost  int64 // best cost with Wall opened
	Saved int64 // baseline − Cost, never negative
}

// Report holds the baseline cost and one Saving per removable wall, in
// row-major wall order.
type Report struct {
	Baseline int64
	Savings  []Saving
}

// CountAtLeast counts walls whose saving is at least threshold.
func (r *Report) CountAtLeast(threshold int64) int {
	n := 0
	for _, s := range r.Savings {
		if s.Saved >= threshold {
			n++
		}
	}
	return n
}

// Total sums all savings.
func (r *Report) Total() int64 {
	var sum int64
	for _, s := range r.Savings {
		sum += s.Saved
	}
	return sum
}

// Bucket is one histogram entry: Count walls save exactly Saved.
type Bucket struct {
	Saved int64
	Count int
}

// Histogram groups positive savings, ascending by Saved.
func (r *Report) Histogram() []Bucket {
	counts := map[int64]int{}
	for _, s := range r.Savings {
		if s.Saved > 0 {
			counts[s.Saved]++
		}
	}
	out := make([]Bucket, 0, len(counts))
	for saved, n := range counts {
		out = append(out, Bucket{Saved: saved, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Saved < out[j].Saved })
	return out
}
