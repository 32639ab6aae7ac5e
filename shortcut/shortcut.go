package shortcut

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/gridmap"
)

// RemovableWalls lists blocked cells with passable cells on both sides,
// vertically or horizontally, in row-major order.
// Neighbours outside the grid never count as passable.
func RemovableWalls(g *gridmap.Grid) []gridmap.Position {
	rows, cols := g.Dimensions()
	var out []gridmap.Position
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := gridmap.At(row, col)
			if g.IsPassable(p) {
				continue
			}
			vertical := g.IsPassable(p.Move(gridmap.North)) && g.IsPassable(p.Move(gridmap.South))
			horizontal := g.IsPassable(p.Move(gridmap.East)) && g.IsPassable(p.Move(gridmap.West))
			if vertical || horizontal {
				out = append(out, p)
			}
		}
	}
	return out
}

// EvaluateCandidates counts removable walls whose removal saves at least
// threshold on the best start→goal cost.
func EvaluateCandidates(g *gridmap.Grid, model cost.Model, start cost.State, goal gridmap.Position, threshold int64, opts ...Option) (int, error) {
	rep, err := Evaluate(g, model, start, goal, opts...)
	if err != nil {
		return 0, err
	}
	return rep.CountAtLeast(threshold), nil
}

// Evaluate computes the baseline cost, then the saving of every removable wall.
//
// Behavior:
//  1. Baseline search on g; ErrNoBaseline if the goal is unreachable.
//  2. Collect RemovableWalls(g).
//  3. With pruning, walls touching fewer than two cells of the start region
//     are recorded as saving 0 without a search.
//  4. Each remaining wall is opened, searched, and closed again.
//
// g is unchanged when Evaluate returns, on success and on error.
//
// Complexity: O(C × search) for C candidates.
func Evaluate(g *gridmap.Grid, model cost.Model, start cost.State, goal gridmap.Position, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	base, err := astar.Search(g, model, start, goal)
	if err != nil {
		return nil, fmt.Errorf("shortcut: baseline search: %w", err)
	}
	if !base.Found {
		return nil, fmt.Errorf("%w: %v→%v", ErrNoBaseline, start.Pos, goal)
	}

	walls := RemovableWalls(g)
	rep := &Report{
		Baseline: base.Cost,
		Savings:  make([]Saving, len(walls)),
	}

	var region mapset.Set[gridmap.Position]
	if cfg.Prune {
		region = g.Region(start.Pos)
	}
	pending := make([]int, 0, len(walls))
	for i, w := range walls {
		rep.Savings[i] = Saving{Wall: w, Cost: base.Cost}
		if cfg.Prune && touching(region, w) < 2 {
			continue
		}
		pending = append(pending, i)
	}

	e := &evaluator{
		model:    model,
		start:    start,
		goal:     goal,
		baseline: base.Cost,
		log:      cfg.Logger,
		report:   rep,
	}
	if cfg.Workers > 1 && len(pending) > 1 {
		err = e.runParallel(g, pending, cfg.Workers)
	} else {
		err = e.runSequential(g, pending)
	}
	if err != nil {
		return nil, err
	}

	cfg.Logger.WithFields(logrus.Fields{
		"baseline":   rep.Baseline,
		"candidates": len(walls),
		"searched":   len(pending),
		"total":      rep.Total(),
	}).Info("shortcut evaluation finished")
	return rep, nil
}

// touching counts the orthogonal neighbours of w that lie in region.
func touching(region mapset.Set[gridmap.Position], w gridmap.Position) int {
	n := 0
	for _, d := range gridmap.Directions {
		if region.Has(w.Move(d)) {
			n++
		}
	}
	return n
}

// evaluator carries the per-call parameters shared by all trials.
// Each trial writes only its own report slot.
type evaluator struct {
	model    cost.Model
	start    cost.State
	goal     gridmap.Position
	baseline int64
	log      logrus.FieldLogger
	report   *Report
}

// runSequential evaluates pending walls one by one on g itself.
func (e *evaluator) runSequential(g *gridmap.Grid, pending []int) error {
	for _, i := range pending {
		if err := e.trial(g, i); err != nil {
			return err
		}
	}
	return nil
}

// runParallel hands pending walls to workers; each worker owns a clone of g,
// so no toggle is ever visible to another search.
func (e *evaluator) runParallel(g *gridmap.Grid, pending []int, workers int) error {
	if workers > len(pending) {
		workers = len(pending)
	}
	jobs := make(chan int)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(private *gridmap.Grid) {
			defer wg.Done()
			for i := range jobs {
				if err := e.trial(private, i); err != nil {
					errs <- err
					// keep draining so the producer never blocks
					for range jobs {
					}
					return
				}
			}
		}(g.Clone())
	}

	for _, i := range pending {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(errs)

	return <-errs
}

// trial opens one wall on g, searches, and restores the wall on every path out.
func (e *evaluator) trial(g *gridmap.Grid, i int) error {
	s := &e.report.Savings[i]
	restore, err := g.Open(s.Wall)
	if err != nil {
		return fmt.Errorf("shortcut: open %v: %w", s.Wall, err)
	}
	defer restore()

	res, err := astar.Search(g, e.model, e.start, e.goal)
	if err != nil {
		return fmt.Errorf("shortcut: search with %v open: %w", s.Wall, err)
	}
	if res.Found && res.Cost < e.baseline {
		s.Cost = res.Cost
		s.Saved = e.baseline - res.Cost
	}

	e.log.WithFields(logrus.Fields{
		"wall":  s.Wall,
		"cost":  s.Cost,
		"saved": s.Saved,
	}).Debug("shortcut evaluated")
	return nil
}
