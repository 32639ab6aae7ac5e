package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/gridmap"
)

const unbounded = int64(math.MaxInt64)

// Search computes the minimum total cost to move from start to any State
// whose Position equals goal, under model on grid g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. model must be non-nil (ErrNilModel).
//  3. options must be valid (ErrOptionViolation).
//  4. start.Pos must lie inside g (ErrStartOutOfBounds).
//  5. goal must lie inside g (ErrGoalOutOfBounds).
//
// An unreachable goal is reported as Result.Found == false with a nil error.
// start == goal always yields Found with Cost 0.
//
// Complexity:
//
//   - Time:  O(S log S), S = distinct States.
//   - Space: O(S).
func Search(g *gridmap.Grid, model cost.Model, start cost.State, goal gridmap.Position, opts ...Option) (Result, error) {
	// 1) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if model == nil {
		return Result{}, ErrNilModel
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if !g.InBounds(start.Pos) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start.Pos)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}

	// 2) Per-call state, discarded on return
	r := &runner{
		grid:   g,
		model:  model,
		goal:   goal,
		opts:   cfg,
		scores: newScoreTable(),
		open:   newFrontier(),
	}
	if cfg.ReturnPath {
		r.came = make(map[cost.State]cost.State)
	}

	// 3) Seed and run
	r.init(start)
	return r.process(start)
}

// FindMinCost is Search without options: the minimum cost from start to goal
// and whether the goal is reachable at all.
func FindMinCost(g *gridmap.Grid, model cost.Model, start cost.State, goal gridmap.Position) (int64, bool, error) {
	res, err := Search(g, model, start, goal)
	if err != nil {
		return 0, false, err
	}
	return res.Cost, res.Found, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	grid     *gridmap.Grid
	model    cost.Model
	goal     gridmap.Position
	opts     Options
	scores   scoreTable                // g and f per State
	open     *frontier                 // discovered, not expanded
	came     map[cost.State]cost.State // predecessor links; nil unless ReturnPath
	expanded int
}

// init sets g[start] = 0, f[start] = h(start) and pushes start.
func (r *runner) init(start cost.State) {
	h := r.opts.Heuristic(start.Pos, r.goal)
	r.scores.g[start] = 0
	r.scores.f[start] = h
	r.open.upsert(start, h, h)
}

// process pops the minimum-f State until the goal is popped or the frontier empties.
func (r *runner) process(start cost.State) (Result, error) {
	for r.open.Len() > 0 {
		cur := r.open.popMin().state

		if cur.Pos == r.goal {
			res := Result{
				Found:    true,
				Cost:     r.scores.g[cur],
				Expanded: r.expanded,
			}
			if r.came != nil {
				res.Path = r.path(start, cur)
			}
			return res, nil
		}

		r.expanded++
		if err := r.relax(cur); err != nil {
			return Result{}, err
		}
	}

	return Result{Found: false, Expanded: r.expanded}, nil
}

// relax tries to improve every neighbour of cur.
// A neighbour is updated only when the tentative g is strictly smaller.
func (r *runner) relax(cur cost.State) error {
	base := r.scores.g[cur]
	for _, st := range r.model.Neighbors(r.grid, cur) {
		if st.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, cur, st.To, st.Cost)
		}
		tentative := base + st.Cost
		if tentative > r.opts.MaxCost {
			continue
		}
		if old, seen := r.scores.g[st.To]; seen && tentative >= old {
			continue
		}

		h := r.opts.Heuristic(st.To.Pos, r.goal)
		r.scores.g[st.To] = tentative
		r.scores.f[st.To] = tentative + h
		if r.came != nil {
			r.came[st.To] = cur
		}
		r.open.upsert(st.To, tentative+h, h)
	}
	return nil
}

// path walks predecessor links back from end to start.
func (r *runner) path(start, end cost.State) []cost.State {
	out := []cost.State{end}
	for cur := end; cur != start; {
		prev, ok := r.came[cur]
		if !ok {
			break
		}
		out = append(out, prev)
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
