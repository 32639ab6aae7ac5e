package cost

import "github.com/katalvlaran/gridpath/gridmap"

// Uniform charges 1 per orthogonal move and ignores orientation.
type Uniform struct{}

// Start returns the orientation-free State at p.
func (Uniform) Start(p gridmap.Position) State {
	return State{Pos: p}
}

// Neighbors yields the passable cells north, south, east and west of s.
func (Uniform) Neighbors(g *gridmap.Grid, s State) []Step {
	out := make([]Step, 0, len(gridmap.Directions))
	for _, d := range gridmap.Directions {
		next := s.Pos.Move(d)
		if !g.IsPassable(next) {
			continue
		}
		out = append(out, Step{To: State{Pos: next}, Cost: 1})
	}
	return out
}

// Default reindeer-maze prices: forward 1, a 90° rotation 1000.
const (
	DefaultStepCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// TurnPenalized charges Step for a move along the current axis and
// Step+Turn for a move that changes axis. The penalty is a single quantum per
// axis change; reversing along the same axis is not a turn.
type TurnPenalized struct {
	Step int64
	Turn int64
}

// NewTurnPenalized returns the maze pricing: 1 straight, 1001 with a turn.
func NewTurnPenalized() TurnPenalized {
	return TurnPenalized{Step: DefaultStepCost, Turn: DefaultTurnCost}
}

// Start returns the State at p facing along a row (the reindeer starts facing east).
func (TurnPenalized) Start(p gridmap.Position) State {
	return State{Pos: p, Axis: Horizontal}
}

// Neighbors yields the four orthogonal passable moves from s, each tagged
// with the axis implied by its direction.
func (m TurnPenalized) Neighbors(g *gridmap.Grid, s State) []Step {
	out := make([]Step, 0, len(gridmap.Directions))
	for _, d := range gridmap.Directions {
		next := s.Pos.Move(d)
		if !g.IsPassable(next) {
			continue
		}
		axis := axisOf(d)
		c := m.Step
		if axis != s.Axis {
			c += m.Turn
		}
		out = append(out, Step{To: State{Pos: next, Axis: axis}, Cost: c})
	}
	return out
}

// compile-time checks
var (
	_ Model = Uniform{}
	_ Model = TurnPenalized{}
)
