// Package cost defines the pluggable neighbour/edge-cost policies that the
// astar engine searches with.
//
// A Model answers one question: from a given State, which States can be
// reached in one move and at what price. Two policies are provided:
//
//   - Uniform: 4 orthogonal neighbours, every move costs 1.
//   - TurnPenalized: the State carries the axis of the last move; continuing
//     on the same axis costs Step, switching axis costs Step+Turn.
//
// Heuristics live here too, since their admissibility depends on the model:
// Manhattan never overestimates for either policy because every move costs at
// least 1 and changes the Manhattan distance by exactly 1.
package cost

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Axis is the orientation a State was entered with.
type Axis uint8

const (
	// AxisNone is used by models that do not track orientation.
	AxisNone Axis = iota
	// Horizontal follows a row (east/west moves).
	Horizontal
	// Vertical follows a column (north/south moves).
	Vertical
)

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// axisOf maps a move direction to the axis it travels along.
func axisOf(d gridmap.Direction) Axis {
	if d.Horizontal() {
		return Horizontal
	}
	return Vertical
}

// State is the unit of search. States compare and hash by Pos and Axis.
type State struct {
	Pos  gridmap.Position
	Axis Axis
}

func (s State) String() string {
	if s.Axis == AxisNone {
		return s.Pos.String()
	}
	return fmt.Sprintf("%v/%v", s.Pos, s.Axis)
}

// Step is one outgoing move: the State it lands in and its price.
type Step struct {
	To   State
	Cost int64
}

// Model is a neighbour and edge-cost policy.
// Neighbors must only yield in-bounds, passable destinations and
// non-negative costs.
type Model interface {
	// Start returns the initial search State for position p.
	Start(p gridmap.Position) State
	// Neighbors lists the moves available from s on g.
	Neighbors(g *gridmap.Grid, s State) []Step
}

// Heuristic estimates the remaining cost from p to goal.
type Heuristic func(p, goal gridmap.Position) int64

// Manhattan is the default heuristic: |Δrow| + |Δcol|.
func Manhattan(p, goal gridmap.Position) int64 {
	return int64(p.Manhattan(goal))
}

// Zero always estimates 0, turning A* into Dijkstra's algorithm.
func Zero(_, _ gridmap.Position) int64 {
	return 0
}
