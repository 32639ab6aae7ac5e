// Package astar provides best-first minimum-cost search over a gridmap.Grid
// with a pluggable cost.Model.
//
// Overview:
//
//   - Search expands States in order of f = g + h, where g is the cost so far
//     and h is a heuristic estimate (cost.Manhattan by default) of the
//     remaining cost to the goal Position.
//   - The goal is reached when a popped State's Position equals the goal;
//     orientation, if the model tracks one, does not matter.
//   - A State is relaxed whenever a strictly smaller g is found, even after it
//     was expanded, so the result stays optimal for any non-negative model.
//
// Result semantics:
//
//   - Found == true:  Cost is the minimum total cost; Path is filled when
//     WithReturnPath() is given.
//   - Found == false: the goal is unreachable. This is a normal outcome, not
//     an error. Result.LegacyCost() maps it to 0 for callers that want the
//     historical sentinel, which is ambiguous with start == goal.
//
// Tie-breaking:
//
//	Among equal f the frontier pops the smaller h first, then the smaller
//	Position (row, then column), then the smaller Axis. Costs never depend on
//	this order; reconstructed paths do, and are reproducible because of it.
//
// Complexity:
//
//   - Time:  O(S log S) for S distinct States (cells × axes).
//   - Space: O(S) for the score table, frontier and predecessor map.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrNilModel:       missing inputs.
//   - ErrStartOutOfBounds:           start Position is outside the grid.
//   - ErrGoalOutOfBounds:            goal Position is outside the grid.
//   - ErrOptionViolation:            an invalid option (e.g. negative MaxCost).
//   - ErrNegativeCost:               the model produced a negative edge cost.
//
// Thread safety:
//
//   - Search allocates all of its state per call and never writes to the grid.
//     Concurrent searches on one grid are safe as long as nobody mutates it.
package astar
