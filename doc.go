// Package gridpath is a small engine for least-cost routes on rectangular
// character grids, plus the puzzles built on top of it.
//
// 🚀 What is gridpath?
//
//	A deterministic, single-threaded-per-search toolkit that brings together:
//		• Grids: parse text mazes, toggle single cells with guaranteed restore
//		• Cost models: uniform steps, or steps plus a price for every turn
//		• Search: A* over (position, axis) states with Manhattan or zero heuristic
//		• Shortcuts: rank every removable wall by how much it shortens the route
//		• Falling bytes: shortest exit and the first byte that seals it
//
// Under the hood the work is split into subpackages:
//
//	gridmap/  : Grid, Position, Parse, Open/restore, Region flood fill
//	cost/     : State, Model (Uniform, TurnPenalized), Heuristic
//	astar/    : Search, FindMinCost, Result with explicit Found
//	shortcut/ : RemovableWalls, Evaluate, Report
//	bytefall/ : Memory, ShortestExit, FirstBlocking
//	cmd/      : reindeer, racetrack and bytefall command-line tools
//
// Quick ASCII example:
//
//	#####
//	#S#E#
//	#.#.#
//	#...#
//	#####
//
//	Uniform cost 6; with TurnPenalized every corner adds 1000.
package gridpath
