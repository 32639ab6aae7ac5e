// Package gridmap turns a rectangular character grid into a passability
// map that path searches can run over.
//
// What:
//
//   - Grid stores one Cell (Passable or Blocked) per Position in a row-major arena.
//   - Parse reads the textual format: one line per row, a wall symbol, an empty
//     symbol and optional start/goal/extra markers (see Alphabet).
//   - Start, Goal and Markers expose the points of interest found while scanning.
//   - Open flips a single Blocked cell to Passable and hands back a restore func,
//     so trial edits are always undone.
//   - Region collects every cell reachable from a position (4-connected).
//
// Why:
//
//   - Maze and race-track puzzles: parse once, search many times.
//   - Shortcut evaluation: try one obstruction removal at a time without
//     disturbing the baseline grid.
//
// Complexity:
//
//   - Parse:        O(W×H), Memory: O(W×H).
//   - IsPassable:   O(1).
//   - Clone, Equal: O(W×H).
//   - Region:       O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrUnknownSymbol:   a character outside the Alphabet.
//   - ErrMissingStart:    the Alphabet declares a start marker but none was found.
//   - ErrMissingGoal:     the Alphabet declares a goal marker but none was found.
//   - ErrDuplicateMarker: more than one start or goal marker.
//   - ErrOutOfBounds:     a mutation targets a position outside the grid.
//   - ErrBadAlphabet:     wall/empty symbols missing or symbols reused.
package gridmap
