// Package gridmap defines core types, options, and sentinel errors
// for the gridmap package of github.com/katalvlaran/gridpath.
package gridmap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrUnknownSymbol indicates a character that the Alphabet does not recognize.
	ErrUnknownSymbol = errors.New("gridmap: unrecognized symbol")
	// ErrMissingStart indicates the start marker was declared but never seen.
	ErrMissingStart = errors.New("gridmap: start marker not found")
	// ErrMissingGoal indicates the goal marker was declared but never seen.
	ErrMissingGoal = errors.New("gridmap: goal marker not found")
	// ErrDuplicateMarker indicates a start or goal marker appears more than once.
	ErrDuplicateMarker = errors.New("gridmap: marker appears more than once")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridmap: position out of bounds")
	// ErrBadAlphabet indicates an unusable symbol set.
	ErrBadAlphabet = errors.New("gridmap: invalid alphabet")
)

// Cell classifies a single grid cell.
type Cell uint8

const (
	// Passable cells can be entered by a search.
	Passable Cell = iota
	// Blocked cells are walls or fallen obstacles.
	Blocked
)

// String renders the cell with the default alphabet symbols.
func (c Cell) String() string {
	if c == Blocked {
		return "#"
	}
	return "."
}

// Position is a 0-based (row, column) coordinate.
// Two positions are equal iff both coordinates match.
type Position struct {
	Row, Col int
}

// At is shorthand for Position{Row: row, Col: col}.
func At(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move returns the position one step away in direction d.
// The result may lie outside the grid; check with InBounds.
func (p Position) Move(d Direction) Position {
	off := offsets[d]
	return Position{Row: p.Row + off[0], Col: p.Col + off[1]}
}

// Manhattan returns the sum of absolute coordinate differences between p and q.
func (p Position) Manhattan(q Position) int {
	return AbsDiff(p.Row, q.Row) + AbsDiff(p.Col, q.Col)
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists the four orthogonal moves in iteration order.
var Directions = [4]Direction{North, South, East, West}

// offsets holds (dRow, dCol) per Direction.
var offsets = [4][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// Horizontal reports whether d moves along a row (east or west).
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Alphabet names the symbols Parse understands.
// A zero Start or Goal rune means the variant has no such marker.
// Extra markers are passable and recorded as metadata (see Grid.Markers).
type Alphabet struct {
	Wall  rune
	Empty rune
	Start rune
	Goal  rune
	Extra []rune
}

// DefaultAlphabet returns the maze/race-track symbols: '#', '.', 'S', 'E'.
func DefaultAlphabet() Alphabet {
	return Alphabet{
		Wall:  '#',
		Empty: '.',
		Start: 'S',
		Goal:  'E',
	}
}

// validate ensures Wall and Empty are set and no symbol is reused.
func (a Alphabet) validate() error {
	if a.Wall == 0 || a.Empty == 0 {
		return fmt.Errorf("%w: wall and empty symbols are required", ErrBadAlphabet)
	}
	seen := map[rune]bool{}
	for _, r := range append([]rune{a.Wall, a.Empty, a.Start, a.Goal}, a.Extra...) {
		if r == 0 {
			continue
		}
		if seen[r] {
			return fmt.Errorf("%w: symbol %q used twice", ErrBadAlphabet, r)
		}
		seen[r] = true
	}
	return nil
}

// Option configures Parse.
type Option func(*ParseOptions)

// ParseOptions holds the parameters for Parse.
type ParseOptions struct {
	// Alphabet is the symbol set of the puzzle variant.
	Alphabet Alphabet
	// RequireEndpoints makes a declared but absent start/goal marker an error.
	RequireEndpoints bool
}

// DefaultParseOptions returns DefaultAlphabet with endpoints required.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Alphabet:         DefaultAlphabet(),
		RequireEndpoints: true,
	}
}

// WithAlphabet replaces the symbol set.
func WithAlphabet(a Alphabet) Option {
	return func(o *ParseOptions) {
		o.Alphabet = a
	}
}

// WithExtraMarkers adds passable metadata markers to the current alphabet.
func WithExtraMarkers(markers ...rune) Option {
	return func(o *ParseOptions) {
		o.Alphabet.Extra = append(append([]rune(nil), o.Alphabet.Extra...), markers...)
	}
}

// WithoutEndpoints accepts grids that lack start or goal markers.
func WithoutEndpoints() Option {
	return func(o *ParseOptions) {
		o.RequireEndpoints = false
	}
}

// Grid is a rectangular passability map. Rows and Cols are fixed once built;
// cells change only through SetPassable or Open.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major: index = row*cols + col

	start, goal       Position
	hasStart, hasGoal bool
	markers           map[rune][]Position
}
