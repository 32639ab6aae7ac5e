package gridmap

import (
	"fmt"
	"strings"
)

// New constructs an all-passable rows×cols grid without points of interest.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		cells:   make([]Cell, rows*cols),
		markers: map[rune][]Position{},
	}, nil
}

// NewFromCells constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure later edits to cells do not leak in.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
func NewFromCells(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g, _ := New(h, w)
	for y := 0; y < h; y++ {
		copy(g.cells[y*w:(y+1)*w], cells[y])
	}
	return g, nil
}

// Parse builds a Grid from text, one line per row.
//
// Behavior:
//  1. Leading blank lines are skipped; the first blank line after the grid
//     terminates it and anything below is ignored.
//  2. Every symbol must belong to the Alphabet; start, goal and extra markers
//     are passable and their positions recorded.
//  3. Rows must all have the first row's length (counted in runes).
//  4. With RequireEndpoints, declared start/goal markers must appear exactly once.
//
// Complexity: O(W×H).
func Parse(text string, opts ...Option) (*Grid, error) {
	cfg := DefaultParseOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	a := cfg.Alphabet
	if err := a.validate(); err != nil {
		return nil, err
	}

	lines := blockLines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	extra := make(map[rune]bool, len(a.Extra))
	for _, r := range a.Extra {
		extra[r] = true
	}

	g, _ := New(len(lines), width)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, len(runes), width)
		}
		for col, r := range runes {
			p := Position{Row: row, Col: col}
			switch {
			case r == a.Wall:
				g.cells[g.index(p)] = Blocked
			case r == a.Empty:
				// passable by default
			case a.Start != 0 && r == a.Start:
				if g.hasStart {
					return nil, fmt.Errorf("%w: start %q at %v and %v", ErrDuplicateMarker, r, g.start, p)
				}
				g.start, g.hasStart = p, true
			case a.Goal != 0 && r == a.Goal:
				if g.hasGoal {
					return nil, fmt.Errorf("%w: goal %q at %v and %v", ErrDuplicateMarker, r, g.goal, p)
				}
				g.goal, g.hasGoal = p, true
			case extra[r]:
				g.markers[r] = append(g.markers[r], p)
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownSymbol, r, p)
			}
		}
	}

	if cfg.RequireEndpoints {
		if a.Start != 0 && !g.hasStart {
			return nil, ErrMissingStart
		}
		if a.Goal != 0 && !g.hasGoal {
			return nil, ErrMissingGoal
		}
	}
	return g, nil
}

// blockLines returns the first block of non-blank lines in text.
func blockLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			if len(out) > 0 {
				break
			}
			continue
		}
		out = append(out, line)
	}
	return out
}

// Dimensions returns (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsPassable reports whether p is inside the grid and not blocked.
// Complexity: O(1).
func (g *Grid) IsPassable(p Position) bool {
	return g.InBounds(p) && g.cells[g.index(p)] == Passable
}

// Cell returns the classification at p, or ErrOutOfBounds.
func (g *Grid) Cell(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Blocked, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return g.cells[g.index(p)], nil
}

// Start returns the start marker position, if one was parsed.
func (g *Grid) Start() (Position, bool) {
	return g.start, g.hasStart
}

// Goal returns the goal marker position, if one was parsed.
func (g *Grid) Goal() (Position, bool) {
	return g.goal, g.hasGoal
}

// Markers returns the positions of extra marker r in row-major order.
func (g *Grid) Markers(r rune) []Position {
	return append([]Position(nil), g.markers[r]...)
}

// SetPassable marks p passable or blocked.
// Returns ErrOutOfBounds if p lies outside the grid.
func (g *Grid) SetPassable(p Position, passable bool) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if passable {
		g.cells[g.index(p)] = Passable
	} else {
		g.cells[g.index(p)] = Blocked
	}
	return nil
}

// Open makes p passable and returns a func that puts the previous cell back.
// Callers defer the restore immediately so the grid is repaired on every exit
// path; calling it more than once is harmless.
//
//	restore, err := g.Open(p)
//	if err != nil { ... }
//	defer restore()
func (g *Grid) Open(p Position) (restore func(), err error) {
	if !g.InBounds(p) {
		return func() {}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	i := g.index(p)
	prev := g.cells[i]
	g.cells[i] = Passable
	done := false
	return func() {
		if done {
			return
		}
		done = true
		g.cells[i] = prev
	}, nil
}

// Clone returns a deep copy of g, points of interest included.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	c := &Grid{
		rows:     g.rows,
		cols:     g.cols,
		cells:    append([]Cell(nil), g.cells...),
		start:    g.start,
		goal:     g.goal,
		hasStart: g.hasStart,
		hasGoal:  g.hasGoal,
		markers:  make(map[rune][]Position, len(g.markers)),
	}
	for r, ps := range g.markers {
		c.markers[r] = append([]Position(nil), ps...)
	}
	return c
}

// Equal reports whether g and other have identical dimensions and cells.
// Points of interest are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with '#' and '.', plus 'S' and 'E' where a start
// or goal was recorded.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := Position{Row: row, Col: col}
			switch {
			case g.hasStart && p == g.start:
				sb.WriteByte('S')
			case g.hasGoal && p == g.goal:
				sb.WriteByte('E')
			default:
				sb.WriteString(g.cells[g.index(p)].String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps p to a row-major index: row*cols + col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}
