package bytefall

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/gridmap"
)

// ParseCoordinates reads one "x,y" pair per line into Positions (Row=y, Col=x).
// Blank lines are skipped and surrounding spaces ignored.
func ParseCoordinates(text string) ([]gridmap.Position, error) {
	var out []gridmap.Position
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		xs, ys, ok := strings.Cut(raw, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, raw)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, raw)
		}
		out = append(out, gridmap.At(y, x))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("bytefall: reading coordinates: %w", err)
	}
	return out, nil
}

// New validates that every byte lands inside the (size+1)² space.
func New(size int, bytes []gridmap.Position, opts ...Option) (*Memory, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	for i, p := range bytes {
		if p.Row < 0 || p.Col < 0 || p.Row > size || p.Col > size {
			return nil, fmt.Errorf("%w: byte %d at %d,%d", ErrByteOutOfRange, i, p.Col, p.Row)
		}
	}
	m := &Memory{
		Size:  size,
		Bytes: append([]gridmap.Position(nil), bytes...),
		log:   silentLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Grid builds the space with the first fallen bytes blocked.
func (m *Memory) Grid(fallen int) (*gridmap.Grid, error) {
	if fallen < 0 || fallen > len(m.Bytes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFallenRange, fallen, len(m.Bytes))
	}
	g, err := gridmap.New(m.Size+1, m.Size+1)
	if err != nil {
		return nil, err
	}
	for _, p := range m.Bytes[:fallen] {
		if err := g.SetPassable(p, false); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ShortestExit searches corner to corner after fallen bytes.
// A byte sitting on the start or the exit makes the exit unreachable.
func (m *Memory) ShortestExit(fallen int, opts ...astar.Option) (astar.Result, error) {
	g, err := m.Grid(fallen)
	if err != nil {
		return astar.Result{}, err
	}
	if !g.IsPassable(m.Start()) || !g.IsPassable(m.Exit()) {
		return astar.Result{}, nil
	}
	model := cost.Uniform{}
	res, err := astar.Search(g, model, model.Start(m.Start()), m.Exit(), opts...)
	if err != nil {
		return astar.Result{}, err
	}
	m.log.WithFields(logrus.Fields{
		"fallen":   fallen,
		"found":    res.Found,
		"cost":     res.Cost,
		"expanded": res.Expanded,
	}).Debug("exit search")
	return res, nil
}

// FirstBlocking finds the earliest byte whose fall cuts every exit route.
// found is false if the exit stays reachable after all bytes have fallen.
//
// Reachability only ever shrinks as bytes fall, so the fallen count is
// binary searched: O(log B) corner-to-corner searches for B bytes.
func (m *Memory) FirstBlocking() (index int, pos gridmap.Position, found bool, err error) {
	var searchErr error
	blocked := func(fallen int) bool {
		if searchErr != nil {
			return true
		}
		res, err := m.ShortestExit(fallen)
		if err != nil {
			searchErr = err
			return true
		}
		return !res.Found
	}

	// smallest n in [0, len] with the exit blocked; len+1 if none
	n := sort.Search(len(m.Bytes)+1, blocked)
	if searchErr != nil {
		return 0, gridmap.Position{}, false, searchErr
	}
	if n == 0 || n > len(m.Bytes) {
		return 0, gridmap.Position{}, false, nil
	}

	index = n - 1
	m.log.WithFields(logrus.Fields{
		"index": index,
		"byte":  fmt.Sprintf("%d,%d", m.Bytes[index].Col, m.Bytes[index].Row),
	}).Info("exit cut off")
	return index, m.Bytes[index], true, nil
}
