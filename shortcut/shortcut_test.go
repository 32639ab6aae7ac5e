package shortcut_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/shortcut"
)

// racetrack is the published 15×15 race track; baseline 84.
const racetrack = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
`

// EvaluateSuite runs Evaluate on the race track fixture.
type EvaluateSuite struct {
	suite.Suite
	grid  *gridmap.Grid
	start gridmap.Position
	goal  gridmap.Position
}

func (s *EvaluateSuite) SetupTest() {
	g, err := gridmap.Parse(racetrack)
	require.NoError(s.T(), err)
	s.grid = g
	s.start, _ = g.Start()
	s.goal, _ = g.Goal()
}

func (s *EvaluateSuite) evaluate(opts ...shortcut.Option) *shortcut.Report {
	m := cost.Uniform{}
	rep, err := shortcut.Evaluate(s.grid, m, m.Start(s.start), s.goal, opts...)
	require.NoError(s.T(), err)
	return rep
}

// TestRacetrackTotals checks the baseline, the candidate count and the sum of savings.
func (s *EvaluateSuite) TestRacetrackTotals() {
	rep := s.evaluate()
	require.Equal(s.T(), int64(84), rep.Baseline)
	require.Len(s.T(), rep.Savings, 44)
	require.Equal(s.T(), int64(382), rep.Total())
	require.Equal(s.T(), 44, rep.CountAtLeast(2))
	require.Equal(s.T(), 5, rep.CountAtLeast(20))
	require.Equal(s.T(), 1, rep.CountAtLeast(64))
	require.Equal(s.T(), 0, rep.CountAtLeast(65))
}

// TestRacetrackHistogram checks the published distribution of savings.
func (s *EvaluateSuite) TestRacetrackHistogram() {
	want := []shortcut.Bucket{
		{Saved: 2, Count: 14}, {Saved: 4, Count: 14}, {Saved: 6, Count: 2},
		{Saved: 8, Count: 4}, {Saved: 10, Count: 2}, {Saved: 12, Count: 3},
		{Saved: 20, Count: 1}, {Saved: 36, Count: 1}, {Saved: 38, Count: 1},
		{Saved: 40, Count: 1}, {Saved: 64, Count: 1},
	}
	assert.Equal(s.T(), want, s.evaluate().Histogram())
}

// TestBestWall checks the single 64-step shortcut and its new cost.
func (s *EvaluateSuite) TestBestWall() {
	rep := s.evaluate()
	var best shortcut.Saving
	for _, sv := range rep.Savings {
		if sv.Saved > best.Saved {
			best = sv
		}
	}
	assert.Equal(s.T(), gridmap.At(7, 6), best.Wall)
	assert.Equal(s.T(), int64(20), best.Cost)
	assert.Equal(s.T(), int64(64), best.Saved)
}

// TestGridRestored verifies every toggled wall is closed again.
func (s *EvaluateSuite) TestGridRestored() {
	before := s.grid.Clone()
	s.evaluate()
	require.True(s.T(), before.Equal(s.grid))
	require.Equal(s.T(), racetrack, s.grid.String())
}

// TestWorkersMatchSequential compares the pool against the in-place loop.
func (s *EvaluateSuite) TestWorkersMatchSequential() {
	seq := s.evaluate()
	for _, n := range []int{2, 4, 64} {
		par := s.evaluate(shortcut.WithWorkers(n))
		require.Equal(s.T(), seq, par, "workers=%d", n)
	}
}

// TestPruningKeepsResults compares pruned and exhaustive evaluation.
func (s *EvaluateSuite) TestPruningKeepsResults() {
	assert.Equal(s.T(), s.evaluate(), s.evaluate(shortcut.WithoutPruning()))
}

// TestTurnPenalizedModel runs the evaluator with the other cost model.
func (s *EvaluateSuite) TestTurnPenalizedModel() {
	m := cost.NewTurnPenalized()
	rep, err := shortcut.Evaluate(s.grid, m, m.Start(s.start), s.goal)
	require.NoError(s.T(), err)
	base, found, err := astar.FindMinCost(s.grid, m, m.Start(s.start), s.goal)
	require.NoError(s.T(), err)
	require.True(s.T(), found)
	require.Equal(s.T(), base, rep.Baseline)
	for _, sv := range rep.Savings {
		require.GreaterOrEqual(s.T(), sv.Saved, int64(0))
		require.Equal(s.T(), rep.Baseline, sv.Cost+sv.Saved)
	}
}

// TestLoggerFields verifies one debug entry per searched wall plus a summary.
func (s *EvaluateSuite) TestLoggerFields() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s.evaluate(shortcut.WithLogger(logger), shortcut.WithoutPruning())

	entries := hook.AllEntries()
	require.Len(s.T(), entries, 45)
	last := hook.LastEntry()
	require.Equal(s.T(), logrus.InfoLevel, last.Level)
	require.Equal(s.T(), int64(382), last.Data["total"])
	require.Equal(s.T(), logrus.DebugLevel, entries[0].Level)
	require.Contains(s.T(), entries[0].Data, "wall")
}

func TestEvaluateSuite(t *testing.T) {
	suite.Run(t, new(EvaluateSuite))
}

// TestEvaluateCandidates checks the threshold counter.
func TestEvaluateCandidates(t *testing.T) {
	g, err := gridmap.Parse(racetrack)
	require.NoError(t, err)
	start, _ := g.Start()
	goal, _ := g.Goal()
	m := cost.Uniform{}

	for threshold, want := range map[int64]int{1: 44, 12: 8, 20: 5, 40: 2, 64: 1, 100: 0} {
		n, err := shortcut.EvaluateCandidates(g, m, m.Start(start), goal, threshold)
		require.NoError(t, err)
		assert.Equal(t, want, n, "threshold %d", threshold)
	}
}

// TestRemovableWalls checks the aisle rule on a small grid.
func TestRemovableWalls(t *testing.T) {
	g, err := gridmap.Parse("#####\n#S#E#\n#.#.#\n##.##\n#####\n")
	require.NoError(t, err)

	// (1,2): E and W passable. (2,2): E and W passable. (3,2) is open.
	// (3,1): N passable, S blocked, E passable, W blocked.
	// Border walls never qualify.
	got := shortcut.RemovableWalls(g)
	assert.Equal(t, []gridmap.Position{gridmap.At(1, 2), gridmap.At(2, 2)}, got)
}

// TestEvaluateErrors covers validation and the unreachable baseline.
func TestEvaluateErrors(t *testing.T) {
	m := cost.Uniform{}
	closed, err := gridmap.Parse("#####\n#S#E#\n#####\n")
	require.NoError(t, err)
	start, _ := closed.Start()
	goal, _ := closed.Goal()

	_, err = shortcut.Evaluate(nil, m, m.Start(start), goal)
	assert.ErrorIs(t, err, shortcut.ErrNilGrid)

	_, err = shortcut.Evaluate(closed, m, m.Start(start), goal)
	assert.ErrorIs(t, err, shortcut.ErrNoBaseline)

	_, err = shortcut.Evaluate(closed, m, m.Start(start), goal, shortcut.WithWorkers(0))
	assert.ErrorIs(t, err, shortcut.ErrOptionViolation)

	_, err = shortcut.Evaluate(closed, nil, m.Start(start), goal)
	assert.ErrorIs(t, err, astar.ErrNilModel)

	_, err = shortcut.Evaluate(closed, m, m.Start(start), gridmap.At(9, 9))
	assert.ErrorIs(t, err, astar.ErrGoalOutOfBounds)
}
