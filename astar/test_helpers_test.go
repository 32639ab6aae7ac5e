package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridmap"
)

// reindeerSmall is the smaller published reindeer maze; best score 7036
// (36 steps, 7 turns).
const reindeerSmall = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

// reindeerLarge is the larger published reindeer maze; best score 11048.
const reindeerLarge = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

// fallenBytes are the first twelve corrupted coordinates ("x,y") of the
// published 7×7 memory example.
var fallenBytes = [][2]int{
	{5, 4}, {4, 2}, {4, 5}, {3, 0}, {2, 1}, {6, 3},
	{2, 4}, {1, 5}, {0, 6}, {3, 3}, {2, 6}, {5, 1},
}

// mustParse parses text with the default alphabet or fails the test.
func mustParse(t testing.TB, text string) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.Parse(text)
	require.NoError(t, err)
	return g
}

// endpoints returns the parsed start and goal of g.
func endpoints(t testing.TB, g *gridmap.Grid) (gridmap.Position, gridmap.Position) {
	t.Helper()
	s, ok := g.Start()
	require.True(t, ok)
	e, ok := g.Goal()
	require.True(t, ok)
	return s, e
}

// memoryGrid builds the 7×7 memory space with the first n fallen bytes blocked.
func memoryGrid(t testing.TB, n int) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.New(7, 7)
	require.NoError(t, err)
	for _, xy := range fallenBytes[:n] {
		require.NoError(t, g.SetPassable(gridmap.At(xy[1], xy[0]), false))
	}
	return g
}

// randomGrid returns a rows×cols grid where each cell is blocked with
// probability density; (0,0) and (rows-1,cols-1) stay open.
func randomGrid(t testing.TB, r *rand.Rand, rows, cols int, density float64) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.New(rows, cols)
	require.NoError(t, err)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if r.Float64() < density {
				require.NoError(t, g.SetPassable(gridmap.At(row, col), false))
			}
		}
	}
	require.NoError(t, g.SetPassable(gridmap.At(0, 0), true))
	require.NoError(t, g.SetPassable(gridmap.At(rows-1, cols-1), true))
	return g
}
