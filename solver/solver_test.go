package solver

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var finders = []Finder{AStarFinder{}, BFSFinder{}, DFSFinder{}}

// assertValidPath checks that path walks passable, axis-adjacent cells from
// start to end without revisiting any cell.
func assertValidPath(t *testing.T, g *maze.Grid, path []maze.Position, start, end maze.Position) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])

	seen := map[maze.Position]bool{}
	for i, p := range path {
		assert.True(t, g.Passable(p), "cell %s not passable", p)
		assert.False(t, seen[p], "cell %s revisited", p)
		seen[p] = true
		if i > 0 {
			assert.Equal(t, 1, p.Manhattan(path[i-1]), "step %s -> %s", path[i-1], p)
		}
	}
}

func TestOpenGridExample(t *testing.T) {
	g, err := maze.New(5, 5, maze.Empty)
	require.NoError(t, err)
	start, end := maze.Position{Row: 0, Col: 0}, maze.Position{Row: 4, Col: 4}

	for _, f := range []Finder{AStarFinder{}, BFSFinder{}} {
		res, err := f.FindPath(g, start, end)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, 9, res.Length(), f.Algorithm().String())
		assert.Equal(t, 8, res.Moves())
		assertValidPath(t, g, res.Path, start, end)
	}

	t.Run("dfs follows +col, +row, -col, -row", func(t *testing.T) {
		res, err := DFSFinder{}.FindPath(g, start, end)
		require.NoError(t, err)
		want := []maze.Position{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4},
			{Row: 1, Col: 4}, {Row: 2, Col: 4}, {Row: 3, Col: 4}, {Row: 4, Col: 4},
		}
		assert.Equal(t, want, res.Path)
	})
}

func TestDFSBacktracksOutOfDeadEnds(t *testing.T) {
	g, err := maze.Parse([]string{
		"S...#",
		"###.#",
		"E....",
	})
	require.NoError(t, err)
	start, end := maze.Position{Row: 0, Col: 0}, maze.Position{Row: 2, Col: 0}

	res, err := DFSFinder{}.FindPath(g, start, end)
	require.NoError(t, err)
	require.True(t, res.Found)
	assertValidPath(t, g, res.Path, start, end)
	assert.Equal(t, 9, res.Length())
}

func TestDFSNotShortest(t *testing.T) {
	// Going right first leads DFS around the long loop.
	g, err := maze.Parse([]string{
		"....",
		".##.",
		"....",
	})
	require.NoError(t, err)
	start, end := maze.Position{Row: 0, Col: 0}, maze.Position{Row: 2, Col: 0}

	dfs, err := DFSFinder{}.FindPath(g, start, end)
	require.NoError(t, err)
	bfs, err := BFSFinder{}.FindPath(g, start, end)
	require.NoError(t, err)

	assert.Equal(t, 3, bfs.Length())
	assert.Equal(t, 9, dfs.Length())
}

func TestOptimalityOnGeneratedMazes(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, lattice := range []maze.Lattice{maze.HalfResolution, maze.SingleResolution} {
		gen, err := maze.NewGenerator(lattice, rng)
		require.NoError(t, err)

		for i := 0; i < 40; i++ {
			g, err := maze.New(15, 15, maze.Wall)
			require.NoError(t, err)
			origin := gen.RandomPosition(g)
			require.NoError(t, gen.Generate(g, origin))

			// Knock out a few walls so there are multiple routes.
			for k := 0; k < 12; k++ {
				_ = g.SetTag(gen.RandomPosition(g), maze.Empty)
			}

			end := maze.Farthest(g, origin)
			if end == origin {
				continue
			}

			astar, err := AStarFinder{}.FindPath(g, origin, end)
			require.NoError(t, err)
			bfs, err := BFSFinder{}.FindPath(g, origin, end)
			require.NoError(t, err)
			dfs, err := DFSFinder{}.FindPath(g, origin, end)
			require.NoError(t, err)

			require.True(t, astar.Found)
			require.True(t, bfs.Found)
			require.True(t, dfs.Found)
			assert.Equal(t, bfs.Length(), astar.Length())
			assert.GreaterOrEqual(t, dfs.Length(), bfs.Length())
			assertValidPath(t, g, astar.Path, origin, end)
			assertValidPath(t, g, bfs.Path, origin, end)
			assertValidPath(t, g, dfs.Path, origin, end)
		}
	}
}

func TestSearchIsRepeatable(t *testing.T) {
	g, err := maze.Parse([]string{
		"......",
		".##...",
		"...#..",
		".#....",
	})
	require.NoError(t, err)
	start, end := maze.Position{Row: 0, Col: 0}, maze.Position{Row: 3, Col: 5}

	for _, f := range finders {
		first, err := f.FindPath(g, start, end)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := f.FindPath(g, start, end)
			require.NoError(t, err)
			assert.Equal(t, first.Length(), again.Length())
			assert.Equal(t, first.Path, again.Path)
		}
	}
}

func TestNoPath(t *testing.T) {
	g, err := maze.Parse([]string{
		"S#.",
		".#.",
		".#E",
	})
	require.NoError(t, err)
	before := g.Clone()

	for _, f := range finders {
		res, err := f.FindPath(g, maze.Position{Row: 0, Col: 0}, maze.Position{Row: 2, Col: 2})
		require.NoError(t, err, f.Algorithm().String())
		assert.False(t, res.Found)
		assert.Nil(t, res.Path)
		assert.Positive(t, res.Expanded)
	}
	assert.True(t, before.Equal(g), "search must not touch the grid")
}

func TestInvalidQuery(t *testing.T) {
	g, err := maze.Parse([]string{
		"..#",
		"...",
	})
	require.NoError(t, err)

	cases := []struct {
		name       string
		start, end maze.Position
	}{
		{"unset start", maze.NoPosition, maze.Position{Row: 1, Col: 2}},
		{"unset exit", maze.Position{Row: 0, Col: 0}, maze.NoPosition},
		{"start equals exit", maze.Position{Row: 1, Col: 1}, maze.Position{Row: 1, Col: 1}},
		{"outside grid", maze.Position{Row: 0, Col: 0}, maze.Position{Row: 5, Col: 5}},
		{"exit is a wall", maze.Position{Row: 0, Col: 0}, maze.Position{Row: 0, Col: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, f := range finders {
				_, err := f.FindPath(g, tc.start, tc.end)
				assert.ErrorIs(t, err, ErrInvalidQuery, f.Algorithm().String())
			}
		})
	}
}

func TestSolveDispatch(t *testing.T) {
	g, err := maze.New(3, 3, maze.Empty)
	require.NoError(t, err)

	for _, a := range maze.Algorithms {
		f, err := New(a)
		require.NoError(t, err)
		assert.Equal(t, a, f.Algorithm())

		res, err := Solve(g, a, maze.Position{Row: 0, Col: 0}, maze.Position{Row: 2, Col: 2})
		require.NoError(t, err)
		assert.True(t, res.Found)
	}

	_, err = Solve(g, maze.Algorithm(7), maze.Position{Row: 0, Col: 0}, maze.Position{Row: 2, Col: 2})
	assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
}
