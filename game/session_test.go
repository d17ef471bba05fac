package game

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(r, c int) maze.Position { return maze.Position{Row: r, Col: c} }

func newTestSession(t *testing.T, rows, cols int) *Session {
	t.Helper()
	gen, err := maze.NewGenerator(maze.HalfResolution, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	s, err := NewSession(SessionConfig{Rows: rows, Cols: cols, Fill: maze.Empty, Generator: gen})
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, 15, 15)
	snap := s.Snapshot()

	assert.Equal(t, ModeEditor, snap.Mode)
	assert.Equal(t, maze.AStar, s.Algorithm())
	assert.False(t, s.Start().IsSet())
	assert.False(t, s.End().IsSet())
	assert.False(t, s.Done())
	assert.Equal(t, EditorInstructions, snap.Instructions)

	_, err := NewSession(SessionConfig{Rows: 0, Cols: 4})
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
}

func TestClickButtons(t *testing.T) {
	s := newTestSession(t, 5, 5)

	t.Run("primary places a wall", func(t *testing.T) {
		require.NoError(t, s.Handle(Click(pos(1, 1), ButtonPrimary)))
		c, _ := s.Grid().Get(pos(1, 1))
		assert.Equal(t, maze.Wall, c.Tag)
	})

	t.Run("secondary clears it", func(t *testing.T) {
		require.NoError(t, s.Handle(Click(pos(1, 1), ButtonSecondary)))
		c, _ := s.Grid().Get(pos(1, 1))
		assert.Equal(t, maze.Empty, c.Tag)
	})

	t.Run("tertiary places start, then exit, then nothing", func(t *testing.T) {
		require.NoError(t, s.Handle(Click(pos(0, 0), ButtonTertiary)))
		assert.Equal(t, pos(0, 0), s.Start())
		assert.False(t, s.End().IsSet())

		// Clicking the start again does not turn it into the exit.
		require.NoError(t, s.Handle(Click(pos(0, 0), ButtonTertiary)))
		assert.False(t, s.End().IsSet())

		require.NoError(t, s.Handle(Click(pos(4, 4), ButtonTertiary)))
		assert.Equal(t, pos(4, 4), s.End())

		before := s.Snapshot()
		require.NoError(t, s.Handle(Click(pos(2, 2), ButtonTertiary)))
		assert.Equal(t, before, s.Snapshot())

		lines := s.Snapshot().Lines()
		assert.Equal(t, byte('S'), lines[0][0])
		assert.Equal(t, byte('E'), lines[4][4])
	})

	t.Run("unknown button", func(t *testing.T) {
		assert.ErrorIs(t, s.Click(pos(0, 1), ButtonNone), ErrUnknownEvent)
	})
}

func TestClickOutOfBoundsIsRejected(t *testing.T) {
	s := newTestSession(t, 5, 5)
	before := s.Snapshot()

	for _, p := range []maze.Position{pos(-1, 0), pos(0, 5), pos(5, 0), pos(9, 9)} {
		err := s.Handle(Click(p, ButtonPrimary))
		assert.ErrorIs(t, err, maze.ErrOutOfBounds, p.String())
	}
	assert.Equal(t, before, s.Snapshot())
}

func TestSelectingAlgorithmDoesNotSolve(t *testing.T) {
	s := newTestSession(t, 5, 5)
	require.NoError(t, s.Handle(Click(pos(0, 0), ButtonTertiary)))
	require.NoError(t, s.Handle(Click(pos(4, 4), ButtonTertiary)))

	tests := []struct {
		key  Key
		want maze.Algorithm
	}{
		{KeyBFS, maze.BFS},
		{KeyDFS, maze.DFS},
		{KeyAStar, maze.AStar},
	}
	for _, tt := range tests {
		require.NoError(t, s.Handle(Press(tt.key)))
		assert.Equal(t, tt.want, s.Algorithm())
		for _, a := range maze.Algorithms {
			assert.Zero(t, s.Snapshot().PathLength(a))
		}
	}
}

func TestSolveMarksOverlay(t *testing.T) {
	var reports []RunReport
	s, err := NewSession(SessionConfig{
		Rows: 5, Cols: 5, Fill: maze.Empty,
		OnSolve: func(r RunReport) { reports = append(reports, r) },
	})
	require.NoError(t, err)
	require.NoError(t, s.Click(pos(0, 0), ButtonTertiary))
	require.NoError(t, s.Click(pos(4, 4), ButtonTertiary))

	require.NoError(t, s.Handle(Press(KeySolve)))
	snap := s.Snapshot()
	assert.Equal(t, 9, snap.PathLength(maze.AStar))
	assert.Zero(t, snap.PathLength(maze.BFS))
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Result.Found)
	assert.Equal(t, maze.AStar, reports[0].Algorithm)
	assert.Equal(t, 5, reports[0].Rows)

	t.Run("overlays of different algorithms coexist", func(t *testing.T) {
		require.NoError(t, s.Handle(Press(KeyDFS)))
		require.NoError(t, s.Handle(Press(KeySolve)))
		snap := s.Snapshot()
		assert.Equal(t, 9, snap.PathLength(maze.AStar))
		assert.Equal(t, 9, snap.PathLength(maze.DFS))
	})

	t.Run("re-solving replaces the overlay", func(t *testing.T) {
		require.NoError(t, s.Click(pos(0, 2), ButtonPrimary))
		require.NoError(t, s.Click(pos(1, 2), ButtonPrimary))
		require.NoError(t, s.Handle(Press(KeySolve)))

		res, err := solver.Solve(s.Grid(), maze.DFS, pos(0, 0), pos(4, 4))
		require.NoError(t, err)
		assert.Equal(t, res.Length(), s.Snapshot().PathLength(maze.DFS))
	})

	t.Run("walls drawn over a path win", func(t *testing.T) {
		p := maze.NoPosition
		for r, row := range s.Snapshot().Cells {
			for c, cell := range row {
				if cell.Tag == maze.Empty && cell.OnPath(maze.AStar) {
					p = pos(r, c)
				}
			}
		}
		require.True(t, p.IsSet())
		require.Equal(t, PaintAStar, s.Snapshot().PaintAt(p))
		require.NoError(t, s.Click(p, ButtonPrimary))
		assert.Equal(t, PaintWall, s.Snapshot().PaintAt(p))
	})
}

func TestSolveWithoutEndpointsIsIgnored(t *testing.T) {
	s := newTestSession(t, 5, 5)
	before := s.Snapshot()

	require.NoError(t, s.Handle(Press(KeySolve)))
	assert.Equal(t, before, s.Snapshot())

	_, err := s.Solve()
	assert.ErrorIs(t, err, solver.ErrInvalidQuery)

	require.NoError(t, s.Click(pos(0, 0), ButtonTertiary))
	require.NoError(t, s.Handle(Press(KeySolve)))
	assert.Zero(t, s.Snapshot().PathLength(maze.AStar))
}

func TestSolveWithoutPathLeavesGridUnchanged(t *testing.T) {
	var reports []RunReport
	s, err := NewSession(SessionConfig{
		Rows: 5, Cols: 5, Fill: maze.Empty,
		OnSolve: func(r RunReport) { reports = append(reports, r) },
	})
	require.NoError(t, err)
	require.NoError(t, s.Click(pos(2, 0), ButtonTertiary))
	require.NoError(t, s.Click(pos(2, 4), ButtonTertiary))
	for r := 0; r < 5; r++ {
		require.NoError(t, s.Click(pos(r, 2), ButtonPrimary))
	}

	for _, k := range []Key{KeyAStar, KeyBFS, KeyDFS} {
		require.NoError(t, s.Handle(Press(k)))
		before := s.Snapshot()
		require.NoError(t, s.Handle(Press(KeySolve)))
		assert.Equal(t, before, s.Snapshot())
	}
	require.Len(t, reports, 3)
	for _, r := range reports {
		assert.False(t, r.Result.Found)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := newTestSession(t, 6, 6)
	require.NoError(t, s.Click(pos(0, 0), ButtonTertiary))
	require.NoError(t, s.Click(pos(5, 5), ButtonTertiary))
	require.NoError(t, s.Click(pos(3, 3), ButtonPrimary))
	require.NoError(t, s.Press(KeyBFS))
	require.NoError(t, s.Press(KeySolve))

	require.NoError(t, s.Handle(Press(KeyReset)))
	once := s.Snapshot()
	require.NoError(t, s.Handle(Press(KeyReset)))
	assert.Equal(t, once, s.Snapshot())

	assert.False(t, s.Start().IsSet())
	assert.False(t, s.End().IsSet())
	assert.Equal(t, maze.BFS, s.Algorithm())
	for _, line := range once.Lines() {
		assert.Equal(t, "......", line)
	}
}

func TestGenerate(t *testing.T) {
	s := newTestSession(t, 15, 15)
	require.NoError(t, s.Click(pos(0, 0), ButtonTertiary))
	require.NoError(t, s.Click(pos(14, 14), ButtonTertiary))

	require.NoError(t, s.Handle(Press(KeyGenerate)))
	assert.False(t, s.Start().IsSet())
	assert.False(t, s.End().IsSet())

	g := s.Grid()
	assert.Zero(t, g.Count(maze.Start))
	assert.Zero(t, g.Count(maze.Exit))
	assert.Positive(t, g.Count(maze.Wall))
	open, ok := g.Find(maze.Empty)
	require.True(t, ok)
	assert.True(t, g.Connected(open))

	assert.ErrorIs(t, s.Generate(pos(15, 0)), maze.ErrOutOfBounds)
}

func TestEditorRejectsRaceKeys(t *testing.T) {
	s := newTestSession(t, 5, 5)
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyNone} {
		assert.ErrorIs(t, s.Handle(Press(k)), ErrUnboundKey)
	}
	assert.ErrorIs(t, s.Handle(Event{}), ErrUnknownEvent)
}

func TestSetAlgorithm(t *testing.T) {
	s := newTestSession(t, 5, 5)
	require.NoError(t, s.SetAlgorithm(maze.DFS))
	assert.Equal(t, maze.DFS, s.Algorithm())
	assert.Error(t, s.SetAlgorithm(maze.Algorithm(42)))
	assert.Equal(t, maze.DFS, s.Algorithm())
}
