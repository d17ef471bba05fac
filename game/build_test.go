package game

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	opts := Options{Rows: 4, Cols: 6, RaceRows: 5, RaceCols: 7, Fill: maze.Wall, Seed: 3}

	t.Run("editor by default", func(t *testing.T) {
		h, err := Build(opts)
		require.NoError(t, err)
		snap := h.Snapshot()
		assert.Equal(t, ModeEditor, snap.Mode)
		assert.Equal(t, 4, snap.Rows)
		assert.Equal(t, 6, snap.Cols)
		assert.Equal(t, PaintWall, snap.PaintAt(pos(0, 0)))
	})

	t.Run("race", func(t *testing.T) {
		o := opts
		o.Mode = "race"
		h, err := Build(o)
		require.NoError(t, err)
		snap := h.Snapshot()
		assert.Equal(t, ModeRace, snap.Mode)
		assert.Equal(t, 5, snap.Rows)
		assert.Equal(t, pos(0, 0), snap.Player)
	})

	t.Run("same seed same maze", func(t *testing.T) {
		o := opts
		o.Mode = "race"
		a, err := Build(o)
		require.NoError(t, err)
		b, err := Build(o)
		require.NoError(t, err)
		assert.Equal(t, a.Snapshot().Lines(), b.Snapshot().Lines())
	})

	t.Run("unknown mode", func(t *testing.T) {
		o := opts
		o.Mode = "tetris"
		_, err := Build(o)
		assert.Error(t, err)
	})

	t.Run("bad lattice", func(t *testing.T) {
		o := opts
		o.Lattice = maze.Lattice(9)
		_, err := Build(o)
		assert.ErrorIs(t, err, maze.ErrInvalidLattice)
	})
}
