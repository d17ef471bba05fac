package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"GRID_ROWS", "GRID_COLS", "CELL_SIZE", "RACE_WIDTH", "RACE_HEIGHT",
		"INITIAL_FILL", "CONSOLE_FILL", "LATTICE", "MAZE_SEED", "SESSION_IDLE_TIMEOUT", "LEADERBOARD_TTL",
	} {
		// Setenv registers the restore; Unsetenv then clears the key for this test.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	c := Load()
	assert.Equal(t, 15, c.GridRows)
	assert.Equal(t, 15, c.GridCols)
	assert.Equal(t, 40, c.CellSize)
	assert.Equal(t, 21, c.RaceWidth)
	assert.Equal(t, 11, c.RaceHeight)
	assert.Equal(t, "empty", c.InitialFill)
	assert.Equal(t, "wall", c.ConsoleFill)
	assert.Equal(t, "half", c.Lattice)
	assert.Zero(t, c.MazeSeed)
	assert.Equal(t, 30*time.Minute, c.SessionIdleTimeout)
	assert.Equal(t, 168*time.Hour, c.LeaderboardTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GRID_ROWS", "9")
	t.Setenv("INITIAL_FILL", "wall")
	t.Setenv("LATTICE", "single")
	t.Setenv("MAZE_SEED", "77")
	t.Setenv("SESSION_TOKEN_TTL", "15m")

	c := Load()
	assert.Equal(t, 9, c.GridRows)
	assert.Equal(t, "wall", c.InitialFill)
	assert.Equal(t, "single", c.Lattice)
	assert.Equal(t, int64(77), c.MazeSeed)
	assert.Equal(t, 15*time.Minute, c.SessionTokenTTL)
}
