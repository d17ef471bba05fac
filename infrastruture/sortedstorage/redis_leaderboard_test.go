package sortedstorage

import (
	"context"
	"os"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBoard connects to REDIS_ADDR and skips the test when it is unset.
func newTestBoard(t *testing.T, maxEntries int64) *RedisLeaderboard {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	board, err := NewRedisLeaderboard(Config{
		Client:     client,
		TTL:        time.Minute,
		Prefix:     "test-" + uuid.NewString(),
		MaxEntries: maxEntries,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Del(context.Background(), board.rankKey(), board.scoresKey()).Err()
	})
	return board
}

func TestNewRedisLeaderboardNeedsClient(t *testing.T) {
	_, err := NewRedisLeaderboard(Config{})
	assert.Error(t, err)
}

func TestRedisLeaderboard(t *testing.T) {
	board := newTestBoard(t, 3)
	ctx := context.Background()

	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	submit := func(id uuid.UUID, moves int) {
		require.NoError(t, board.Submit(ctx, dmn.Score{SessionID: id, Moves: moves, Rows: 11, Cols: 21}))
	}

	t.Run("ranks fewest moves first", func(t *testing.T) {
		submit(a, 40)
		submit(b, 25)
		submit(c, 31)

		top, err := board.Top(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 3)
		assert.Equal(t, []uuid.UUID{b, c, a}, []uuid.UUID{top[0].SessionID, top[1].SessionID, top[2].SessionID})
	})

	t.Run("keeps the best score of a session", func(t *testing.T) {
		submit(a, 50)
		top, err := board.Top(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 40, top[2].Moves)

		submit(a, 20)
		top, err = board.Top(ctx, 1)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, a, top[0].SessionID)
		assert.Equal(t, 20, top[0].Moves)
	})

	t.Run("trims beyond max entries", func(t *testing.T) {
		submit(d, 99)
		assert.Equal(t, int64(3), board.Count(ctx))

		top, err := board.Top(ctx, 10)
		require.NoError(t, err)
		for _, s := range top {
			assert.NotEqual(t, d, s.SessionID)
		}
	})
}
