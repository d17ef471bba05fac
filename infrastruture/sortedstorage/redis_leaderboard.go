package sortedstorage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix     = "vinom-maze"
	defaultMaxEntries = 1000
	maxTopPerQuery    = 100
)

// RedisLeaderboard ranks race scores in a Redis sorted set. The set holds
// session IDs scored by move count; a hash next to it holds the full scores.
type RedisLeaderboard struct {
	client     *redis.Client
	locker     *redsync.Redsync
	ttl        time.Duration
	prefix     string
	maxEntries int64
}

var _ i.Leaderboard = (*RedisLeaderboard)(nil)

// Config holds the settings of a RedisLeaderboard.
type Config struct {
	Client     *redis.Client
	TTL        time.Duration // Expiry set on the board when it is first written.
	Prefix     string        // Key prefix. Defaults to "vinom-maze".
	MaxEntries int64         // Worst scores beyond this rank are dropped.
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client and TTL.
func NewRedisLeaderboard(c Config) (*RedisLeaderboard, error) {
	if c.Client == nil {
		return nil, errors.New("leaderboard needs a redis client")
	}

	board := &RedisLeaderboard{
		client:     c.Client,
		ttl:        c.TTL,
		prefix:     c.Prefix,
		maxEntries: c.MaxEntries,
	}
	if board.prefix == "" {
		board.prefix = defaultPrefix
	}
	if board.maxEntries <= 0 {
		board.maxEntries = defaultMaxEntries
	}
	pool := goredis.NewPool(c.Client)
	board.locker = redsync.New(pool)
	return board, nil
}

func (b *RedisLeaderboard) rankKey() string   { return b.prefix + ":leaderboard:race" }
func (b *RedisLeaderboard) scoresKey() string { return b.prefix + ":leaderboard:race:scores" }
func (b *RedisLeaderboard) lockKey() string   { return b.prefix + ":leaderboard:race:lock" }

// Submit records a score, keeping only the best score of a session, and
// trims the board to its maximum size.
func (b *RedisLeaderboard) Submit(ctx context.Context, score dmn.Score) error {
	payload, err := json.Marshal(score)
	if err != nil {
		return err
	}
	member := score.SessionID.String()

	mutex := b.locker.NewMutex(b.lockKey())
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	current, err := b.client.ZScore(ctx, b.rankKey(), member).Result()
	switch {
	case err == nil && current <= float64(score.Moves):
		return nil
	case err != nil && !errors.Is(err, redis.Nil):
		return err
	}

	if _, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, b.rankKey(), redis.Z{Score: float64(score.Moves), Member: member})
		pipe.HSet(ctx, b.scoresKey(), member, payload)
		return nil
	}); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	for _, key := range []string{b.rankKey(), b.scoresKey()} {
		ttl, err := b.client.TTL(ctx, key).Result()
		if err == nil && ttl == -1 && b.ttl > 0 {
			_ = b.client.Expire(ctx, key, b.ttl).Err()
		}
	}

	return b.trim(ctx)
}

// trim drops everything ranked below maxEntries. The caller holds the lock.
func (b *RedisLeaderboard) trim(ctx context.Context) error {
	if b.client.ZCard(ctx, b.rankKey()).Val() <= b.maxEntries {
		return nil
	}

	evicted, err := b.client.ZRange(ctx, b.rankKey(), b.maxEntries, -1).Result()
	if err != nil || len(evicted) == 0 {
		return err
	}
	_, err = b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByRank(ctx, b.rankKey(), b.maxEntries, -1)
		pipe.HDel(ctx, b.scoresKey(), evicted...)
		return nil
	})
	return err
}

// Top returns up to limit scores, fewest moves first.
func (b *RedisLeaderboard) Top(ctx context.Context, limit int64) ([]dmn.Score, error) {
	if limit <= 0 || limit > maxTopPerQuery {
		limit = maxTopPerQuery
	}

	members, err := b.client.ZRange(ctx, b.rankKey(), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	scores := make([]dmn.Score, 0, len(members))
	if len(members) == 0 {
		return scores, nil
	}

	payloads, err := b.client.HMGet(ctx, b.scoresKey(), members...).Result()
	if err != nil {
		return nil, err
	}
	for _, p := range payloads {
		raw, ok := p.(string)
		if !ok {
			continue
		}
		var s dmn.Score
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, nil
}

// Count returns the number of ranked sessions.
func (b *RedisLeaderboard) Count(ctx context.Context) int64 {
	return b.client.ZCard(ctx, b.rankKey()).Val()
}
