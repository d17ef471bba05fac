package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// RunRepo defines the persistence of solve runs.
type RunRepo interface {
	// Save stores a run. Runs are append-only.
	Save(ctx context.Context, run *dmn.Run) error

	// BySession returns up to limit runs of a session, newest first.
	BySession(ctx context.Context, sessionID uuid.UUID, limit int64) ([]dmn.Run, error)
}

// Leaderboard ranks finished races by move count.
type Leaderboard interface {
	// Submit records a score. A session keeps only its best score.
	Submit(ctx context.Context, score dmn.Score) error

	// Top returns up to limit scores, fewest moves first.
	Top(ctx context.Context, limit int64) ([]dmn.Score, error)
}
