package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/google/uuid"
)

// SessionManager owns the live maze sessions.
type SessionManager interface {
	// NewEditor starts an editor session and returns its ID and access token.
	NewEditor() (*dmn.Session, error)

	// NewRace starts a race session and returns its ID and access token.
	NewRace() (*dmn.Session, error)

	// Dispatch applies one event to a session and returns the state after it.
	Dispatch(ctx context.Context, id uuid.UUID, ev game.Event) (game.Snapshot, error)

	// Snapshot returns the current state of a session.
	Snapshot(ctx context.Context, id uuid.UUID) (game.Snapshot, error)

	// Layout maps pixel coordinates of the session's board to cells.
	Layout(id uuid.UUID) (game.Layout, error)

	// Runs returns the solve history of a session, newest first.
	Runs(ctx context.Context, id uuid.UUID, limit int64) ([]dmn.Run, error)

	// Leaderboard returns the best race scores.
	Leaderboard(ctx context.Context, limit int64) ([]dmn.Score, error)

	// Close stops a session and forgets it.
	Close(id uuid.UUID) error
}
