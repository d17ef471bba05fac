/*
Package game implements the interactive side of the maze engine.

Two variants share one event model:

  - Session, the editor: mouse clicks toggle walls and place the start and
    exit, keys generate a maze, pick an algorithm, solve and reset.
  - Race, the player variant: arrow keys move a player through a generated
    maze until it stands on the exit.

Both are driven one event at a time and expose a read-only Snapshot to
renderers. Neither is safe for concurrent use; Loop serializes access when
events arrive from several goroutines.
*/
package game

import (
	"errors"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Game-related errors.
var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrUnboundKey   = errors.New("key not bound in this mode")
	ErrRaceFinished = errors.New("race already finished")
	ErrLoopStopped  = errors.New("event loop stopped")
)

// Mode tells renderers which variant produced a snapshot.
type Mode uint8

const (
	ModeEditor Mode = iota // ModeEditor is the wall/start/exit editor.
	ModeRace               // ModeRace is the player-movement variant.
)

// String returns the API name of the mode.
func (m Mode) String() string {
	if m == ModeRace {
		return "race"
	}
	return "editor"
}

// Handler consumes events and exposes snapshots. Done reports a terminal
// state; only a finished race has one.
type Handler interface {
	Handle(ev Event) error
	Snapshot() Snapshot
	Done() bool
}

var (
	_ Handler = (*Session)(nil)
	_ Handler = (*Race)(nil)
)

// defaultGenerator returns a half-resolution generator seeded from the clock.
func defaultGenerator() *maze.Generator {
	gen, _ := maze.NewGenerator(maze.HalfResolution, nil)
	return gen
}
