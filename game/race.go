package game

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// RaceConfig holds the parameters of a new race.
type RaceConfig struct {
	Rows      int
	Cols      int
	Generator *maze.Generator // Generator carves the race maze. Defaults to half resolution.
}

// Race is the player-movement variant: a generated maze, a start at the
// top-left corner, an exit at the farthest reachable cell and a player that
// moves one cell per arrow key.
type Race struct {
	grid     *maze.Grid
	start    maze.Position
	exit     maze.Position
	player   maze.Position
	moves    int
	finished bool
}

var moveDeltas = map[Key]maze.Position{
	KeyUp:    {Row: -1, Col: 0},
	KeyDown:  {Row: 1, Col: 0},
	KeyLeft:  {Row: 0, Col: -1},
	KeyRight: {Row: 0, Col: 1},
}

// NewRace generates the race maze from (0, 0).
func NewRace(c RaceConfig) (*Race, error) {
	grid, err := maze.New(c.Rows, c.Cols, maze.Wall)
	if err != nil {
		return nil, err
	}

	gen := c.Generator
	if gen == nil {
		gen = defaultGenerator()
	}

	start := maze.Position{Row: 0, Col: 0}
	if err := gen.Generate(grid, start); err != nil {
		return nil, err
	}

	exit := maze.Farthest(grid, start)
	if exit == start {
		return nil, fmt.Errorf("%w: %dx%d leaves no room for an exit", maze.ErrInvalidDimensions, c.Rows, c.Cols)
	}
	_ = grid.SetTag(start, maze.Start)
	_ = grid.SetTag(exit, maze.Exit)

	return &Race{
		grid:   grid,
		start:  start,
		exit:   exit,
		player: start,
	}, nil
}

// Handle applies a movement key. Anything after the finish returns
// ErrRaceFinished.
func (r *Race) Handle(ev Event) error {
	if r.finished {
		return ErrRaceFinished
	}
	switch ev.Kind {
	case EventKey:
		_, err := r.Move(ev.Key)
		return err
	case EventClick:
		return ErrUnboundKey
	}
	return ErrUnknownEvent
}

// Move steps the player in the direction of k. Moves into walls or off the
// grid are rejected with moved == false and no error.
func (r *Race) Move(k Key) (moved bool, err error) {
	if r.finished {
		return false, ErrRaceFinished
	}
	d, ok := moveDeltas[k]
	if !ok {
		return false, ErrUnboundKey
	}

	next := r.player.Add(d)
	if !r.grid.Passable(next) {
		return false, nil
	}

	r.player = next
	r.moves++
	if r.player == r.exit {
		r.finished = true
	}
	return true, nil
}

// Player returns the player coordinate.
func (r *Race) Player() maze.Position { return r.player }

// Exit returns the exit coordinate.
func (r *Race) Exit() maze.Position { return r.exit }

// Moves returns the number of accepted moves.
func (r *Race) Moves() int { return r.moves }

// Finished reports whether the player reached the exit.
func (r *Race) Finished() bool { return r.finished }

// Done implements Handler.
func (r *Race) Done() bool { return r.finished }

// Grid exposes the race grid for read access.
func (r *Race) Grid() *maze.Grid { return r.grid }

// Snapshot returns a deep copy of the race state.
func (r *Race) Snapshot() Snapshot {
	rows, cols := r.grid.Dimensions()
	return Snapshot{
		Mode:         ModeRace,
		Rows:         rows,
		Cols:         cols,
		Cells:        r.grid.Rows(),
		Start:        r.start,
		End:          r.exit,
		Player:       r.player,
		Moves:        r.moves,
		Finished:     r.finished,
		Instructions: RaceInstructions,
	}
}
