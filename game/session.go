package game

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/solver"
)

// RunReport describes one solve triggered in a session.
type RunReport struct {
	Algorithm maze.Algorithm
	Result    solver.Result
	Duration  time.Duration
	Rows      int
	Cols      int
}

// SessionConfig holds the parameters of a new editor session.
type SessionConfig struct {
	Rows      int
	Cols      int
	Fill      maze.Tag          // Fill is the blank state the grid starts in and resets to.
	Generator *maze.Generator   // Generator carves mazes on key G. Defaults to half resolution.
	OnSolve   func(r RunReport) // OnSolve, if set, is called after every solve that ran a search.
}

// Session is the editor state machine. It owns its grid, the selected
// algorithm and the start/exit pair.
type Session struct {
	grid      *maze.Grid
	generator *maze.Generator
	algorithm maze.Algorithm
	start     maze.Position
	end       maze.Position
	onSolve   func(RunReport)
}

// NewSession creates an editor session with a blank grid and A* selected.
func NewSession(c SessionConfig) (*Session, error) {
	grid, err := maze.New(c.Rows, c.Cols, c.Fill)
	if err != nil {
		return nil, err
	}

	gen := c.Generator
	if gen == nil {
		gen = defaultGenerator()
	}

	return &Session{
		grid:      grid,
		generator: gen,
		algorithm: maze.AStar,
		start:     maze.NoPosition,
		end:       maze.NoPosition,
		onSolve:   c.OnSolve,
	}, nil
}

// Handle applies one event.
func (s *Session) Handle(ev Event) error {
	switch ev.Kind {
	case EventClick:
		return s.Click(ev.Pos, ev.Button)
	case EventKey:
		return s.Press(ev.Key)
	}
	return ErrUnknownEvent
}

// Click applies a cell click. Out-of-bounds coordinates are rejected with
// maze.ErrOutOfBounds and leave the session untouched.
func (s *Session) Click(pos maze.Position, b Button) error {
	if !s.grid.InBound(pos) {
		_, err := s.grid.Get(pos)
		return err
	}

	switch b {
	case ButtonPrimary:
		return s.grid.SetTag(pos, maze.Wall)
	case ButtonSecondary:
		return s.grid.SetTag(pos, maze.Empty)
	case ButtonTertiary:
		switch {
		case !s.start.IsSet():
			s.start = pos
			return s.grid.SetTag(pos, maze.Start)
		case !s.end.IsSet() && pos != s.start:
			s.end = pos
			return s.grid.SetTag(pos, maze.Exit)
		}
		// Both endpoints set: only a reset frees them.
		return nil
	}
	return ErrUnknownEvent
}

// Press applies a key press. Keys of the race variant return ErrUnboundKey.
func (s *Session) Press(k Key) error {
	switch k {
	case KeyGenerate:
		return s.Generate(s.generator.RandomPosition(s.grid))
	case KeyAStar:
		s.algorithm = maze.AStar
	case KeyBFS:
		s.algorithm = maze.BFS
	case KeyDFS:
		s.algorithm = maze.DFS
	case KeySolve:
		if _, err := s.Solve(); err != nil && !errors.Is(err, solver.ErrInvalidQuery) {
			return err
		}
	case KeyReset:
		s.Reset()
	default:
		return ErrUnboundKey
	}
	return nil
}

// Generate carves a new maze from origin. The fresh maze drops the start,
// the exit and every overlay.
func (s *Session) Generate(origin maze.Position) error {
	if err := s.generator.Generate(s.grid, origin); err != nil {
		return err
	}
	s.start = maze.NoPosition
	s.end = maze.NoPosition
	return nil
}

// Solve runs the selected algorithm between start and exit. A found path
// replaces the algorithm's overlay; a miss leaves the grid unchanged.
// solver.ErrInvalidQuery is returned when the endpoints do not allow a
// search.
func (s *Session) Solve() (RunReport, error) {
	began := time.Now()
	res, err := solver.Solve(s.grid, s.algorithm, s.start, s.end)
	if err != nil {
		return RunReport{}, err
	}

	if res.Found {
		s.grid.ClearPath(s.algorithm)
		if err := s.grid.MarkPath(s.algorithm, res.Path); err != nil {
			return RunReport{}, err
		}
	}

	rows, cols := s.grid.Dimensions()
	report := RunReport{
		Algorithm: s.algorithm,
		Result:    res,
		Duration:  time.Since(began),
		Rows:      rows,
		Cols:      cols,
	}
	if s.onSolve != nil {
		s.onSolve(report)
	}
	return report, nil
}

// Reset clears every tag and overlay and unsets start and exit. The selected
// algorithm is kept.
func (s *Session) Reset() {
	s.grid.Reset()
	s.start = maze.NoPosition
	s.end = maze.NoPosition
}

// SetAlgorithm selects the algorithm used by the next solve.
func (s *Session) SetAlgorithm(a maze.Algorithm) error {
	if _, err := solver.New(a); err != nil {
		return err
	}
	s.algorithm = a
	return nil
}

// Algorithm returns the selected algorithm.
func (s *Session) Algorithm() maze.Algorithm { return s.algorithm }

// Start returns the start coordinate or maze.NoPosition.
func (s *Session) Start() maze.Position { return s.start }

// End returns the exit coordinate or maze.NoPosition.
func (s *Session) End() maze.Position { return s.end }

// Grid exposes the session grid for read access.
func (s *Session) Grid() *maze.Grid { return s.grid }

// Done implements Handler; an editor session never ends on its own.
func (s *Session) Done() bool { return false }

// Snapshot returns a deep copy of the session state.
func (s *Session) Snapshot() Snapshot {
	rows, cols := s.grid.Dimensions()
	return Snapshot{
		Mode:         ModeEditor,
		Rows:         rows,
		Cols:         cols,
		Cells:        s.grid.Rows(),
		Algorithm:    s.algorithm,
		Start:        s.start,
		End:          s.end,
		Player:       maze.NoPosition,
		Instructions: EditorInstructions,
	}
}
