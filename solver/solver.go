/*
Package solver finds paths between a start and an exit cell of a maze.Grid.

Three interchangeable strategies share one movement rule (four axis-adjacent,
in-bounds, non-wall neighbors):

  - A*: priority search on steps + Manhattan distance, optimal.
  - BFS: first-in-first-out layering, optimal.
  - DFS: exhaustive depth-first backtracking, first path found, not
    necessarily shortest.

Finders never modify the grid; callers apply Result.Path as an overlay.
*/
package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	// ErrInvalidQuery is returned when start or exit is unset, not passable
	// or equal to each other.
	ErrInvalidQuery = errors.New("invalid query")
)

// Result is the outcome of a single search. A search that exhausts its
// frontier returns Found == false and a nil Path.
type Result struct {
	Found    bool            // Found reports whether the exit was reached.
	Path     []maze.Position // Path runs from start to exit inclusive.
	Expanded int             // Expanded counts nodes taken off the frontier.
}

// Length returns the number of cells on the path.
func (r Result) Length() int {
	return len(r.Path)
}

// Moves returns the number of steps along the path.
func (r Result) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Finder is a path finding strategy.
type Finder interface {
	Algorithm() maze.Algorithm
	FindPath(g *maze.Grid, start, end maze.Position) (Result, error)
}

// New returns the finder for a.
func New(a maze.Algorithm) (Finder, error) {
	switch a {
	case maze.AStar:
		return AStarFinder{}, nil
	case maze.BFS:
		return BFSFinder{}, nil
	case maze.DFS:
		return DFSFinder{}, nil
	}
	return nil, fmt.Errorf("%w: %s", maze.ErrUnknownAlgorithm, a)
}

// Solve runs algorithm a on g.
func Solve(g *maze.Grid, a maze.Algorithm, start, end maze.Position) (Result, error) {
	f, err := New(a)
	if err != nil {
		return Result{}, err
	}
	return f.FindPath(g, start, end)
}

// validate rejects queries that must not reach a search loop.
func validate(g *maze.Grid, start, end maze.Position) error {
	if !start.IsSet() || !end.IsSet() {
		return fmt.Errorf("%w: start and exit must both be set", ErrInvalidQuery)
	}
	if !g.InBound(start) || !g.InBound(end) {
		return fmt.Errorf("%w: %s -> %s outside grid", ErrInvalidQuery, start, end)
	}
	if start == end {
		return fmt.Errorf("%w: start equals exit %s", ErrInvalidQuery, start)
	}
	if !g.Passable(start) || !g.Passable(end) {
		return fmt.Errorf("%w: start or exit is a wall", ErrInvalidQuery)
	}
	return nil
}

// field is a dense per-cell array used for costs, visited flags and parents.
type field[T any] struct {
	cols  int
	cells []T
}

func newField[T any](g *maze.Grid, init T) field[T] {
	rows, cols := g.Dimensions()
	f := field[T]{cols: cols, cells: make([]T, rows*cols)}
	for i := range f.cells {
		f.cells[i] = init
	}
	return f
}

func (f field[T]) get(p maze.Position) T {
	return f.cells[p.Row*f.cols+p.Col]
}

func (f field[T]) set(p maze.Position, v T) {
	f.cells[p.Row*f.cols+p.Col] = v
}

// tracePath walks parent pointers back from end and returns start..end.
func tracePath(parent field[maze.Position], start, end maze.Position) []maze.Position {
	var path []maze.Position
	for cur := end; cur != start; cur = parent.get(cur) {
		path = append(path, cur)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
