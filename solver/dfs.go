package solver

import "github.com/beka-birhanu/vinom-maze/maze"

// DFSFinder returns the first complete path met by depth-first search in
// maze.Directions order. The path is not necessarily the shortest, but one
// is always found when the exit is reachable.
type DFSFinder struct{}

// Algorithm implements Finder.
func (DFSFinder) Algorithm() maze.Algorithm {
	return maze.DFS
}

// frame is one level of the explicit search stack: a cell and the index of
// the next direction to try from it.
type frame struct {
	pos  maze.Position
	next int
}

// FindPath implements Finder. The stack always holds the current path from
// start, so it is returned as-is once the exit is on top.
func (DFSFinder) FindPath(g *maze.Grid, start, end maze.Position) (Result, error) {
	if err := validate(g, start, end); err != nil {
		return Result{}, err
	}

	visited := newField(g, false)
	visited.set(start, true)
	stack := []frame{{pos: start}}

	expanded := 1
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos == end {
			path := make([]maze.Position, len(stack))
			for i, f := range stack {
				path[i] = f.pos
			}
			return Result{Found: true, Path: path, Expanded: expanded}, nil
		}

		if top.next == len(maze.Directions) {
			stack = stack[:len(stack)-1]
			continue
		}

		n := top.pos.Add(maze.Directions[top.next])
		top.next++
		if g.Passable(n) && !visited.get(n) {
			visited.set(n, true)
			stack = append(stack, frame{pos: n})
			expanded++
		}
	}

	return Result{Expanded: expanded}, nil
}
