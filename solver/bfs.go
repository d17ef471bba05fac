package solver

import "github.com/beka-birhanu/vinom-maze/maze"

// BFSFinder explores the grid layer by layer from the start.
type BFSFinder struct{}

// Algorithm implements Finder.
func (BFSFinder) Algorithm() maze.Algorithm {
	return maze.BFS
}

// FindPath implements Finder. The first dequeue of the exit yields a
// shortest path.
func (BFSFinder) FindPath(g *maze.Grid, start, end maze.Position) (Result, error) {
	if err := validate(g, start, end); err != nil {
		return Result{}, err
	}

	visited := newField(g, false)
	parent := newField(g, maze.NoPosition)

	queue := []maze.Position{start}
	visited.set(start, true)

	expanded := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		expanded++

		if cur == end {
			return Result{Found: true, Path: tracePath(parent, start, end), Expanded: expanded}, nil
		}

		for _, n := range g.Neighbors(cur) {
			if !visited.get(n) {
				visited.set(n, true)
				parent.set(n, cur)
				queue = append(queue, n)
			}
		}
	}

	return Result{Expanded: expanded}, nil
}
