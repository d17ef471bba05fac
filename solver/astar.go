package solver

import (
	"container/heap"
	"math"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// AStarFinder searches by lowest steps-so-far plus Manhattan distance to
// the exit. Equal priorities pop in insertion order.
type AStarFinder struct{}

// Algorithm implements Finder.
func (AStarFinder) Algorithm() maze.Algorithm {
	return maze.AStar
}

// FindPath implements Finder.
func (AStarFinder) FindPath(g *maze.Grid, start, end maze.Position) (Result, error) {
	if err := validate(g, start, end); err != nil {
		return Result{}, err
	}

	cost := newField(g, math.MaxInt)
	parent := newField(g, maze.NoPosition)

	frontier := &nodeQueue{}
	cost.set(start, 0)
	heap.Push(frontier, node{pos: start, cost: 0, heuristic: start.Manhattan(end)})

	expanded := 0
	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(node)
		// Stale entry superseded by a cheaper relaxation.
		if cur.cost > cost.get(cur.pos) {
			continue
		}
		expanded++

		if cur.pos == end {
			return Result{Found: true, Path: tracePath(parent, start, end), Expanded: expanded}, nil
		}

		for _, n := range g.Neighbors(cur.pos) {
			newCost := cur.cost + 1
			if newCost < cost.get(n) {
				cost.set(n, newCost)
				parent.set(n, cur.pos)
				heap.Push(frontier, node{pos: n, cost: newCost, heuristic: n.Manhattan(end)})
			}
		}
	}

	return Result{Expanded: expanded}, nil
}

// node is a frontier entry.
type node struct {
	pos       maze.Position
	cost      int
	heuristic int
	seq       int
}

// nodeQueue is a min-heap on cost+heuristic, then insertion order.
type nodeQueue struct {
	items []node
	next  int
}

func (q *nodeQueue) Len() int { return len(q.items) }

func (q *nodeQueue) Less(i, j int) bool {
	fi := q.items[i].cost + q.items[i].heuristic
	fj := q.items[j].cost + q.items[j].heuristic
	if fi != fj {
		return fi < fj
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *nodeQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *nodeQueue) Push(x any) {
	n := x.(node)
	n.seq = q.next
	q.next++
	q.items = append(q.items, n)
}

func (q *nodeQueue) Pop() any {
	last := len(q.items) - 1
	n := q.items[last]
	q.items = q.items[:last]
	return n
}
