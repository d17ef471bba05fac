package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Lattice selects which cells may become carving stops.
type Lattice uint8

const (
	// HalfResolution carves between rooms at even offsets from the origin;
	// opening a passage also opens the single wall cell between two rooms.
	HalfResolution Lattice = iota
	// SingleResolution carves directly adjacent cells, opening a cell only
	// while it touches exactly one passable cell.
	SingleResolution
)

var (
	ErrInvalidLattice = errors.New("invalid lattice")
	ErrInvalidFill    = errors.New("invalid initial fill")
)

// String returns the configuration name of the lattice.
func (l Lattice) String() string {
	switch l {
	case HalfResolution:
		return "half"
	case SingleResolution:
		return "single"
	}
	return fmt.Sprintf("lattice(%d)", uint8(l))
}

// ParseLattice maps "half" or "single" to a Lattice.
func ParseLattice(s string) (Lattice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "half", "":
		return HalfResolution, nil
	case "single":
		return SingleResolution, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLattice, s)
}

// ParseFill maps "empty" or "wall" to the tag a fresh grid is filled with.
func ParseFill(s string) (Tag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "":
		return Empty, nil
	case "wall":
		return Wall, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFill, s)
}

// Generator carves connected mazes using randomized depth-first
// backtracking. One generator always uses the same lattice.
type Generator struct {
	lattice Lattice
	rng     *rand.Rand
}

// NewGenerator creates a generator for the given lattice. A nil rng is
// replaced by one seeded from the clock.
func NewGenerator(l Lattice, rng *rand.Rand) (*Generator, error) {
	if l != HalfResolution && l != SingleResolution {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLattice, l)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{lattice: l, rng: rng}, nil
}

// Lattice returns the generator's carving scheme.
func (gen *Generator) Lattice() Lattice {
	return gen.lattice
}

// RandomPosition returns a uniformly chosen in-bounds coordinate of g.
func (gen *Generator) RandomPosition(g *Grid) Position {
	return Position{Row: gen.rng.Intn(g.rows), Col: gen.rng.Intn(g.cols)}
}

// Generate walls off the whole grid, dropping tags and overlays, then carves
// a maze whose passable cells are all reachable from origin.
func (gen *Generator) Generate(g *Grid, origin Position) error {
	if !g.InBound(origin) {
		return g.outOfBounds(origin)
	}

	g.Fill(Wall)
	switch gen.lattice {
	case SingleResolution:
		gen.carveCells(g, origin)
	default:
		gen.carveRooms(g, origin)
	}
	return nil
}

// carveRooms runs the backtracker over rooms at offset 2. The top of the
// stack stays in place while it still has unvisited rooms around it.
func (gen *Generator) carveRooms(g *Grid, origin Position) {
	visited := make([]bool, len(g.cells))
	visited[g.index(origin)] = true
	g.cells[g.index(origin)].Tag = Empty

	stack := []Position{origin}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var candidates []Position
		for _, d := range Directions {
			next := Position{Row: cur.Row + 2*d.Row, Col: cur.Col + 2*d.Col}
			if g.InBound(next) && !visited[g.index(next)] {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			pop(&stack)
			continue
		}

		next := candidates[gen.rng.Intn(len(candidates))]
		between := Position{Row: (cur.Row + next.Row) / 2, Col: (cur.Col + next.Col) / 2}
		g.cells[g.index(between)].Tag = Empty
		g.cells[g.index(next)].Tag = Empty
		visited[g.index(next)] = true
		stack = append(stack, next)
	}
}

// carveCells runs the backtracker over adjacent cells. A wall is opened only
// if the current cell is its sole passable neighbor, which keeps corridors one
// cell wide and the passable region a tree.
func (gen *Generator) carveCells(g *Grid, origin Position) {
	g.cells[g.index(origin)].Tag = Empty

	stack := []Position{origin}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var candidates []Position
		for _, d := range Directions {
			next := cur.Add(d)
			if g.InBound(next) && !g.Passable(next) && len(g.Neighbors(next)) == 1 {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			pop(&stack)
			continue
		}

		next := candidates[gen.rng.Intn(len(candidates))]
		g.cells[g.index(next)].Tag = Empty
		stack = append(stack, next)
	}
}

// Rooms lists the half-resolution rooms of g anchored at origin, row-major.
func Rooms(g *Grid, origin Position) []Position {
	var rooms []Position
	for r := origin.Row % 2; r < g.rows; r += 2 {
		for c := origin.Col % 2; c < g.cols; c += 2 {
			rooms = append(rooms, Position{Row: r, Col: c})
		}
	}
	return rooms
}

// Farthest returns the passable cell with the greatest step distance from
// origin, preferring the later cell in row-major order on ties. It returns
// origin when nothing else is reachable.
func Farthest(g *Grid, origin Position) Position {
	if !g.Passable(origin) {
		return origin
	}

	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(origin)] = 0

	best := origin
	queue := []Position{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		d, b := dist[g.index(cur)], dist[g.index(best)]
		if d > b || (d == b && g.index(cur) > g.index(best)) {
			best = cur
		}

		for _, n := range g.Neighbors(cur) {
			if dist[g.index(n)] < 0 {
				dist[g.index(n)] = dist[g.index(cur)] + 1
				queue = append(queue, n)
			}
		}
	}
	return best
}
