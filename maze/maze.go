/*
Package maze provides the grid model for rectangular cell mazes.

A Grid is a fixed rows x cols array of tagged cells (Empty, Wall, Start,
Exit), each carrying one path overlay flag per search algorithm. The package
also carves solvable mazes into a grid with randomized depth-first
backtracking, on either a half-resolution room lattice or a single-resolution
one.

Utility functions cover bounds checks, neighbor discovery, flood fill and
ASCII visualization of the grid.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maxMazeDimension = 64
)

var (
	// Directions is the fixed neighbor exploration order: +column, +row,
	// -column, -row.
	Directions = []Position{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 0, Col: -1},
		{Row: -1, Col: 0},
	}

	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
)

// Grid is a rectangular array of cells addressed by (row, column).
// It is not safe for concurrent use.
type Grid struct {
	rows    int
	cols    int
	initial Tag    // Tag every cell holds after Reset.
	cells   []Cell // Row-major cell storage.
}

// New creates a rows x cols grid with every cell tagged fill.
func New(rows, cols int, fill Tag) (*Grid, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > maxMazeDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if fill != Empty && fill != Wall {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFill, fill)
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		initial: fill,
		cells:   make([]Cell, rows*cols),
	}
	g.Reset()
	return g, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (int, int) {
	return g.rows, g.cols
}

// Initial returns the tag the grid is cleared to on Reset.
func (g *Grid) Initial() Tag {
	return g.initial
}

// InBound reports whether pos addresses a cell of the grid.
func (g *Grid) InBound(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

func (g *Grid) index(pos Position) int {
	return pos.Row*g.cols + pos.Col
}

func (g *Grid) outOfBounds(pos Position) error {
	return fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, pos, g.rows, g.cols)
}

// Get returns the cell at pos.
func (g *Grid) Get(pos Position) (Cell, error) {
	if !g.InBound(pos) {
		return Cell{}, g.outOfBounds(pos)
	}
	return g.cells[g.index(pos)], nil
}

// Set replaces the cell at pos.
func (g *Grid) Set(pos Position, c Cell) error {
	if !g.InBound(pos) {
		return g.outOfBounds(pos)
	}
	g.cells[g.index(pos)] = c
	return nil
}

// SetTag changes the tag at pos and keeps its path overlays.
func (g *Grid) SetTag(pos Position, t Tag) error {
	if !g.InBound(pos) {
		return g.outOfBounds(pos)
	}
	g.cells[g.index(pos)].Tag = t
	return nil
}

// Passable reports whether pos is in bounds and not a Wall.
func (g *Grid) Passable(pos Position) bool {
	return g.InBound(pos) && g.cells[g.index(pos)].Passable()
}

// Neighbors returns the passable axis-adjacent cells of pos in Directions
// order.
func (g *Grid) Neighbors(pos Position) []Position {
	result := make([]Position, 0, len(Directions))
	for _, d := range Directions {
		n := pos.Add(d)
		if g.Passable(n) {
			result = append(result, n)
		}
	}
	return result
}

// MarkPath sets the overlay of a on every cell of path. The grid is left
// untouched if any coordinate is out of bounds.
func (g *Grid) MarkPath(a Algorithm, path []Position) error {
	for _, pos := range path {
		if !g.InBound(pos) {
			return g.outOfBounds(pos)
		}
	}
	for _, pos := range path {
		i := g.index(pos)
		g.cells[i].Paths = g.cells[i].Paths.With(a)
	}
	return nil
}

// ClearPath removes the overlay of a from every cell.
func (g *Grid) ClearPath(a Algorithm) {
	for i := range g.cells {
		g.cells[i].Paths = g.cells[i].Paths.Without(a)
	}
}

// ClearPaths removes every overlay from every cell.
func (g *Grid) ClearPaths() {
	for i := range g.cells {
		g.cells[i].Paths = 0
	}
}

// Fill tags every cell with t and clears all overlays.
func (g *Grid) Fill(t Tag) {
	for i := range g.cells {
		g.cells[i] = Cell{Tag: t}
	}
}

// Reset restores the grid to its initial blank state.
func (g *Grid) Reset() {
	g.Fill(g.initial)
}

// Find returns the first cell tagged t in row-major order.
func (g *Grid) Find(t Tag) (Position, bool) {
	for i, c := range g.cells {
		if c.Tag == t {
			return Position{Row: i / g.cols, Col: i % g.cols}, true
		}
	}
	return NoPosition, false
}

// Count returns how many cells are tagged t.
func (g *Grid) Count(t Tag) int {
	n := 0
	for _, c := range g.cells {
		if c.Tag == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns a copy of the cells as a slice of rows.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// ReachableFrom flood fills passable cells from origin and returns the
// visited set indexed [row][col]. A non-passable origin reaches nothing.
func (g *Grid) ReachableFrom(origin Position) [][]bool {
	seen := make([][]bool, g.rows)
	for r := range seen {
		seen[r] = make([]bool, g.cols)
	}
	if !g.Passable(origin) {
		return seen
	}

	stack := []Position{origin}
	seen[origin.Row][origin.Col] = true
	for len(stack) > 0 {
		cur := pop(&stack)
		for _, n := range g.Neighbors(cur) {
			if !seen[n.Row][n.Col] {
				seen[n.Row][n.Col] = true
				stack = append(stack, n)
			}
		}
	}
	return seen
}

// Connected reports whether every passable cell is reachable from origin.
func (g *Grid) Connected(origin Position) bool {
	seen := g.ReachableFrom(origin)
	for i, c := range g.cells {
		if c.Passable() && !seen[i/g.cols][i%g.cols] {
			return false
		}
	}
	return true
}

// String provides a textual representation of the grid: '#' walls, 'S'
// start, 'E' exit, '*' cells on any path and '.' empty cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r*g.cols+c]
			switch {
			case cell.Tag == Wall:
				b.WriteByte('#')
			case cell.Tag == Start:
				b.WriteByte('S')
			case cell.Tag == Exit:
				b.WriteByte('E')
			case cell.Paths != 0:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// pop removes and returns the last element of a stack of positions.
func pop(s *[]Position) Position {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
