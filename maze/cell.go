package maze

import (
	"fmt"
	"strings"
)

// Tag is the kind of a single grid cell.
type Tag uint8

const (
	Empty Tag = iota // Empty is a passable, unmarked cell.
	Wall             // Wall blocks movement.
	Start            // Start marks the search origin.
	Exit             // Exit marks the search target.
)

// String returns the lower-case name of the tag.
func (t Tag) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Exit:
		return "exit"
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// Algorithm identifies one of the path finding strategies. Each algorithm owns
// its own overlay layer on the grid.
type Algorithm uint8

const (
	AStar Algorithm = iota // AStar is heuristic shortest-path search.
	BFS                    // BFS is unweighted shortest-path search.
	DFS                    // DFS is exhaustive depth-first search.
)

// Algorithms lists every known algorithm in overlay precedence order.
var Algorithms = []Algorithm{AStar, BFS, DFS}

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a name or a selection digit to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "1":
		return AStar, nil
	case "bfs", "2":
		return BFS, nil
	case "dfs", "3":
		return DFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// PathSet is a set of overlay flags, one bit per Algorithm.
type PathSet uint8

// Has reports whether the overlay of a is set.
func (p PathSet) Has(a Algorithm) bool {
	return p&(1<<a) != 0
}

// With returns the set with the overlay of a added.
func (p PathSet) With(a Algorithm) PathSet {
	return p | 1<<a
}

// Without returns the set with the overlay of a removed.
func (p PathSet) Without(a Algorithm) PathSet {
	return p &^ (1 << a)
}

// Cell represents a single cell in the maze grid. Its tag and its path
// overlays are independent: a Start cell can also lie on a computed path.
type Cell struct {
	Tag   Tag     // Tag is the kind of the cell.
	Paths PathSet // Paths holds one overlay flag per algorithm.
}

// Passable reports whether movement into the cell is allowed.
func (c Cell) Passable() bool {
	return c.Tag != Wall
}

// OnPath reports whether the cell lies on the most recent path of a.
func (c Cell) OnPath(a Algorithm) bool {
	return c.Paths.Has(a)
}

// Position is a zero-based (row, column) coordinate in a grid.
type Position struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// NoPosition marks an unset coordinate.
var NoPosition = Position{Row: -1, Col: -1}

// IsSet reports whether p is not NoPosition.
func (p Position) IsSet() bool {
	return p != NoPosition
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Manhattan returns |dRow| + |dCol| between p and o.
func (p Position) Manhattan(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
