package game

import "github.com/beka-birhanu/vinom-maze/maze"

// Layout maps screen coordinates (pixels or terminal columns) to grid cells.
type Layout struct {
	CellWidth  int
	CellHeight int
	Rows       int
	Cols       int
}

// SquareLayout returns a layout with square cells of size units.
func SquareLayout(size, rows, cols int) Layout {
	return Layout{CellWidth: size, CellHeight: size, Rows: rows, Cols: cols}
}

// Size returns the width and height of the mapped area.
func (l Layout) Size() (int, int) {
	return l.Cols * l.CellWidth, l.Rows * l.CellHeight
}

// Locate converts (x, y) to the cell under it using row = y / CellHeight and
// column = x / CellWidth. Points outside the mapped area report ok == false
// and must be dropped.
func (l Layout) Locate(x, y int) (pos maze.Position, ok bool) {
	if l.CellWidth <= 0 || l.CellHeight <= 0 || x < 0 || y < 0 {
		return maze.NoPosition, false
	}

	pos = maze.Position{Row: y / l.CellHeight, Col: x / l.CellWidth}
	if pos.Row >= l.Rows || pos.Col >= l.Cols {
		return maze.NoPosition, false
	}
	return pos, true
}

// Origin returns the top-left screen coordinate of the cell at pos.
func (l Layout) Origin(pos maze.Position) (int, int) {
	return pos.Col * l.CellWidth, pos.Row * l.CellHeight
}
