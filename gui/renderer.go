// Package gui runs maze sessions in a raylib window: one square per cell,
// an instruction line under the board and mouse plus keyboard input.
package gui

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Text settings of the lines drawn under the board.
const (
	FontSize    = 14
	TextPadding = 5
	StatusSpace = 30 // StatusSpace is the window height reserved under the board.
)

var paintColors = map[game.Paint]rl.Color{
	game.PaintEmpty:  rl.White,
	game.PaintWall:   rl.Black,
	game.PaintStart:  rl.Green,
	game.PaintExit:   rl.Red,
	game.PaintAStar:  rl.Blue,
	game.PaintBFS:    rl.Yellow,
	game.PaintDFS:    rl.Magenta,
	game.PaintPlayer: rl.Orange,
}

// Renderer draws snapshots into the current raylib window.
type Renderer struct {
	layout game.Layout
}

// NewRenderer returns a renderer with square cells of cellSize pixels.
func NewRenderer(cellSize, rows, cols int) *Renderer {
	return &Renderer{layout: game.SquareLayout(cellSize, rows, cols)}
}

// Layout returns the pixel to cell mapping.
func (r *Renderer) Layout() game.Layout {
	return r.layout
}

// WindowSize returns the window size needed for the board and text line.
func (r *Renderer) WindowSize() (int32, int32) {
	w, h := r.layout.Size()
	return int32(w), int32(h + StatusSpace)
}

// Draw renders one frame. Cells are drawn one pixel smaller than their slot
// so the background shows through as grid lines.
func (r *Renderer) Draw(s game.Snapshot, status string) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.White)

	size := int32(r.layout.CellWidth - 1)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			pos := maze.Position{Row: row, Col: col}
			x, y := r.layout.Origin(pos)
			rl.DrawRectangle(int32(x), int32(y), size, size, paintColors[s.PaintAt(pos)])
		}
	}

	_, height := r.layout.Size()
	text := s.Instructions
	if status != "" {
		text = status
	}
	rl.DrawText(text, TextPadding, int32(height+TextPadding), FontSize, rl.Black)
}
