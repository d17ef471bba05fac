// Package terminal runs maze sessions in a terminal using tcell. A grid cell
// is drawn two columns wide so that it looks roughly square.
package terminal

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gdamore/tcell/v2"
)

// CellWidth is the number of terminal columns per grid cell.
const CellWidth = 2

var paintStyles = map[game.Paint]tcell.Style{
	game.PaintEmpty:  tcell.StyleDefault.Background(tcell.ColorWhite),
	game.PaintWall:   tcell.StyleDefault.Background(tcell.ColorBlack),
	game.PaintStart:  tcell.StyleDefault.Background(tcell.ColorGreen),
	game.PaintExit:   tcell.StyleDefault.Background(tcell.ColorRed),
	game.PaintAStar:  tcell.StyleDefault.Background(tcell.ColorBlue),
	game.PaintBFS:    tcell.StyleDefault.Background(tcell.ColorYellow),
	game.PaintDFS:    tcell.StyleDefault.Background(tcell.ColorFuchsia),
	game.PaintPlayer: tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite).Bold(true),
}

// Renderer draws snapshots on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	layout game.Layout
}

// NewRenderer returns a renderer for a rows x cols board.
func NewRenderer(screen tcell.Screen, rows, cols int) *Renderer {
	return &Renderer{
		screen: screen,
		layout: game.Layout{CellWidth: CellWidth, CellHeight: 1, Rows: rows, Cols: cols},
	}
}

// Layout returns the mapping between screen cells and grid cells.
func (r *Renderer) Layout() game.Layout {
	return r.layout
}

// Draw paints the board, the instruction line and status, then shows the
// screen.
func (r *Renderer) Draw(s game.Snapshot, status string) {
	r.screen.Clear()

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			pos := maze.Position{Row: row, Col: col}
			paint := s.PaintAt(pos)
			glyph := ' '
			if paint == game.PaintPlayer {
				glyph = '@'
			}

			x, y := r.layout.Origin(pos)
			for dx := 0; dx < CellWidth; dx++ {
				r.screen.SetContent(x+dx, y, glyph, nil, paintStyles[paint])
				glyph = ' '
			}
		}
	}

	_, height := r.layout.Size()
	r.text(0, height+1, s.Instructions, tcell.StyleDefault)
	r.text(0, height+2, r.summary(s), tcell.StyleDefault.Dim(true))
	if status != "" {
		r.text(0, height+3, status, tcell.StyleDefault.Bold(true))
	}
	r.screen.Show()
}

func (r *Renderer) summary(s game.Snapshot) string {
	if s.Mode == game.ModeRace {
		return fmt.Sprintf("moves: %d  q: quit", s.Moves)
	}
	return fmt.Sprintf("algorithm: %s  q: quit", s.Algorithm)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
