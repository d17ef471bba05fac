package game

import (
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Static instruction strings shown by renderers.
const (
	EditorInstructions = "Press 'S' to Solve, 'R' to Reset, 'G' to Generate Maze, '1' for A*, '2' for BFS, '3' for DFS"
	RaceInstructions   = "Use the arrow keys to reach the exit"
)

// Paint is what a renderer draws for one cell.
type Paint uint8

const (
	PaintEmpty Paint = iota
	PaintWall
	PaintStart
	PaintExit
	PaintAStar
	PaintBFS
	PaintDFS
	PaintPlayer
)

var paintGlyphs = [...]byte{
	PaintEmpty:  '.',
	PaintWall:   '#',
	PaintStart:  'S',
	PaintExit:   'E',
	PaintAStar:  'A',
	PaintBFS:    'B',
	PaintDFS:    'D',
	PaintPlayer: '@',
}

// Glyph returns the single-character form of the paint.
func (p Paint) Glyph() byte {
	if int(p) < len(paintGlyphs) {
		return paintGlyphs[p]
	}
	return '?'
}

// PaintOf applies the fixed precedence Wall > Start > Exit > A* path > BFS
// path > DFS path > Empty.
func PaintOf(c maze.Cell) Paint {
	switch c.Tag {
	case maze.Wall:
		return PaintWall
	case maze.Start:
		return PaintStart
	case maze.Exit:
		return PaintExit
	}
	switch {
	case c.OnPath(maze.AStar):
		return PaintAStar
	case c.OnPath(maze.BFS):
		return PaintBFS
	case c.OnPath(maze.DFS):
		return PaintDFS
	}
	return PaintEmpty
}

// Snapshot is a read-only copy of a session handed to renderers.
type Snapshot struct {
	Mode         Mode
	Rows         int
	Cols         int
	Cells        [][]maze.Cell
	Algorithm    maze.Algorithm
	Start        maze.Position
	End          maze.Position
	Player       maze.Position // Player is NoPosition outside race mode.
	Moves        int
	Finished     bool
	Instructions string
}

// PaintAt returns the paint of the cell at pos. The player marker is drawn
// above everything else.
func (s Snapshot) PaintAt(pos maze.Position) Paint {
	if pos.Row < 0 || pos.Row >= s.Rows || pos.Col < 0 || pos.Col >= s.Cols {
		return PaintEmpty
	}
	if s.Player.IsSet() && pos == s.Player {
		return PaintPlayer
	}
	return PaintOf(s.Cells[pos.Row][pos.Col])
}

// Lines renders the snapshot as one string of glyphs per row.
func (s Snapshot) Lines() []string {
	lines := make([]string, s.Rows)
	var b strings.Builder
	for r := 0; r < s.Rows; r++ {
		b.Reset()
		for c := 0; c < s.Cols; c++ {
			b.WriteByte(s.PaintAt(maze.Position{Row: r, Col: c}).Glyph())
		}
		lines[r] = b.String()
	}
	return lines
}

// PathLength returns how many cells carry the overlay of a.
func (s Snapshot) PathLength(a maze.Algorithm) int {
	n := 0
	for _, row := range s.Cells {
		for _, c := range row {
			if c.OnPath(a) {
				n++
			}
		}
	}
	return n
}
