// Package sessionapi provides the request and response bodies of the session endpoints.
package sessionapi

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// CreateRequest asks for a new session of the given kind.
type CreateRequest struct {
	Kind string `json:"kind" binding:"required,oneof=editor race"`
}

// ClickRequest is a mouse click in board pixels.
type ClickRequest struct {
	X      *int   `json:"x" binding:"required"`
	Y      *int   `json:"y" binding:"required"`
	Button string `json:"button" binding:"required"`
}

// KeyRequest is a key press, named as in game.ParseKey.
type KeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// SnapshotResponse is the rendered state of a session. Cells holds one glyph
// row per grid row.
type SnapshotResponse struct {
	Kind         string         `json:"kind"`
	Rows         int            `json:"rows"`
	Cols         int            `json:"cols"`
	Cells        []string       `json:"cells"`
	Algorithm    string         `json:"algorithm,omitempty"`
	Start        *maze.Position `json:"start,omitempty"`
	End          *maze.Position `json:"end,omitempty"`
	Player       *maze.Position `json:"player,omitempty"`
	Moves        int            `json:"moves"`
	Finished     bool           `json:"finished"`
	Instructions string         `json:"instructions"`
}

// NewSnapshotResponse converts a snapshot to its wire form.
func NewSnapshotResponse(s game.Snapshot) *SnapshotResponse {
	resp := &SnapshotResponse{
		Kind:         s.Mode.String(),
		Rows:         s.Rows,
		Cols:         s.Cols,
		Cells:        s.Lines(),
		Start:        optional(s.Start),
		End:          optional(s.End),
		Player:       optional(s.Player),
		Moves:        s.Moves,
		Finished:     s.Finished,
		Instructions: s.Instructions,
	}
	if s.Mode == game.ModeEditor {
		resp.Algorithm = s.Algorithm.String()
	}
	return resp
}

func optional(p maze.Position) *maze.Position {
	if !p.IsSet() {
		return nil
	}
	return &p
}
