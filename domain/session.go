package domain

import "github.com/google/uuid"

// Session describes a live session handed back to the client that created
// it. Token authorizes every later request against that session.
type Session struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token"`
	Kind  string    `json:"kind"`
	Rows  int       `json:"rows"`
	Cols  int       `json:"cols"`
}
