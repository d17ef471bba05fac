package domain

import (
	"time"

	"github.com/google/uuid"
)

// Score is a finished race. Fewer moves rank higher.
type Score struct {
	SessionID  uuid.UUID `json:"sessionId"`
	Moves      int       `json:"moves"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	FinishedAt time.Time `json:"finishedAt"`
}
