package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run records one solve triggered in an editor session.
type Run struct {
	ID        uuid.UUID     `bson:"_id" json:"id"`
	SessionID uuid.UUID     `bson:"sessionId" json:"sessionId"`
	Algorithm string        `bson:"algorithm" json:"algorithm"`
	Found     bool          `bson:"found" json:"found"`
	Length    int           `bson:"length" json:"length"`     // Cells on the path, endpoints included.
	Expanded  int           `bson:"expanded" json:"expanded"` // Cells taken off the frontier.
	Rows      int           `bson:"rows" json:"rows"`
	Cols      int           `bson:"cols" json:"cols"`
	Duration  time.Duration `bson:"duration" json:"duration"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
