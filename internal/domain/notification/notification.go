package notification

import (
	"time"

	"github.com/google/uuid"
)

// Info is the title/body pair produced by the engine; persistence
// fans it out into one Notification row per addressee.
type Info struct {
	Title   string
	Message string
}

type Notification struct {
	ID            uuid.UUID
	ParticipantID uuid.UUID
	Title         string
	Message       string
	CreatedAt     time.Time
	Viewed        bool
	Sent          bool
}
