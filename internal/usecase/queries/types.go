package queries

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantView represents read-optimized participant data.
type ParticipantView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	TargetStatus string    `json:"target_status"`
	Wishes       string    `json:"wishes"`
	AntiWishes   string    `json:"anti_wishes"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TargetView is what a Santa is allowed to see about their recipient:
// enough to pick a gift, nothing that would leak the rest of the chain.
type TargetView struct {
	Name       string `json:"name"`
	Wishes     string `json:"wishes"`
	AntiWishes string `json:"anti_wishes"`
}

type ParticipantListItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	TargetStatus string    `json:"target_status"`
	IsAdmin      bool      `json:"is_admin"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Viewed    bool      `json:"viewed"`
	CreatedAt time.Time `json:"created_at"`
}

// ApplicationView is the public snapshot of the running exchange.
type ApplicationView struct {
	TeamName           string    `json:"team_name"`
	InvolvedCount      int       `json:"involved_count"`
	AssignmentDeadline time.Time `json:"assignment_deadline"`
	GiftDeadline       time.Time `json:"gift_deadline"`
	AssignmentMade     bool      `json:"assignment_made"`
	RecommendedPrice   int       `json:"recommended_price"`
	LocationText       string    `json:"location_text"`
	SupportEmail       string    `json:"support_email"`
}
