package response

import (
	"time"

	"secret-santa/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ParticipantResponse struct {
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

func NewParticipantResponse(view *queries.ParticipantView) (ParticipantResponse, error) {
	var resp ParticipantResponse
	err := copier.Copy(&resp, view)
	return resp, err
}

type TargetResponse struct {
	Name       string `json:"name"`
	Wishes     string `json:"wishes"`
	AntiWishes string `json:"anti_wishes"`
}

func NewTargetResponse(view *queries.TargetView) (TargetResponse, error) {
	var resp TargetResponse
	err := copier.Copy(&resp, view)
	return resp, err
}

type ParticipantListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	TargetStatus string    `json:"target_status"`
	IsAdmin      bool      `json:"is_admin"`
}

func NewParticipantListResponse(items []*queries.ParticipantListItem) ([]ParticipantListItemResponse, error) {
	resp := make([]ParticipantListItemResponse, 0, len(items))
	err := copier.Copy(&resp, items)
	return resp, err
}
