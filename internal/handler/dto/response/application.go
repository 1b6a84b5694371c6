package response

import (
	"time"

	"secret-santa/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ApplicationResponse struct {
	TeamName           string    `json:"team_name"`
	InvolvedCount      int       `json:"involved_count"`
	AssignmentDeadline time.Time `json:"assignment_deadline"`
	GiftDeadline       time.Time `json:"gift_deadline"`
	AssignmentMade     bool      `json:"assignment_made"`
	RecommendedPrice   int       `json:"recommended_price"`
	LocationText       string    `json:"location_text"`
	SupportEmail       string    `json:"support_email"`
}

func NewApplicationResponse(view *queries.ApplicationView) (ApplicationResponse, error) {
	var resp ApplicationResponse
	err := copier.Copy(&resp, view)
	return resp, err
}
