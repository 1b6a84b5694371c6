package response

import (
	"time"

	"secret-santa/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Viewed    bool      `json:"viewed"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationListResponse(views []*queries.NotificationView) ([]NotificationResponse, error) {
	resp := make([]NotificationResponse, 0, len(views))
	err := copier.Copy(&resp, views)
	return resp, err
}
