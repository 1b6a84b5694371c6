package api

import (
	"net/http"

	resdto "secret-santa/internal/handler/dto/response"
	"secret-santa/internal/handler/httperr"
	"secret-santa/internal/usecase/commands"
	"secret-santa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationQueries queries.NotificationQueries
	notificationUseCase commands.NotificationCommands
}

func NewNotificationHandler(notificationQueries queries.NotificationQueries, notificationUseCase commands.NotificationCommands) *NotificationHandler {
	return &NotificationHandler{
		notificationQueries: notificationQueries,
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	participantID, ok := authedParticipant(c)
	if !ok {
		return
	}

	views, err := h.notificationQueries.ListForParticipant(c.Request.Context(), participantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notifications", nil)
		return
	}

	resp, err := resdto.NewNotificationListResponse(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) MarkViewed(c *gin.Context) {
	participantID, ok := authedParticipant(c)
	if !ok {
		return
	}

	if err := h.notificationUseCase.MarkAllViewed(c.Request.Context(), participantID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark notifications viewed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
