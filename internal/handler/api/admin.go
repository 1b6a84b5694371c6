package api

import (
	"errors"
	"net/http"

	resdto "secret-santa/internal/handler/dto/response"
	"secret-santa/internal/handler/httperr"
	"secret-santa/internal/usecase/commands"
	"secret-santa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the event controls: running and cancelling the
// toss and inspecting the full roster.
type AdminHandler struct {
	tossUseCase        commands.TossCommands
	participantQueries queries.ParticipantQueries
}

func NewAdminHandler(tossUseCase commands.TossCommands, participantQueries queries.ParticipantQueries) *AdminHandler {
	return &AdminHandler{
		tossUseCase:        tossUseCase,
		participantQueries: participantQueries,
	}
}

func (h *AdminHandler) MakeToss(c *gin.Context) {
	err := h.tossUseCase.MakeToss(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotEnoughParticipants):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Not enough involved participants for a toss",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) NullifyToss(c *gin.Context) {
	if err := h.tossUseCase.NullifyToss(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListParticipants(c *gin.Context) {
	items, err := h.participantQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list participants", nil)
		return
	}

	resp, err := resdto.NewParticipantListResponse(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
