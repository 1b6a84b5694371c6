package api

import (
	"errors"
	"net/http"

	reqdto "secret-santa/internal/handler/dto/request"
	resdto "secret-santa/internal/handler/dto/response"
	"secret-santa/internal/handler/middleware"
	"secret-santa/internal/usecase/commands"
	"secret-santa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ParticipantHandler struct {
	participantUseCase commands.ParticipantCommands
	participantQueries queries.ParticipantQueries
}

func NewParticipantHandler(participantUseCase commands.ParticipantCommands, participantQueries queries.ParticipantQueries) *ParticipantHandler {
	return &ParticipantHandler{
		participantUseCase: participantUseCase,
		participantQueries: participantQueries,
	}
}

func (h *ParticipantHandler) UpdateWishes(c *gin.Context) {
	participantID, ok := authedParticipant(c)
	if !ok {
		return
	}

	var req reqdto.UpdateWishesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.participantUseCase.UpdateWishes(c.Request.Context(), participantID, req.Wishes, req.AntiWishes)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWishesLocked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Wishes are locked after the toss",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Wishes text is too long",
			})
		case errors.Is(err, commands.ErrParticipantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Participant not found",
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

func (h *ParticipantHandler) SetStatus(c *gin.Context) {
	participantID, ok := authedParticipant(c)
	if !ok {
		return
	}

	var req reqdto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.participantUseCase.SetStatus(c.Request.Context(), participantID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status value",
			})
		case errors.Is(err, commands.ErrStatusLocked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Status is locked after the toss",
			})
		case errors.Is(err, commands.ErrParticipantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Participant not found",
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

// GetTarget reveals the recipient and marks the gift info as viewed, so
// the reminder texts switch to the next nudge.
func (h *ParticipantHandler) GetTarget(c *gin.Context) {
	participantID, ok := authedParticipant(c)
	if !ok {
		return
	}

	view, err := h.participantQueries.GetMyTarget(c.Request.Context(), participantID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTargetNotAssigned):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No recipient assigned yet",
			})
		case errors.Is(err, queries.ErrParticipantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Participant not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if err := h.participantUseCase.MarkGiftInfoViewed(c.Request.Context(), participantID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.NewTargetResponse(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ParticipantHandler) MarkGiftReady(c *gin.Context) {
	participantID, ok := authedParticipant(c)
	if !ok {
		return
	}

	err := h.participantUseCase.MarkGiftReady(c.Request.Context(), participantID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No recipient assigned yet",
			})
		case errors.Is(err, commands.ErrParticipantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Participant not found",
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

func authedParticipant(c *gin.Context) (uuid.UUID, bool) {
	participantID, ok := middleware.GetParticipantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return uuid.Nil, false
	}
	return participantID, true
}
