package api

import (
	"errors"
	"net/http"

	reqdto "secret-santa/internal/handler/dto/request"
	resdto "secret-santa/internal/handler/dto/response"
	"secret-santa/internal/handler/middleware"
	"secret-santa/internal/pkg/jwt"
	"secret-santa/internal/usecase/commands"
	"secret-santa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase        commands.AuthCommands
	participantQueries queries.ParticipantQueries
	tokens             *jwt.Service
}

func NewAuthHandler(authUseCase commands.AuthCommands, participantQueries queries.ParticipantQueries, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{
		authUseCase:        authUseCase,
		participantQueries: participantQueries,
		tokens:             tokens,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	p, err := h.authUseCase.Login(c.Request.Context(), req.AccessKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidAccessKey):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid access key",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	token, err := h.tokens.GenerateToken(p.ID(), p.IsAdmin())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.participantQueries.GetMe(c.Request.Context(), p.ID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	participantResp, err := resdto.NewParticipantResponse(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Participant: participantResp,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	participantID, ok := middleware.GetParticipantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	view, err := h.participantQueries.GetMe(c.Request.Context(), participantID)
	if err != nil {
		switch {
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

	resp, err := resdto.NewParticipantResponse(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
