package api

import (
	"net/http"

	resdto "secret-santa/internal/handler/dto/response"
	"secret-santa/internal/handler/httperr"
	"secret-santa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationQueries queries.ApplicationQueries
}

func NewApplicationHandler(applicationQueries queries.ApplicationQueries) *ApplicationHandler {
	return &ApplicationHandler{applicationQueries: applicationQueries}
}

func (h *ApplicationHandler) GetApplicationData(c *gin.Context) {
	view, err := h.applicationQueries.GetApplicationData(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load application data", nil)
		return
	}

	resp, err := resdto.NewApplicationResponse(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
