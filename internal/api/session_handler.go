package api

import (
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// GetSession godoc
// @Summary Profile and workouts with names resolved
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Session
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	session, err := h.sessionService.GetSession(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to load session.")
		return
	}
	c.JSON(http.StatusOK, session)
}
