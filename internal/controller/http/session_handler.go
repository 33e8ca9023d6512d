package http

import (
	"errors"
	"net/http"

	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/usecase"
	"vibe-coding-tools/pkg/logger"
	"vibe-coding-tools/pkg/session"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionUseCase usecase.SessionUseCase
	logger         *logger.Logger
}

func NewSessionHandler(sessionUseCase usecase.SessionUseCase, logger *logger.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		logger:         logger,
	}
}

// GetSession godoc
// @Summary      Resolve the anonymous session
// @Description  Returns the session's user, creating a fresh anonymous identity (and cookie) when none exists
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]string
// @Router       /user/session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)

	user, newToken, err := h.sessionUseCase.Resolve(token)
	if err != nil {
		if errors.Is(err, entity.ErrStorageUnavailable) {
			h.logger.Error("Session resolution degraded, storage unavailable: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session unavailable"})
			return
		}
		h.logger.Error("Failed to resolve session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve session"})
		return
	}

	if newToken != "" {
		c.SetCookie(session.CookieName, newToken, int(session.TokenTTL.Seconds()), "/", "", false, true)
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
	})
}
