package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"phishguard/internal/service"
)

type LeaderboardHandler interface {
	GetUserScores(c *gin.Context)
}

type leaderboardHandler struct {
	triage service.TriageService
	logger *zap.Logger
}

func NewLeaderboardHandler(triage service.TriageService, logger *zap.Logger) LeaderboardHandler {
	return &leaderboardHandler{triage: triage, logger: logger}
}

// GetUserScores handles GET /api/userscores.
func (h *leaderboardHandler) GetUserScores(c *gin.Context) {
	users, err := h.triage.Leaderboard()
	if err != nil {
		h.logger.Error("Failed to build leaderboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user scores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}
