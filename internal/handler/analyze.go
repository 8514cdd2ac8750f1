package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"phishguard/internal/service"
)

type AnalyzeHandler interface {
	Analyze(c *gin.Context)
}

type analyzeHandler struct {
	triage service.TriageService
	logger *zap.Logger
}

func NewAnalyzeHandler(triage service.TriageService, logger *zap.Logger) AnalyzeHandler {
	return &analyzeHandler{triage: triage, logger: logger}
}

type AnalyzeRequest struct {
	UserID  string   `json:"user_id"`
	Source  string   `json:"source"`
	Message string   `json:"message"`
	URLs    []string `json:"urls"`
}

// Analyze handles POST /api/analyze. An empty payload is not an error: it
// scores 0.0 and comes back safe.
func (h *analyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.triage.Analyze(c.Request.Context(), service.AnalyzeInput{
		UserID:  req.UserID,
		Source:  req.Source,
		Message: req.Message,
		URLs:    req.URLs,
	})
	if err != nil {
		h.logger.Error("Failed to analyze submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"verdict":     sub.Verdict,
		"score":       sub.Score,
		"reasons":     sub.Reasons,
		"urls":        sub.URLs,
		"analyzed_at": sub.CreatedAt,
	})
}
