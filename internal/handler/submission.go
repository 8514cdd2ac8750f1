package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"phishguard/internal/service"
)

const defaultSubmissionLimit = 200

type SubmissionHandler interface {
	ListSubmissions(c *gin.Context)
}

type submissionHandler struct {
	triage service.TriageService
	logger *zap.Logger
}

func NewSubmissionHandler(triage service.TriageService, logger *zap.Logger) SubmissionHandler {
	return &submissionHandler{triage: triage, logger: logger}
}

// ListSubmissions handles GET /api/submissions?limit=N, newest first.
func (h *submissionHandler) ListSubmissions(c *gin.Context) {
	limit := defaultSubmissionLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	subs, err := h.triage.ListSubmissions(limit)
	if err != nil {
		h.logger.Error("Failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(subs), "submissions": subs})
}
