package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"phishguard/internal/service"
)

type FeedbackHandler interface {
	SubmitFeedback(c *gin.Context)
}

type feedbackHandler struct {
	triage service.TriageService
	logger *zap.Logger
}

func NewFeedbackHandler(triage service.TriageService, logger *zap.Logger) FeedbackHandler {
	return &feedbackHandler{triage: triage, logger: logger}
}

type FeedbackRequest struct {
	SubmissionID int64  `json:"submission_id" binding:"required"`
	Feedback     string `json:"feedback" binding:"required"`
}

// SubmitFeedback handles POST /api/feedback. Feedback for an unknown
// submission is the one client-visible not-found error in the API.
func (h *feedbackHandler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.triage.ApplyFeedback(req.SubmissionID, req.Feedback); err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		h.logger.Error("Failed to apply feedback",
			zap.Int64("submission_id", req.SubmissionID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"submission_id": req.SubmissionID,
		"feedback":      req.Feedback,
	})
}
