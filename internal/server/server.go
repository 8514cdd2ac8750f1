package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"phishguard/internal/handler"
	"phishguard/internal/service"
)

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewServer(triage service.TriageService, logger *zap.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		logger: logger,
	}

	s.setupRoutes(triage)

	return s
}

func (s *Server) setupRoutes(triage service.TriageService) {
	analyzeHandler := handler.NewAnalyzeHandler(triage, s.logger)
	submissionHandler := handler.NewSubmissionHandler(triage, s.logger)
	feedbackHandler := handler.NewFeedbackHandler(triage, s.logger)
	leaderboardHandler := handler.NewLeaderboardHandler(triage, s.logger)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := s.router.Group("/api")
	{
		api.POST("/analyze", analyzeHandler.Analyze)
		api.GET("/submissions", submissionHandler.ListSubmissions)
		api.POST("/feedback", feedbackHandler.SubmitFeedback)
		api.GET("/userscores", leaderboardHandler.GetUserScores)
	}
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
