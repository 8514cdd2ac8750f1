package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"phishguard/internal/alert"
	"phishguard/internal/analyzer"
	"phishguard/internal/models"
	"phishguard/internal/repository"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// AnalyzeInput is the triage request payload.
type AnalyzeInput struct {
	UserID  string
	Source  string
	Message string
	URLs    []string
}

type TriageService interface {
	Analyze(ctx context.Context, in AnalyzeInput) (*models.Submission, error)
	ListSubmissions(limit int) ([]*models.Submission, error)
	ApplyFeedback(submissionID int64, feedback string) (*models.Submission, error)
	Leaderboard() ([]*models.UserScore, error)
}

type triageService struct {
	analyzer       *analyzer.Analyzer
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
	notifier       *alert.Notifier
	logger         *zap.Logger
}

func NewTriageService(
	a *analyzer.Analyzer,
	submissionRepo repository.SubmissionRepository,
	userRepo repository.UserRepository,
	notifier *alert.Notifier,
	logger *zap.Logger,
) TriageService {
	return &triageService{
		analyzer:       a,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Analyze runs the heuristic battery, persists the submission with its final
// verdict and bumps the reporter's totals. Analysis never fails; only
// persistence can return an error.
func (s *triageService) Analyze(ctx context.Context, in AnalyzeInput) (*models.Submission, error) {
	if in.UserID == "" {
		in.UserID = "anonymous"
	}
	if in.Source == "" {
		in.Source = "dashboard"
	}

	result := s.analyzer.Analyze(ctx, in.Message, in.URLs)

	sub := &models.Submission{
		UserID:    in.UserID,
		Source:    in.Source,
		Message:   in.Message,
		URLs:      pq.StringArray(result.URLs),
		Verdict:   result.Verdict,
		Score:     result.Score,
		Reasons:   pq.StringArray(result.Reasons),
		CreatedAt: time.Now().UTC(),
	}
	if sub.URLs == nil {
		sub.URLs = pq.StringArray{}
	}
	if sub.Reasons == nil {
		sub.Reasons = pq.StringArray{}
	}

	if err := s.submissionRepo.Save(sub); err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	if err := s.userRepo.RecordSubmission(sub.UserID); err != nil {
		return nil, fmt.Errorf("failed to record submission for user: %w", err)
	}

	s.logger.Info("Submission analyzed",
		zap.Int64("submission_id", sub.ID),
		zap.String("user_id", sub.UserID),
		zap.String("verdict", string(sub.Verdict)),
		zap.Float64("score", sub.Score),
	)

	if sub.Verdict == models.VerdictMalicious {
		// Off the request path; a failed alert is only logged.
		go s.notifier.NotifyMalicious(sub)
	}

	return sub, nil
}

func (s *triageService) ListSubmissions(limit int) ([]*models.Submission, error) {
	return s.submissionRepo.List(limit)
}

// ApplyFeedback stores the human label on the submission and reconciles the
// reporter's counters. The label always overwrites whatever was there before,
// and repeated calls re-apply the deltas; unrecognized labels are stored but
// change no counters.
func (s *triageService) ApplyFeedback(submissionID int64, feedback string) (*models.Submission, error) {
	sub, err := s.submissionRepo.GetByID(submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission %d: %w", submissionID, err)
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}

	if err := s.submissionRepo.UpdateFeedback(submissionID, feedback); err != nil {
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}
	sub.Feedback = &feedback

	label, ok := models.ParseFeedback(feedback)
	if !ok {
		s.logger.Warn("Unrecognized feedback label, counters unchanged",
			zap.Int64("submission_id", submissionID),
			zap.String("feedback", feedback),
		)
		return sub, nil
	}

	deltas := Reconcile(sub.Verdict, label)
	if deltas.CorrectReports > 0 {
		if err := s.userRepo.AddCorrectReport(sub.UserID); err != nil {
			return nil, fmt.Errorf("failed to update user counters: %w", err)
		}
	}
	if deltas.FalsePositives > 0 {
		if err := s.userRepo.AddFalsePositive(sub.UserID); err != nil {
			return nil, fmt.Errorf("failed to update user counters: %w", err)
		}
	}

	return sub, nil
}

// Leaderboard returns all users with their awareness scores, ordered by
// correct reports then total reports.
func (s *triageService) Leaderboard() ([]*models.UserScore, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	scores := make([]*models.UserScore, 0, len(users))
	for _, u := range users {
		scores = append(scores, &models.UserScore{
			User:           *u,
			AwarenessScore: AwarenessScore(u),
		})
	}
	return scores, nil
}
