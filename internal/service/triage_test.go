package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"phishguard/internal/analyzer"
	"phishguard/internal/models"
)

type fakeSubmissionRepo struct {
	subs   map[int64]*models.Submission
	nextID int64
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{subs: make(map[int64]*models.Submission)}
}

func (f *fakeSubmissionRepo) Save(sub *models.Submission) error {
	f.nextID++
	sub.ID = f.nextID
	f.subs[sub.ID] = sub
	return nil
}

func (f *fakeSubmissionRepo) GetByID(id int64) (*models.Submission, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, nil
	}
	return sub, nil
}

func (f *fakeSubmissionRepo) List(limit int) ([]*models.Submission, error) {
	out := []*models.Submission{}
	for id := f.nextID; id > 0 && len(out) < limit; id-- {
		if sub, ok := f.subs[id]; ok {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (f *fakeSubmissionRepo) UpdateFeedback(id int64, feedback string) error {
	f.subs[id].Feedback = &feedback
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) RecordSubmission(userID string) error {
	if u, ok := f.users[userID]; ok {
		u.TotalReports++
		return nil
	}
	f.users[userID] = &models.User{UserID: userID, DisplayName: userID, TotalReports: 1}
	return nil
}

func (f *fakeUserRepo) AddCorrectReport(userID string) error {
	f.users[userID].CorrectReports++
	return nil
}

func (f *fakeUserRepo) AddFalsePositive(userID string) error {
	f.users[userID].FalsePositives++
	return nil
}

func (f *fakeUserRepo) List() ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type stubProber struct{}

func (stubProber) RedirectCount(_ context.Context, _ string) (int, error) { return 0, nil }
func (stubProber) SecureReachable(_ context.Context, _ string) bool       { return true }

func newTestService(t *testing.T) (TriageService, *fakeSubmissionRepo, *fakeUserRepo) {
	logger := zaptest.NewLogger(t)
	subRepo := newFakeSubmissionRepo()
	userRepo := newFakeUserRepo()
	engine := analyzer.New(analyzer.DefaultConfig(), stubProber{}, logger)
	svc := NewTriageService(engine, subRepo, userRepo, nil, logger)
	return svc, subRepo, userRepo
}

func TestAnalyze_PersistsSubmissionAndUser(t *testing.T) {
	svc, subRepo, userRepo := newTestService(t)

	sub, err := svc.Analyze(context.Background(), AnalyzeInput{
		UserID:  "alice",
		Message: "hello there",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), sub.ID)
	assert.Equal(t, models.VerdictSafe, sub.Verdict)
	assert.NotNil(t, subRepo.subs[sub.ID])
	assert.Equal(t, 1, userRepo.users["alice"].TotalReports)

	_, err = svc.Analyze(context.Background(), AnalyzeInput{UserID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 2, userRepo.users["alice"].TotalReports)
}

func TestAnalyze_DefaultsAppliedToEmptyFields(t *testing.T) {
	svc, subRepo, userRepo := newTestService(t)

	sub, err := svc.Analyze(context.Background(), AnalyzeInput{})
	require.NoError(t, err)

	assert.Equal(t, "anonymous", sub.UserID)
	assert.Equal(t, "dashboard", sub.Source)
	assert.NotNil(t, userRepo.users["anonymous"])
	assert.Equal(t, "anonymous", subRepo.subs[sub.ID].UserID)
}

func TestApplyFeedback_UnknownSubmission(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ApplyFeedback(42, "malicious")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestApplyFeedback_CorrectReport(t *testing.T) {
	svc, subRepo, userRepo := newTestService(t)
	userRepo.users["bob"] = &models.User{UserID: "bob", TotalReports: 1}
	subRepo.Save(&models.Submission{UserID: "bob", Verdict: models.VerdictMalicious})

	sub, err := svc.ApplyFeedback(1, "malicious")
	require.NoError(t, err)

	require.NotNil(t, sub.Feedback)
	assert.Equal(t, "malicious", *sub.Feedback)
	assert.Equal(t, 1, userRepo.users["bob"].CorrectReports)
	assert.Equal(t, 0, userRepo.users["bob"].FalsePositives)
}

func TestApplyFeedback_FalsePositive(t *testing.T) {
	svc, subRepo, userRepo := newTestService(t)
	userRepo.users["bob"] = &models.User{UserID: "bob", TotalReports: 1}
	subRepo.Save(&models.Submission{UserID: "bob", Verdict: models.VerdictSuspicious})

	_, err := svc.ApplyFeedback(1, "safe")
	require.NoError(t, err)

	assert.Equal(t, 0, userRepo.users["bob"].CorrectReports)
	assert.Equal(t, 1, userRepo.users["bob"].FalsePositives)
}

func TestApplyFeedback_MissedMaliciousUntracked(t *testing.T) {
	svc, subRepo, userRepo := newTestService(t)
	userRepo.users["bob"] = &models.User{UserID: "bob", TotalReports: 1}
	subRepo.Save(&models.Submission{UserID: "bob", Verdict: models.VerdictSuspicious})

	sub, err := svc.ApplyFeedback(1, "malicious")
	require.NoError(t, err)

	// Label stored, counters untouched.
	require.NotNil(t, sub.Feedback)
	assert.Equal(t, "malicious", *sub.Feedback)
	assert.Equal(t, 0, userRepo.users["bob"].CorrectReports)
	assert.Equal(t, 0, userRepo.users["bob"].FalsePositives)
}

func TestApplyFeedback_RepeatedFeedbackDoubleCounts(t *testing.T) {
	// Feedback is not idempotent: re-submitting the same label re-applies
	// the reconciliation. Preserved source behavior, pinned here.
	svc, subRepo, userRepo := newTestService(t)
	userRepo.users["bob"] = &models.User{UserID: "bob", TotalReports: 1}
	subRepo.Save(&models.Submission{UserID: "bob", Verdict: models.VerdictMalicious})

	_, err := svc.ApplyFeedback(1, "malicious")
	require.NoError(t, err)
	_, err = svc.ApplyFeedback(1, "malicious")
	require.NoError(t, err)

	assert.Equal(t, 2, userRepo.users["bob"].CorrectReports)
}

func TestApplyFeedback_UnrecognizedLabelStoredWithoutDeltas(t *testing.T) {
	svc, subRepo, userRepo := newTestService(t)
	userRepo.users["bob"] = &models.User{UserID: "bob", TotalReports: 1}
	subRepo.Save(&models.Submission{UserID: "bob", Verdict: models.VerdictSafe})

	sub, err := svc.ApplyFeedback(1, "dunno")
	require.NoError(t, err)

	require.NotNil(t, sub.Feedback)
	assert.Equal(t, "dunno", *sub.Feedback)
	assert.Equal(t, 0, userRepo.users["bob"].CorrectReports)
	assert.Equal(t, 0, userRepo.users["bob"].FalsePositives)
}

func TestLeaderboard_ComputesAwareness(t *testing.T) {
	svc, _, userRepo := newTestService(t)
	userRepo.users["alice"] = &models.User{
		UserID: "alice", TotalReports: 10, CorrectReports: 8, FalsePositives: 1,
	}

	scores, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Len(t, scores, 1)

	assert.Equal(t, "alice", scores[0].UserID)
	assert.Equal(t, 78, scores[0].AwarenessScore)
}
