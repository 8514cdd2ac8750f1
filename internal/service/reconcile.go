package service

import "phishguard/internal/models"

// FeedbackDeltas are the counter changes a feedback label produces for the
// reporting user.
type FeedbackDeltas struct {
	CorrectReports int
	FalsePositives int
}

// Reconcile compares the stored verdict with the human label and returns the
// counter deltas. Evaluated as an ordered decision:
//   - malicious feedback on a malicious verdict is a correct report
//   - safe feedback on a safe verdict is a correct report
//   - safe feedback on any other verdict is a false positive
//   - malicious feedback on a non-malicious verdict changes nothing; missed
//     malicious cases are not tracked in this POC
func Reconcile(verdict models.Verdict, feedback models.Feedback) FeedbackDeltas {
	switch {
	case feedback == models.FeedbackMalicious && verdict == models.VerdictMalicious:
		return FeedbackDeltas{CorrectReports: 1}
	case feedback == models.FeedbackSafe && verdict == models.VerdictSafe:
		return FeedbackDeltas{CorrectReports: 1}
	case feedback == models.FeedbackSafe:
		return FeedbackDeltas{FalsePositives: 1}
	default:
		return FeedbackDeltas{}
	}
}

// AwarenessScore derives the leaderboard metric from a user's counters:
// the truncated correctness percentage minus two points per false positive,
// clamped at zero.
func AwarenessScore(u *models.User) int {
	if u.TotalReports == 0 {
		return 0
	}
	score := int(float64(u.CorrectReports)/float64(u.TotalReports)*100) - u.FalsePositives*2
	if score < 0 {
		score = 0
	}
	return score
}
