package models

// Verdict is the three-level classification of a submission.
type Verdict string

const (
	VerdictSafe       Verdict = "safe"
	VerdictSuspicious Verdict = "suspicious"
	VerdictMalicious  Verdict = "malicious"
)

// Feedback is a human-supplied label for a stored submission. Only the two
// values below participate in counter reconciliation; anything else is stored
// verbatim and otherwise ignored.
type Feedback string

const (
	FeedbackSafe      Feedback = "safe"
	FeedbackMalicious Feedback = "malicious"
)

// ParseFeedback returns the closed feedback value for s, or false when s is
// not one of the recognized labels.
func ParseFeedback(s string) (Feedback, bool) {
	switch Feedback(s) {
	case FeedbackSafe:
		return FeedbackSafe, true
	case FeedbackMalicious:
		return FeedbackMalicious, true
	}
	return "", false
}
