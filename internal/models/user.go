package models

// User holds per-reporter statistics stored in the 'users' table.
// Rows are created lazily on a reporter's first submission.
type User struct {
	UserID         string `db:"user_id" json:"user_id"`
	DisplayName    string `db:"display_name" json:"display_name"`
	TotalReports   int    `db:"total_reports" json:"total_reports"`
	CorrectReports int    `db:"correct_reports" json:"correct_reports"`
	FalsePositives int    `db:"false_positives" json:"false_positives"`
}

// UserScore is a leaderboard row: user statistics plus the derived
// awareness score.
type UserScore struct {
	User
	AwarenessScore int `json:"awareness_score"`
}
