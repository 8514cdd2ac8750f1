package models

import (
	"time"

	"github.com/lib/pq"
)

// Submission represents one analyzed report stored in the 'submissions' table.
// Verdict, score and reasons are final at creation time; feedback is the only
// field written after the fact.
type Submission struct {
	ID        int64          `db:"id" json:"id"`
	UserID    string         `db:"user_id" json:"user_id"`
	Source    string         `db:"source" json:"source"` // e.g. "dashboard"
	Message   string         `db:"message" json:"message"`
	URLs      pq.StringArray `db:"urls" json:"urls"`
	Verdict   Verdict        `db:"verdict" json:"verdict"`
	Score     float64        `db:"score" json:"score"`
	Reasons   pq.StringArray `db:"reasons" json:"reasons"`
	Feedback  *string        `db:"feedback" json:"feedback"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
