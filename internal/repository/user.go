package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"phishguard/internal/models"
)

type UserRepository interface {
	RecordSubmission(userID string) error
	AddCorrectReport(userID string) error
	AddFalsePositive(userID string) error
	List() ([]*models.User, error)
}

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *sqlx.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

// RecordSubmission bumps the reporter's total, creating the row on first
// contact. A single upsert statement, so two concurrent first submissions
// from the same new reporter cannot double-create.
func (r *userRepository) RecordSubmission(userID string) error {
	query := `INSERT INTO users (user_id, display_name, total_reports, correct_reports, false_positives)
	          VALUES ($1, $1, 1, 0, 0)
	          ON CONFLICT (user_id) DO UPDATE SET total_reports = users.total_reports + 1`
	_, err := r.db.Exec(query, userID)
	return err
}

func (r *userRepository) AddCorrectReport(userID string) error {
	query := `UPDATE users SET correct_reports = correct_reports + 1 WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}

func (r *userRepository) AddFalsePositive(userID string) error {
	query := `UPDATE users SET false_positives = false_positives + 1 WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}

// List returns all users in leaderboard order: correct reports first, total
// reports as the tie-break.
func (r *userRepository) List() ([]*models.User, error) {
	users := []*models.User{}
	query := `SELECT user_id, display_name, total_reports, correct_reports, false_positives
	          FROM users ORDER BY correct_reports DESC, total_reports DESC`
	if err := r.db.Select(&users, query); err != nil {
		return nil, err
	}
	return users, nil
}
