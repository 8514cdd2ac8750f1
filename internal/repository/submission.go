package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"phishguard/internal/models"
)

type SubmissionRepository interface {
	Save(sub *models.Submission) error
	GetByID(id int64) (*models.Submission, error)
	List(limit int) ([]*models.Submission, error)
	UpdateFeedback(id int64, feedback string) error
}

type submissionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSubmissionRepository(db *sqlx.DB, logger *zap.Logger) SubmissionRepository {
	return &submissionRepository{db: db, logger: logger}
}

func (r *submissionRepository) Save(sub *models.Submission) error {
	query := `INSERT INTO submissions (user_id, source, message, urls, verdict, score, reasons, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowx(query, sub.UserID, sub.Source, sub.Message, sub.URLs,
		sub.Verdict, sub.Score, sub.Reasons, sub.CreatedAt).Scan(&sub.ID)
}

func (r *submissionRepository) GetByID(id int64) (*models.Submission, error) {
	var sub models.Submission
	query := `SELECT id, user_id, source, message, urls, verdict, score, reasons, feedback, created_at
	          FROM submissions WHERE id = $1`
	err := r.db.Get(&sub, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepository) List(limit int) ([]*models.Submission, error) {
	subs := []*models.Submission{}
	query := `SELECT id, user_id, source, message, urls, verdict, score, reasons, feedback, created_at
	          FROM submissions ORDER BY id DESC LIMIT $1`
	if err := r.db.Select(&subs, query, limit); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *submissionRepository) UpdateFeedback(id int64, feedback string) error {
	query := `UPDATE submissions SET feedback = $1 WHERE id = $2`
	_, err := r.db.Exec(query, feedback, id)
	return err
}
