package repository

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	"github.com/templui/perfdesk/internal/model"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	FeedbackForGoal(ctx context.Context, goalID int64) ([]*model.Feedback, error)
	CreateReminder(ctx context.Context, feedback *model.Feedback, prefix string) (bool, error)
}

type feedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

const insertFeedbackQuery = `INSERT INTO feedback (goal_id, manager_id, employee_id, content, given_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING feedback_id`

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.QueryRowxContext(ctx, insertFeedbackQuery,
		feedback.GoalID,
		feedback.ManagerID,
		feedback.EmployeeID,
		feedback.Content,
		feedback.GivenAt,
	).Scan(&feedback.ID)
}

func (r *feedbackRepository) FeedbackForGoal(ctx context.Context, goalID int64) ([]*model.Feedback, error) {
	feedback := []*model.Feedback{}
	query := `SELECT * FROM feedback WHERE goal_id = $1 ORDER BY feedback_id ASC`

	err := r.db.SelectContext(ctx, &feedback, query, goalID)
	if err != nil {
		return nil, err
	}

	return feedback, nil
}

// CreateReminder inserts feedback unless the goal already has feedback whose
// content starts with prefix, compared case-sensitively on every driver.
// Check and insert share one transaction; under READ COMMITTED two concurrent
// callers can still both insert.
func (r *feedbackRepository) CreateReminder(ctx context.Context, feedback *model.Feedback, prefix string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var existing int
	query := `SELECT COUNT(*) FROM feedback
	          WHERE goal_id = $1 AND substr(content, 1, $2) = $3`
	err = tx.GetContext(ctx, &existing, query, feedback.GoalID, utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		return false, fmt.Errorf("failed to check existing reminder: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	err = tx.QueryRowxContext(ctx, insertFeedbackQuery,
		feedback.GoalID,
		feedback.ManagerID,
		feedback.EmployeeID,
		feedback.Content,
		feedback.GivenAt,
	).Scan(&feedback.ID)
	if err != nil {
		return false, fmt.Errorf("failed to insert reminder: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return false, err
	}

	return true, nil
}
