package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/perfdesk/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// GoalFilter selects goals by employee OR manager. EmployeeID wins when both
// are set; zero values mean no filter.
type GoalFilter struct {
	EmployeeID int64
	ManagerID  int64
}

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	ByID(ctx context.Context, goalID int64) (*model.Goal, error)
	Goals(ctx context.Context, filter GoalFilter) ([]*model.Goal, error)
	Overdue(ctx context.Context, before time.Time) ([]*model.Goal, error)
	UpdateStatus(ctx context.Context, goalID int64, status string) error
	Delete(ctx context.Context, goalID int64) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `INSERT INTO goals (employee_id, manager_id, description, due_date, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING goal_id`

	return r.db.QueryRowxContext(ctx, query,
		goal.EmployeeID,
		goal.ManagerID,
		goal.Description,
		goal.DueDate,
		goal.Status,
		goal.CreatedAt,
	).Scan(&goal.ID)
}

func (r *goalRepository) ByID(ctx context.Context, goalID int64) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE goal_id = $1`

	err := r.db.GetContext(ctx, goal, query, goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *goalRepository) Goals(ctx context.Context, filter GoalFilter) ([]*model.Goal, error) {
	goals := []*model.Goal{}

	query := `SELECT * FROM goals`
	var args []any
	switch {
	case filter.EmployeeID != 0:
		query += ` WHERE employee_id = $1`
		args = append(args, filter.EmployeeID)
	case filter.ManagerID != 0:
		query += ` WHERE manager_id = $1`
		args = append(args, filter.ManagerID)
	}
	query += ` ORDER BY goal_id ASC`

	err := r.db.SelectContext(ctx, &goals, query, args...)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// Overdue returns open goals whose due date is strictly before the given time.
func (r *goalRepository) Overdue(ctx context.Context, before time.Time) ([]*model.Goal, error) {
	goals := []*model.Goal{}
	query := `SELECT * FROM goals
	          WHERE due_date < $1 AND status NOT IN ($2, $3)
	          ORDER BY goal_id ASC`

	err := r.db.SelectContext(ctx, &goals, query, before, model.GoalStatusCompleted, model.GoalStatusCancelled)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) UpdateStatus(ctx context.Context, goalID int64, status string) error {
	query := `UPDATE goals SET status = $1 WHERE goal_id = $2`

	result, err := r.db.ExecContext(ctx, query, status, goalID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Delete removes a goal; tasks and feedback go with it through ON DELETE CASCADE.
func (r *goalRepository) Delete(ctx context.Context, goalID int64) error {
	query := `DELETE FROM goals WHERE goal_id = $1`
	result, err := r.db.ExecContext(ctx, query, goalID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
