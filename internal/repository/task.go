package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/perfdesk/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	TasksForGoal(ctx context.Context, goalID int64) ([]*model.Task, error)
	UpdateStatus(ctx context.Context, taskID int64, status string) error
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (goal_id, description, status)
	          VALUES ($1, $2, $3)
	          RETURNING task_id`

	return r.db.QueryRowxContext(ctx, query, task.GoalID, task.Description, task.Status).Scan(&task.ID)
}

func (r *taskRepository) TasksForGoal(ctx context.Context, goalID int64) ([]*model.Task, error) {
	tasks := []*model.Task{}
	query := `SELECT * FROM tasks WHERE goal_id = $1 ORDER BY task_id ASC`

	err := r.db.SelectContext(ctx, &tasks, query, goalID)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, taskID int64, status string) error {
	query := `UPDATE tasks SET status = $1 WHERE task_id = $2`

	result, err := r.db.ExecContext(ctx, query, status, taskID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}
