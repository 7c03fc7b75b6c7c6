package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/repository"
	"github.com/templui/perfdesk/internal/validation"
)

type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

// Create logs a Pending task against a goal. Either role may log tasks;
// a missing goal is rejected by the store's foreign key.
func (s *TaskService) Create(ctx context.Context, sess *model.Session, goalID int64, description string) (*model.Task, error) {
	err := requireSession(sess)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		GoalID:      goalID,
		Description: description,
		Status:      model.TaskStatusPending,
	}

	err = s.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Info("task created", "task_id", task.ID, "goal_id", goalID, "user_id", sess.UserID, "role", sess.Role)
	return task, nil
}

func (s *TaskService) TasksForGoal(ctx context.Context, sess *model.Session, goalID int64) ([]*model.Task, error) {
	err := requireSession(sess)
	if err != nil {
		return nil, err
	}

	return s.repo.TasksForGoal(ctx, goalID)
}

func (s *TaskService) UpdateStatus(ctx context.Context, sess *model.Session, taskID int64, status string) error {
	err := requireManager(sess)
	if err != nil {
		return err
	}

	err = validation.ValidateTaskStatus(status)
	if err != nil {
		return err
	}

	err = s.repo.UpdateStatus(ctx, taskID, status)
	if err != nil {
		return err
	}

	slog.Info("task status updated", "task_id", taskID, "status", status, "manager_id", sess.UserID)
	return nil
}
