package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/repository"
	"github.com/templui/perfdesk/internal/validation"
)

type GoalService struct {
	repo repository.GoalRepository
	now  clock
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
		now:  utcNow,
	}
}

// Create sets a new Draft goal managed by the session's manager.
// Empty descriptions and past due dates are stored as given.
func (s *GoalService) Create(ctx context.Context, sess *model.Session, employeeID int64, description string, dueDate time.Time) (*model.Goal, error) {
	err := requireManager(sess)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		EmployeeID:  employeeID,
		ManagerID:   sess.UserID,
		Description: description,
		DueDate:     model.StartOfDay(dueDate),
		Status:      model.GoalStatusDraft,
		CreatedAt:   s.now(),
	}

	err = s.repo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Info("goal created", "goal_id", goal.ID, "employee_id", employeeID, "manager_id", sess.UserID)
	return goal, nil
}

// Goals lists the goals relevant to the session: the ones a manager manages
// or the ones assigned to an employee.
func (s *GoalService) Goals(ctx context.Context, sess *model.Session) ([]*model.Goal, error) {
	err := requireSession(sess)
	if err != nil {
		return nil, err
	}

	filter := repository.GoalFilter{EmployeeID: sess.UserID}
	if sess.IsManager() {
		filter = repository.GoalFilter{ManagerID: sess.UserID}
	}

	return s.repo.Goals(ctx, filter)
}

// GoalsForEmployee lists every goal assigned to an employee. Any role may
// read any employee's history.
func (s *GoalService) GoalsForEmployee(ctx context.Context, sess *model.Session, employeeID int64) ([]*model.Goal, error) {
	err := requireSession(sess)
	if err != nil {
		return nil, err
	}

	return s.repo.Goals(ctx, repository.GoalFilter{EmployeeID: employeeID})
}

func (s *GoalService) ByID(ctx context.Context, sess *model.Session, goalID int64) (*model.Goal, error) {
	err := requireSession(sess)
	if err != nil {
		return nil, err
	}

	return s.repo.ByID(ctx, goalID)
}

func (s *GoalService) UpdateStatus(ctx context.Context, sess *model.Session, goalID int64, status string) error {
	err := requireManager(sess)
	if err != nil {
		return err
	}

	err = validation.ValidateGoalStatus(status)
	if err != nil {
		return err
	}

	err = s.repo.UpdateStatus(ctx, goalID, status)
	if err != nil {
		return err
	}

	slog.Info("goal status updated", "goal_id", goalID, "status", status, "manager_id", sess.UserID)
	return nil
}

// Delete removes a goal together with its tasks and feedback.
func (s *GoalService) Delete(ctx context.Context, sess *model.Session, goalID int64) error {
	err := requireManager(sess)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, goalID)
	if err != nil {
		return err
	}

	slog.Info("goal deleted", "goal_id", goalID, "manager_id", sess.UserID)
	return nil
}
