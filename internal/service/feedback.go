package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/repository"
)

type FeedbackService struct {
	repo     repository.FeedbackRepository
	goalRepo repository.GoalRepository
	now      clock
}

func NewFeedbackService(repo repository.FeedbackRepository, goalRepo repository.GoalRepository) *FeedbackService {
	return &FeedbackService{
		repo:     repo,
		goalRepo: goalRepo,
		now:      utcNow,
	}
}

// Create records manager feedback on a goal. The employee is taken from the
// goal; the manager is the session user, whether or not they manage the goal.
func (s *FeedbackService) Create(ctx context.Context, sess *model.Session, goalID int64, content string) (*model.Feedback, error) {
	err := requireManager(sess)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.ByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	feedback := &model.Feedback{
		GoalID:     goal.ID,
		ManagerID:  sess.UserID,
		EmployeeID: goal.EmployeeID,
		Content:    content,
		GivenAt:    s.now(),
	}

	err = s.repo.Create(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	slog.Info("feedback created", "feedback_id", feedback.ID, "goal_id", goalID, "manager_id", sess.UserID)
	return feedback, nil
}

func (s *FeedbackService) FeedbackForGoal(ctx context.Context, sess *model.Session, goalID int64) ([]*model.Feedback, error) {
	err := requireSession(sess)
	if err != nil {
		return nil, err
	}

	return s.repo.FeedbackForGoal(ctx, goalID)
}
