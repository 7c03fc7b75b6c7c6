package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/templui/perfdesk/internal/metrics"
	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/repository"
)

// ReminderNotifier is told about reminders a scan created.
type ReminderNotifier interface {
	SendReminderDigest(ctx context.Context, reminders []Reminder) error
}

// Reminder pairs an overdue goal with the feedback row written for it.
type Reminder struct {
	Goal     *model.Goal
	Feedback *model.Feedback
}

type ScanResult struct {
	Examined int
	Created  []Reminder
	Failed   int
}

type ReminderService struct {
	goalRepo     repository.GoalRepository
	feedbackRepo repository.FeedbackRepository
	notifier     ReminderNotifier
	now          clock
}

func NewReminderService(goalRepo repository.GoalRepository, feedbackRepo repository.FeedbackRepository, notifier ReminderNotifier) *ReminderService {
	return &ReminderService{
		goalRepo:     goalRepo,
		feedbackRepo: feedbackRepo,
		notifier:     notifier,
		now:          utcNow,
	}
}

// ReminderMessage is the content of the automated feedback for a goal.
func ReminderMessage(description string) string {
	return fmt.Sprintf("%s This goal '%s' is past its due date.", model.ReminderPrefix, description)
}

// Scan writes one automated reminder per open goal due before now, skipping
// goals that already carry one. A failure on one goal is logged and the scan
// moves on.
func (s *ReminderService) Scan(ctx context.Context) (ScanResult, error) {
	var result ScanResult

	now := s.now()
	goals, err := s.goalRepo.Overdue(ctx, now)
	if err != nil {
		metrics.ScanFailures.Inc()
		return result, fmt.Errorf("failed to list overdue goals: %w", err)
	}
	result.Examined = len(goals)

	for _, goal := range goals {
		feedback := &model.Feedback{
			GoalID:     goal.ID,
			ManagerID:  goal.ManagerID,
			EmployeeID: goal.EmployeeID,
			Content:    ReminderMessage(goal.Description),
			GivenAt:    now,
		}

		created, err := s.feedbackRepo.CreateReminder(ctx, feedback, model.ReminderPrefix)
		if err != nil {
			result.Failed++
			metrics.ScanFailures.Inc()
			slog.Error("failed to create automated feedback", "error", err, "goal_id", goal.ID)
			continue
		}
		if !created {
			continue
		}

		metrics.RemindersCreated.Inc()
		slog.Info("automated feedback created", "goal_id", goal.ID, "feedback_id", feedback.ID)
		result.Created = append(result.Created, Reminder{Goal: goal, Feedback: feedback})
	}

	if len(result.Created) > 0 && s.notifier != nil {
		err = s.notifier.SendReminderDigest(ctx, result.Created)
		if err != nil {
			slog.Error("failed to send reminder digest", "error", err, "reminders", len(result.Created))
		}
	}

	return result, nil
}
