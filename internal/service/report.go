package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/repository"
	"github.com/templui/perfdesk/internal/storage"
)

var ErrStorageDisabled = errors.New("report archive storage is not configured")

type ReportService struct {
	goalRepo     repository.GoalRepository
	taskRepo     repository.TaskRepository
	feedbackRepo repository.FeedbackRepository
	storage      storage.Storage
	now          clock
}

// NewReportService builds the reporting service. store may be nil, which
// disables Archive.
func NewReportService(
	goalRepo repository.GoalRepository,
	taskRepo repository.TaskRepository,
	feedbackRepo repository.FeedbackRepository,
	store storage.Storage,
) *ReportService {
	return &ReportService{
		goalRepo:     goalRepo,
		taskRepo:     taskRepo,
		feedbackRepo: feedbackRepo,
		storage:      store,
		now:          utcNow,
	}
}

func (s *ReportService) ArchiveEnabled() bool {
	return s.storage != nil
}

// Report assembles the performance history of an employee: every goal with
// its tasks and feedback.
func (s *ReportService) Report(ctx context.Context, sess *model.Session, employeeID int64) (*model.Report, error) {
	err := requireSession(sess)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.Goals(ctx, repository.GoalFilter{EmployeeID: employeeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	report := &model.Report{
		EmployeeID:  employeeID,
		GeneratedAt: s.now(),
		Goals:       make([]model.ReportGoal, 0, len(goals)),
	}

	for _, goal := range goals {
		tasks, err := s.taskRepo.TasksForGoal(ctx, goal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks for goal %d: %w", goal.ID, err)
		}

		feedback, err := s.feedbackRepo.FeedbackForGoal(ctx, goal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list feedback for goal %d: %w", goal.ID, err)
		}

		report.Goals = append(report.Goals, model.ReportGoal{
			Goal:     goal,
			Tasks:    tasks,
			Feedback: feedback,
		})
	}

	return report, nil
}

// Archive stores the JSON report in object storage and returns a temporary
// download URL.
func (s *ReportService) Archive(ctx context.Context, sess *model.Session, employeeID int64) (string, error) {
	if s.storage == nil {
		return "", ErrStorageDisabled
	}

	report, err := s.Report(ctx, sess, employeeID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = json.NewEncoder(&buf).Encode(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	key := ArchiveKey(report)
	err = s.storage.Save(ctx, key, &buf, "application/json")
	if err != nil {
		return "", err
	}

	url, err := s.storage.PresignedURL(ctx, key)
	if err != nil {
		return "", err
	}

	slog.Info("report archived", "employee_id", employeeID, "key", key, "requested_by", sess.UserID)
	return url, nil
}

// ArchiveKey names the object a report is stored under.
func ArchiveKey(report *model.Report) string {
	return fmt.Sprintf("reports/employee-%d/%s.json", report.EmployeeID, report.GeneratedAt.Format("20060102T150405Z"))
}
