package service

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/perfdesk/internal/db/dbtest"
	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/repository"
)

var (
	manager  = &model.Session{Role: model.RoleManager, UserID: 1}
	employee = &model.Session{Role: model.RoleEmployee, UserID: 2}
)

type fixture struct {
	db        *sqlx.DB
	goals     *GoalService
	tasks     *TaskService
	feedback  *FeedbackService
	reminders *ReminderService
	reports   *ReportService
	notifier  *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database := dbtest.New(t)
	goalRepo := repository.NewGoalRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	feedbackRepo := repository.NewFeedbackRepository(database)
	notifier := &recordingNotifier{}

	return &fixture{
		db:        database,
		goals:     NewGoalService(goalRepo),
		tasks:     NewTaskService(taskRepo),
		feedback:  NewFeedbackService(feedbackRepo, goalRepo),
		reminders: NewReminderService(goalRepo, feedbackRepo, notifier),
		reports:   NewReportService(goalRepo, taskRepo, feedbackRepo, nil),
		notifier:  notifier,
	}
}

func (f *fixture) pinClock(now time.Time) {
	fixed := func() time.Time { return now }
	f.goals.now = fixed
	f.feedback.now = fixed
	f.reminders.now = fixed
	f.reports.now = fixed
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
