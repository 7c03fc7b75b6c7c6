package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/perfdesk/internal/config"
	"github.com/templui/perfdesk/internal/db"
	"github.com/templui/perfdesk/internal/repository"
	"github.com/templui/perfdesk/internal/service"
	"github.com/templui/perfdesk/internal/storage"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	SessionService  *service.SessionService
	GoalService     *service.GoalService
	TaskService     *service.TaskService
	FeedbackService *service.FeedbackService
	ReminderService *service.ReminderService
	ReportService   *service.ReportService
	EmailService    *service.EmailService
}

// New opens the database, applies migrations and connects storage.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	database, err := db.Init(ctx, cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	reportStorage, err := storage.New(ctx, cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return Build(cfg, database, reportStorage), nil
}

// Build wires repositories and services over an open database. store may be
// nil, which disables report archiving.
func Build(cfg *config.Config, database *sqlx.DB, store storage.Storage) *App {
	// Repositories
	goalRepository := repository.NewGoalRepository(database)
	taskRepository := repository.NewTaskRepository(database)
	feedbackRepository := repository.NewFeedbackRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ReminderDigestEmail,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	sessionService := service.NewSessionService(cfg.SessionSecret, cfg.SessionExpiry, cfg.IsProduction())
	goalService := service.NewGoalService(goalRepository)
	taskService := service.NewTaskService(taskRepository)
	feedbackService := service.NewFeedbackService(feedbackRepository, goalRepository)
	reminderService := service.NewReminderService(goalRepository, feedbackRepository, emailService)
	reportService := service.NewReportService(goalRepository, taskRepository, feedbackRepository, store)

	return &App{
		Cfg:             cfg,
		DB:              database,
		SessionService:  sessionService,
		GoalService:     goalService,
		TaskService:     taskService,
		FeedbackService: feedbackService,
		ReminderService: reminderService,
		ReportService:   reportService,
		EmailService:    emailService,
	}
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
