package routes

import (
	"net/http"

	"github.com/templui/perfdesk/assets"
	"github.com/templui/perfdesk/internal/app"
	"github.com/templui/perfdesk/internal/handler"
	"github.com/templui/perfdesk/internal/metrics"
	"github.com/templui/perfdesk/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	session := handler.NewSessionHandler(app.SessionService)
	goal := handler.NewGoalHandler(app.GoalService)
	progress := handler.NewProgressHandler(app.GoalService, app.TaskService)
	feedback := handler.NewFeedbackHandler(app.GoalService, app.FeedbackService)
	report := handler.NewReportHandler(app.ReportService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(assets.AssetsFS))))

	if app.Cfg.MetricsEnabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// Sign-in (rate limited)
	rateLimiter := middleware.RateLimitSignIn()

	mux.HandleFunc("GET /{$}", middleware.RequireGuest(session.SignInPage))
	mux.HandleFunc("POST /session", rateLimiter(middleware.RequireGuest(session.SignIn)))
	mux.HandleFunc("POST /session/logout", session.SignOut)

	// ============================================================================
	// DASHBOARD (/app/*)
	// ============================================================================

	// Every page load runs the overdue check first
	scan := middleware.ReminderScan(app.ReminderService)
	page := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireSession(scan(h))
	}

	// Tabs
	mux.HandleFunc("GET /app/goals", page(goal.GoalsPage))
	mux.HandleFunc("GET /app/progress", page(progress.ProgressPage))
	mux.HandleFunc("GET /app/feedback", page(feedback.FeedbackPage))
	mux.HandleFunc("GET /app/reports", page(report.ReportsPage))

	// Goals
	mux.HandleFunc("POST /app/goals", middleware.RequireSession(goal.Create))
	mux.HandleFunc("POST /app/goals/{id}/status", middleware.RequireSession(goal.UpdateStatus))
	mux.HandleFunc("POST /app/goals/{id}/delete", middleware.RequireSession(goal.Delete))

	// Tasks
	mux.HandleFunc("POST /app/goals/{id}/tasks", middleware.RequireSession(progress.CreateTask))
	mux.HandleFunc("POST /app/tasks/{id}/status", middleware.RequireSession(progress.UpdateTaskStatus))

	// Feedback
	mux.HandleFunc("POST /app/goals/{id}/feedback", middleware.RequireSession(feedback.Create))

	// Reports
	mux.HandleFunc("GET /app/reports/{employee}/export", middleware.RequireSession(report.Export))
	mux.HandleFunc("POST /app/reports/{employee}/archive", middleware.RequireSession(report.Archive))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", session.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg),           // Config first, SecurityHeaders and CSRF read it
		middleware.Timeout(app.Cfg.DBTimeout), // Bounds every database call made for the request
		middleware.NonceMiddleware,           // Before SecurityHeaders, which puts the nonce in the CSP
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.Session(app.SessionService),
		middleware.WithURLPath,
		middleware.Metrics, // Last: reads r.Pattern set by the mux
	)
}
