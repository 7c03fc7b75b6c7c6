package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/service"
	"github.com/templui/perfdesk/internal/ui"
	"github.com/templui/perfdesk/internal/ui/pages"
	"github.com/templui/perfdesk/internal/validation"
)

type ProgressHandler struct {
	goalService *service.GoalService
	taskService *service.TaskService
}

func NewProgressHandler(goalService *service.GoalService, taskService *service.TaskService) *ProgressHandler {
	return &ProgressHandler{
		goalService: goalService,
		taskService: taskService,
	}
}

// ProgressPage is the Progress Tracking tab for the goal in ?goal=.
func (h *ProgressHandler) ProgressPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	props := pages.ProgressProps{
		Session: sess,
		Flash:   flashFrom(r),
	}

	goals, err := h.goalService.Goals(r.Context(), sess)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", sess.UserID, "role", sess.Role)
		props.LoadFailed = true
		ui.Render(w, r, pages.Progress(props))
		return
	}
	props.Goals = goals
	props.Selected = selectGoal(r, goals)

	if props.Selected != nil {
		tasks, err := h.taskService.TasksForGoal(r.Context(), sess, props.Selected.ID)
		if err != nil {
			slog.Error("failed to list tasks", "error", err, "goal_id", props.Selected.ID)
			props.LoadFailed = true
		} else {
			props.Tasks = tasks
		}
	}

	ui.Render(w, r, pages.Progress(props))
}

func (h *ProgressHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	goalID, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		back(w, r, "/app/progress", "error", "invalid", nil)
		return
	}

	_, err = h.taskService.Create(r.Context(), sess, goalID, strings.TrimSpace(r.FormValue("description")))
	if err != nil {
		slog.Error("failed to create task", "error", err, "user_id", sess.UserID, "goal_id", goalID)
		back(w, r, "/app/progress", "error", errorKey(err), goalQuery(goalID))
		return
	}

	back(w, r, "/app/progress", "notice", "task-created", goalQuery(goalID))
}

func (h *ProgressHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	// The goal only decides where to return to
	var extra url.Values
	if goalID, err := validation.ParseID(r.FormValue("goal")); err == nil {
		extra = goalQuery(goalID)
	}

	taskID, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		back(w, r, "/app/progress", "error", "invalid", extra)
		return
	}

	err = h.taskService.UpdateStatus(r.Context(), sess, taskID, r.FormValue("status"))
	if err != nil {
		slog.Error("failed to update task status", "error", err, "user_id", sess.UserID, "task_id", taskID)
		back(w, r, "/app/progress", "error", errorKey(err), extra)
		return
	}

	back(w, r, "/app/progress", "notice", "task-status", extra)
}
