package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/service"
	"github.com/templui/perfdesk/internal/ui"
	"github.com/templui/perfdesk/internal/ui/pages"
	"github.com/templui/perfdesk/internal/validation"
)

type GoalHandler struct {
	goalService *service.GoalService
	now         func() time.Time
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		now:         time.Now,
	}
}

// GoalsPage is the Goal Setting tab.
func (h *GoalHandler) GoalsPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	props := pages.GoalsProps{
		Session: sess,
		Flash:   flashFrom(r),
		Today:   h.now(),
	}

	goals, err := h.goalService.Goals(r.Context(), sess)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", sess.UserID, "role", sess.Role)
		props.LoadFailed = true
	} else {
		props.Goals = goals
	}

	ui.Render(w, r, pages.Goals(props))
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	employeeID, err := validation.ParseID(r.FormValue("employee_id"))
	if err != nil {
		back(w, r, "/app/goals", "error", "invalid", nil)
		return
	}
	dueDate, err := validation.ParseDueDate(r.FormValue("due_date"))
	if err != nil {
		back(w, r, "/app/goals", "error", "invalid", nil)
		return
	}
	description := strings.TrimSpace(r.FormValue("description"))

	_, err = h.goalService.Create(r.Context(), sess, employeeID, description, dueDate)
	if err != nil {
		slog.Error("failed to create goal", "error", err, "user_id", sess.UserID, "employee_id", employeeID)
		back(w, r, "/app/goals", "error", errorKey(err), nil)
		return
	}

	back(w, r, "/app/goals", "notice", "goal-created", nil)
}

// UpdateStatus changes a goal's status and returns to its progress view.
func (h *GoalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	goalID, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		back(w, r, "/app/progress", "error", "invalid", nil)
		return
	}

	err = h.goalService.UpdateStatus(r.Context(), sess, goalID, r.FormValue("status"))
	if err != nil {
		slog.Error("failed to update goal status", "error", err, "user_id", sess.UserID, "goal_id", goalID)
		back(w, r, "/app/progress", "error", errorKey(err), goalQuery(goalID))
		return
	}

	back(w, r, "/app/progress", "notice", "goal-status", goalQuery(goalID))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	goalID, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		back(w, r, "/app/goals", "error", "invalid", nil)
		return
	}

	err = h.goalService.Delete(r.Context(), sess, goalID)
	if err != nil {
		slog.Error("failed to delete goal", "error", err, "user_id", sess.UserID, "goal_id", goalID)
		back(w, r, "/app/goals", "error", errorKey(err), nil)
		return
	}

	back(w, r, "/app/goals", "notice", "goal-deleted", nil)
}
