package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/service"
	"github.com/templui/perfdesk/internal/ui"
	"github.com/templui/perfdesk/internal/ui/pages"
	"github.com/templui/perfdesk/internal/validation"
)

type FeedbackHandler struct {
	goalService     *service.GoalService
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(goalService *service.GoalService, feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		goalService:     goalService,
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) FeedbackPage(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())
	props := pages.FeedbackProps{
		Session: sess,
		Flash:   flashFrom(r),
	}

	goals, err := h.goalService.Goals(r.Context(), sess)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", sess.UserID, "role", sess.Role)
		props.LoadFailed = true
		ui.Render(w, r, pages.Feedback(props))
		return
	}
	props.Goals = goals
	props.Selected = selectGoal(r, goals)

	if props.Selected != nil {
		feedback, err := h.feedbackService.FeedbackForGoal(r.Context(), sess, props.Selected.ID)
		if err != nil {
			slog.Error("failed to list feedback", "error", err, "goal_id", props.Selected.ID)
			props.LoadFailed = true
		} else {
			props.Feedback = feedback
		}
	}

	ui.Render(w, r, pages.Feedback(props))
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.Session(r.Context())

	goalID, err := validation.ParseID(r.PathValue("id"))
	if err != nil {
		back(w, r, "/app/feedback", "error", "invalid", nil)
		return
	}

	_, err = h.feedbackService.Create(r.Context(), sess, goalID, strings.TrimSpace(r.FormValue("content")))
	if err != nil {
		slog.Error("failed to create feedback", "error", err, "user_id", sess.UserID, "goal_id", goalID)
		back(w, r, "/app/feedback", "error", errorKey(err), goalQuery(goalID))
		return
	}

	back(w, r, "/app/feedback", "notice", "feedback-created", goalQuery(goalID))
}
