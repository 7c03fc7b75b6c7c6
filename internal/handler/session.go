package handler

import (
	"log/slog"
	"net/http"

	"github.com/templui/perfdesk/internal/service"
	"github.com/templui/perfdesk/internal/ui"
	"github.com/templui/perfdesk/internal/ui/pages"
	"github.com/templui/perfdesk/internal/validation"
)

type SessionHandler struct {
	sessionService *service.SessionService
}

func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

func (h *SessionHandler) SignInPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.SignIn(pages.SignInProps{}))
}

// SignIn starts a session for the declared role and id.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	role, err := validation.ParseRole(r.FormValue("role"))
	if err != nil {
		ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pages.SignIn(pages.SignInProps{Error: "Please select Manager or Employee."}))
		return
	}

	userID, err := validation.ParseID(r.FormValue("user_id"))
	if err != nil {
		ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pages.SignIn(pages.SignInProps{Role: role, Error: "Your ID must be a whole number of 1 or more."}))
		return
	}

	sess, token, err := h.sessionService.SignIn(role, userID)
	if err != nil {
		slog.Error("failed to sign in", "error", err, "role", role, "user_id", userID)
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.SignIn(pages.SignInProps{Role: role, UserID: userID, Error: pages.LoadError}))
		return
	}

	h.sessionService.SetCookie(w, token)
	slog.Info("session started", "session_id", sess.ID, "role", sess.Role, "user_id", sess.UserID)
	http.Redirect(w, r, "/app/goals", http.StatusSeeOther)
}

func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.sessionService.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *SessionHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
